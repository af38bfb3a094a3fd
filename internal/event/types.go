// internal/event/types.go
package event

const (
	ShapeAdded         EventType = "ShapeAdded"         // В сцену добавлена фигура, Data — shape.Shape
	SceneCleared       EventType = "SceneCleared"       // Сцена очищена
	CompositeRequested EventType = "CompositeRequested" // Нарисовать готовую картинку
	ToolChanged        EventType = "ToolChanged"        // Изменён параметр инструмента, Data — ToolChange
)
