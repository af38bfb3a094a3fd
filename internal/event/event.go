// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие с необязательными данными
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — синхронный диспетчер событий.
// Dispatch возвращается только после того, как все подписчики отработали,
// поэтому событие N полностью обработано до события N+1.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создаёт пустой диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe добавляет подписчика. Подписчики вызываются в порядке подписки.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch отправляет событие всем подписчикам его типа
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Emit — сокращение для Dispatch(Event{Type: t, Data: data})
func (d *Dispatcher) Emit(t EventType, data any) {
	d.Dispatch(Event{Type: t, Data: data})
}
