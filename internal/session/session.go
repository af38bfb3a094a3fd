// internal/session/session.go
package session

import (
	"colored-points/internal/scene"

	"github.com/google/uuid"
)

// Session — всё изменяемое состояние приложения.
// Создаётся в точке входа и передаётся явно, глобальных переменных нет.
type Session struct {
	ID    uuid.UUID
	Tool  *ToolState
	Scene *scene.Scene
}

// New создаёт сессию с пустой сценой и инструментом по умолчанию
func New() *Session {
	return &Session{
		ID:    uuid.New(),
		Tool:  NewToolState(),
		Scene: scene.New(),
	}
}
