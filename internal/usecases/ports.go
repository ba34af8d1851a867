package usecases

import (
	"sweaters/internal/models"
)

// PORTS define interfaces para conexão entre usecases e o transporte
type Notifier interface {
	// Publica um evento da partida para quem estiver acompanhando. Não pode bloquear.
	Publish(event models.SessionEvent)
}

type noopNotifier struct{}

func (noopNotifier) Publish(models.SessionEvent) {}
