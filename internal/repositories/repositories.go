package repositories

import (
	"context"

	"sweaters/internal/models"
	"sweaters/internal/repositories/games"
	"sweaters/internal/repositories/store"
	"sweaters/internal/repositories/users"
)

type Repositories struct {
	User interface {
		Save(ctx context.Context, user models.User) error
		Get(ctx context.Context, userID string) (models.User, bool, error)
		GetAll(ctx context.Context) ([]models.User, error)
		Delete(ctx context.Context, userID string) error
	}
	Game interface {
		Save(ctx context.Context, game models.Game) error
		Get(ctx context.Context, gameID string) (models.Game, bool, error)
		GetAll(ctx context.Context) ([]models.Game, error)
		Delete(ctx context.Context, gameID string) error
	}
	backend store.Backend
}

func New(backend store.Backend) *Repositories {
	return &Repositories{
		User:    users.New(backend),
		Game:    games.New(backend),
		backend: backend,
	}
}

// Ping testa o backend compartilhado pelos repositórios.
func (r *Repositories) Ping(ctx context.Context) error {
	return r.backend.Ping(ctx)
}
