package games

import (
	"context"

	"sweaters/internal/models"
	"sweaters/internal/repositories/store"
)

const Prefix = "game"

type Games struct {
	records *store.Store[models.Game]
}

func New(backend store.Backend) *Games {
	return &Games{records: store.New[models.Game](backend, Prefix)}
}

func (g *Games) Save(ctx context.Context, game models.Game) error {
	return g.records.Put(ctx, game.GameID, game)
}

func (g *Games) Get(ctx context.Context, gameID string) (models.Game, bool, error) {
	return g.records.Get(ctx, gameID)
}

func (g *Games) GetAll(ctx context.Context) ([]models.Game, error) {
	return g.records.List(ctx)
}

func (g *Games) Delete(ctx context.Context, gameID string) error {
	return g.records.Delete(ctx, gameID)
}
