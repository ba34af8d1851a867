package users

import (
	"context"

	"sweaters/internal/models"
	"sweaters/internal/repositories/store"
)

const Prefix = "user"

type Users struct {
	records *store.Store[models.User]
}

func New(backend store.Backend) *Users {
	return &Users{records: store.New[models.User](backend, Prefix)}
}

func (u *Users) Save(ctx context.Context, user models.User) error {
	// games nunca vai como null no JSON
	if user.Games == nil {
		user.Games = []string{}
	}
	return u.records.Put(ctx, user.UserID, user)
}

func (u *Users) Get(ctx context.Context, userID string) (models.User, bool, error) {
	return u.records.Get(ctx, userID)
}

func (u *Users) GetAll(ctx context.Context) ([]models.User, error) {
	return u.records.List(ctx)
}

func (u *Users) Delete(ctx context.Context, userID string) error {
	return u.records.Delete(ctx, userID)
}
