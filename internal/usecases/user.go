package usecases

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"sweaters/internal/models"
)

func (u *UseCases) CreateUser(ctx context.Context, username, email, fullName string) (user models.User, err error) {
	ctx, span := u.tracer.Start(ctx, "CreateUser")
	defer func() { endSpan(span, err) }()

	user = models.User{
		UserID:   u.newID(),
		Username: username,
		Email:    email,
		FullName: fullName,
		Games:    []string{},
	}
	span.SetAttributes(attribute.String("user_id", user.UserID))

	if err := u.repos.User.Save(ctx, user); err != nil {
		u.logger.ErrorContext(ctx, "failed to save user", "user_id", user.UserID, "error", err)
		return models.User{}, err
	}
	return user, nil
}

// GetUser devolve NOT_FOUND quando o usuário não existe.
func (u *UseCases) GetUser(ctx context.Context, userID string) (user models.User, err error) {
	ctx, span := u.tracer.Start(ctx, "GetUser", trace.WithAttributes(attribute.String("user_id", userID)))
	defer func() { endSpan(span, err) }()

	user, found, err := u.repos.User.Get(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, models.UserNotFound(userID)
	}
	return user, nil
}

func (u *UseCases) GetAllUsers(ctx context.Context) (users []models.User, err error) {
	ctx, span := u.tracer.Start(ctx, "GetAllUsers")
	defer func() { endSpan(span, err) }()

	return u.repos.User.GetAll(ctx)
}

func (u *UseCases) DeleteUser(ctx context.Context, userID string) (err error) {
	ctx, span := u.tracer.Start(ctx, "DeleteUser", trace.WithAttributes(attribute.String("user_id", userID)))
	defer func() { endSpan(span, err) }()

	return u.repos.User.Delete(ctx, userID)
}

// AddGameToUser associa gameID ao usuário.
//
// Para o convidado devolve um usuário temporário sem tocar no store. Associar
// um jogo que o usuário já tem não escreve nada e devolve o usuário como está.
func (u *UseCases) AddGameToUser(ctx context.Context, userID, gameID string) (user models.User, err error) {
	ctx, span := u.tracer.Start(ctx, "AddGameToUser", trace.WithAttributes(
		attribute.String("user_id", userID),
		attribute.String("game_id", gameID),
	))
	defer func() { endSpan(span, err) }()

	if userID == models.GuestID {
		return models.GuestUser(gameID), nil
	}

	user, found, err := u.repos.User.Get(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, models.UserNotFound(userID)
	}
	if user.HasGame(gameID) {
		return user, nil
	}

	user.Games = append(user.Games, gameID)
	if err := u.repos.User.Save(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
