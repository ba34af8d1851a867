package usecases

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"sweaters/internal/models"
)

// Máquina de estados da partida:
//
//	Fresh (rodada 1) -> Active (compras) -> Reset (rodada 0, baralho novo) -> Active ...
//
// Não existe estado final. Cada operação faz read-modify-write sem lock nem
// versão, então reset e compra concorrentes na mesma partida podem perder uma
// das escritas (last-writer-wins do store).

// StartGame cria uma partida nova. ownerID vazio vira "guest".
//
// A gravação da partida é o critério de sucesso: se falhar, o erro sobe. Já a
// associação ao usuário é best-effort, a falha é logada e ignorada.
func (u *UseCases) StartGame(ctx context.Context, ownerID string) (result models.SessionResult, err error) {
	if ownerID == "" {
		ownerID = models.GuestID
	}
	ctx, span := u.tracer.Start(ctx, "StartGame", trace.WithAttributes(attribute.String("owner_id", ownerID)))
	defer func() { endSpan(span, err) }()

	game := models.Game{
		GameID:       u.newID(),
		OwnerID:      ownerID,
		CurrentRound: 1,
		Deck:         u.utils.Deck.Initialize(nil),
	}
	span.SetAttributes(attribute.String("game_id", game.GameID))

	if err := u.repos.Game.Save(ctx, game); err != nil {
		u.logger.ErrorContext(ctx, "failed to save game", "game_id", game.GameID, "owner_id", ownerID, "error", err)
		return models.SessionResult{}, err
	}

	if _, err := u.AddGameToUser(ctx, ownerID, game.GameID); err != nil {
		u.logger.WarnContext(ctx, fmt.Sprintf("Failed to add game %s to user %s", game.GameID, ownerID), "error", err)
	}

	u.notifier.Publish(models.SessionEvent{
		Type:    models.EventStarted,
		GameID:  game.GameID,
		OwnerID: ownerID,
		Round:   game.CurrentRound,
	})

	return models.SessionResult{Message: "Game started", GameID: game.GameID, OwnerID: ownerID}, nil
}

// ResetGame reembaralha a partida e volta a rodada para 0.
// Sem gameID, ou com um gameID inexistente, cria uma partida nova (rodada 1).
// Dono diferente devolve OWNERSHIP_MISMATCH e não altera nada.
func (u *UseCases) ResetGame(ctx context.Context, gameID, ownerID string) (result models.SessionResult, err error) {
	if ownerID == "" {
		ownerID = models.GuestID
	}
	if gameID == "" {
		return u.StartGame(ctx, ownerID)
	}

	ctx, span := u.tracer.Start(ctx, "ResetGame", trace.WithAttributes(
		attribute.String("game_id", gameID),
		attribute.String("owner_id", ownerID),
	))
	defer func() { endSpan(span, err) }()

	game, found, err := u.repos.Game.Get(ctx, gameID)
	if err != nil {
		return models.SessionResult{}, err
	}
	if !found {
		return u.StartGame(ctx, ownerID)
	}

	if game.OwnerID != ownerID {
		return models.SessionResult{}, models.NewError(models.KindOwnershipMismatch,
			"User ID does not match the game owner",
			map[string]string{"game_id": game.GameID, "user_id": ownerID})
	}

	game.Deck = u.utils.Deck.Initialize(nil)
	game.CurrentRound = 0
	if err := u.repos.Game.Save(ctx, game); err != nil {
		return models.SessionResult{}, err
	}

	u.notifier.Publish(models.SessionEvent{
		Type:    models.EventReset,
		GameID:  game.GameID,
		OwnerID: game.OwnerID,
		Round:   game.CurrentRound,
	})

	return models.SessionResult{Message: "Game reset", GameID: game.GameID, OwnerID: ownerID}, nil
}

// PullCard compra a carta da rodada atual de cada naipe e avança a rodada.
//
// O convidado pode comprar em qualquer partida, inclusive de outro dono.
// Naipes que já acabaram ficam fora de Cards; a rodada continua subindo.
func (u *UseCases) PullCard(ctx context.Context, ownerID, gameID string) (result models.DrawResult, err error) {
	if ownerID == "" {
		return models.DrawResult{}, models.NewError(models.KindInvalidRequest, "User ID is required", nil)
	}
	if gameID == "" {
		return models.DrawResult{}, models.NewError(models.KindInvalidRequest, "Game ID is required", nil)
	}

	ctx, span := u.tracer.Start(ctx, "PullCard", trace.WithAttributes(
		attribute.String("game_id", gameID),
		attribute.String("owner_id", ownerID),
	))
	defer func() { endSpan(span, err) }()

	game, found, err := u.repos.Game.Get(ctx, gameID)
	if err != nil {
		return models.DrawResult{}, err
	}
	if !found {
		return models.DrawResult{}, models.GameNotFound(gameID)
	}

	if game.OwnerID != ownerID && ownerID != models.GuestID {
		return models.DrawResult{}, models.NewError(models.KindOwnershipMismatch,
			fmt.Sprintf("User ID %s does not match the game owner %s", ownerID, game.OwnerID),
			map[string]string{"game_id": game.GameID, "user_id": ownerID})
	}

	round := game.CurrentRound
	cards := game.Draw(round)

	game.CurrentRound++
	if err := u.repos.Game.Save(ctx, game); err != nil {
		return models.DrawResult{}, err
	}
	span.SetAttributes(attribute.Int("round", round))

	u.notifier.Publish(models.SessionEvent{
		Type:    models.EventDraw,
		GameID:  game.GameID,
		OwnerID: game.OwnerID,
		Round:   round,
		Cards:   cards,
	})

	return models.DrawResult{
		Message: "Card pulled successfully",
		GameID:  game.GameID,
		OwnerID: game.OwnerID,
		Round:   round,
		Cards:   cards,
	}, nil
}

func (u *UseCases) GetGame(ctx context.Context, gameID string) (game models.Game, err error) {
	ctx, span := u.tracer.Start(ctx, "GetGame", trace.WithAttributes(attribute.String("game_id", gameID)))
	defer func() { endSpan(span, err) }()

	game, found, err := u.repos.Game.Get(ctx, gameID)
	if err != nil {
		return models.Game{}, err
	}
	if !found {
		return models.Game{}, models.GameNotFound(gameID)
	}
	return game, nil
}

func (u *UseCases) GetAllGames(ctx context.Context) (games []models.Game, err error) {
	ctx, span := u.tracer.Start(ctx, "GetAllGames")
	defer func() { endSpan(span, err) }()

	return u.repos.Game.GetAll(ctx)
}

func (u *UseCases) DeleteGame(ctx context.Context, gameID string) (err error) {
	ctx, span := u.tracer.Start(ctx, "DeleteGame", trace.WithAttributes(attribute.String("game_id", gameID)))
	defer func() { endSpan(span, err) }()

	return u.repos.Game.Delete(ctx, gameID)
}
