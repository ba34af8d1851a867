package games

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweaters/internal/models"
	"sweaters/internal/testkit"
)

func TestGames_SaveUsesGameKey(t *testing.T) {
	backend, mr := testkit.NewRedis(t)
	repo := New(backend)

	game := models.Game{
		GameID:       "g1",
		OwnerID:      "guest",
		CurrentRound: 1,
		Deck:         map[string][]string{"Clubs": {"Q", "3"}},
	}
	require.NoError(t, repo.Save(context.Background(), game))

	raw, err := mr.Get("game:g1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"game_id":"g1","owner_id":"guest","current_round":1,"deck":{"Clubs":["Q","3"]}}`, raw)

	got, found, err := repo.Get(context.Background(), "g1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, game, got)
}
