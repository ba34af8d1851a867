package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"sweaters/internal/client"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "joga uma partida contra uma API em execução",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: "http://localhost:8000", Usage: "endereço da API"},
			&cli.StringFlag{Name: "user", Usage: "user_id do jogador; vazio joga como convidado"},
			&cli.IntFlag{Name: "rounds", Value: 13, Usage: "quantas cartas puxar"},
		},
		Action: play,
	}
}

func play(ctx context.Context, cmd *cli.Command) error {
	api := client.New(cmd.String("addr"))
	userID := cmd.String("user")

	started, err := api.StartGame(ctx, userID)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	color.Green("Partida %s iniciada (dono: %s)", started.GameID, started.OwnerID)

	for i := 0; i < cmd.Int("rounds"); i++ {
		draw, err := api.PullCard(ctx, started.OwnerID, started.GameID)
		if err != nil {
			return fmt.Errorf("pull card: %w", err)
		}
		if len(draw.Cards) == 0 {
			color.Yellow("Rodada %d: baralho esgotado", draw.Round)
			break
		}
		color.Cyan("Rodada %d: %s", draw.Round, formatCards(draw.Cards))
	}
	return nil
}

func formatCards(cards map[string]string) string {
	suits := make([]string, 0, len(cards))
	for suit := range cards {
		suits = append(suits, suit)
	}
	sort.Strings(suits)

	parts := make([]string, 0, len(suits))
	for _, suit := range suits {
		parts = append(parts, cards[suit]+" de "+suit)
	}
	return strings.Join(parts, ", ")
}
