package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

// Sem subcomando o binário sobe a API (equivale a "serve").
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:   "sweaters",
		Usage:  "API de usuários e partidas de cartas",
		Flags:  serveFlags(),
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "sobe a API HTTP",
				Flags:  serveFlags(),
				Action: serve,
			},
			{
				Name:   "list-users",
				Usage:  "lista os usuários gravados no store",
				Flags:  storeFlags(),
				Action: listUsers,
			},
			{
				Name:      "delete-user",
				Usage:     "remove um usuário do store",
				ArgsUsage: "USER_ID",
				Flags:     storeFlags(),
				Action:    deleteUser,
			},
			{
				Name:   "list-games",
				Usage:  "lista as partidas gravadas no store",
				Flags:  storeFlags(),
				Action: listGames,
			},
			{
				Name:      "delete-game",
				Usage:     "remove uma partida do store",
				ArgsUsage: "GAME_ID",
				Flags:     storeFlags(),
				Action:    deleteGame,
			},
			playCommand(),
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		color.Red("Erro: %v", err)
		os.Exit(1)
	}
}

func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "store",
			Usage: "driver do store (redis ou sqlite); sobrescreve SWEATERS_STORE_DRIVER",
		},
	}
}

func serveFlags() []cli.Flag {
	return append(storeFlags(), &cli.IntFlag{
		Name:  "port",
		Usage: "porta HTTP; sobrescreve SWEATERS_PORT",
	})
}
