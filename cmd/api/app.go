package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"sweaters/internal/config"
	handlers "sweaters/internal/handlers/http"
	"sweaters/internal/infrastructure/events"
	"sweaters/internal/infrastructure/redisdb"
	"sweaters/internal/infrastructure/sqlitekv"
	"sweaters/internal/infrastructure/tracing"
	"sweaters/internal/logging"
	"sweaters/internal/repositories"
	"sweaters/internal/repositories/store"
	"sweaters/internal/usecases"
)

const serviceName = "sweaters-api"

// loadConfig lê o ambiente e aplica as flags passadas explicitamente.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if cmd.IsSet("store") {
		cfg.StoreDriver = cmd.String("store")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}
	return cfg, cfg.Validate()
}

func openStore(ctx context.Context, cfg config.Config) (store.Backend, error) {
	if cfg.StoreDriver == config.DriverSQLite {
		db, err := sqlitekv.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	rdb, err := redisdb.Connect(ctx, cfg.RedisURL, cfg.RedisAddrs)
	if err != nil {
		return nil, err
	}
	return rdb, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	color.NoColor = false
	logger, logFile, err := logging.New(os.Stderr, cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	shutdownTracing, err := tracing.Setup(ctx, serviceName, cfg.OtelEndpoint, cfg.OtelEnabled)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	backend, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer backend.Close()
	color.Green("Conectado ao store %s", cfg.StoreDriver)

	hub := events.NewHub(logger)
	go hub.Run(ctx)

	useCases := usecases.New(repositories.New(backend), logger, usecases.WithNotifier(hub))

	gin.SetMode(cfg.GinMode)
	h := handlers.New(useCases, hub, logger, cfg.RequestTimeout)

	color.Green("Iniciando servidor API Gin na porta %s", cfg.Addr())
	if err := h.Listen(ctx, cfg.Addr()); err != nil {
		return err
	}
	color.Yellow("Servidor encerrado.")
	return nil
}

// adminUseCases abre o store para os comandos administrativos; sem hub nem tracing.
func adminUseCases(ctx context.Context, cmd *cli.Command) (*usecases.UseCases, io.Closer, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logging.ParseLevel(cfg.LogLevel)}))

	backend, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	return usecases.New(repositories.New(backend), logger), backend, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func listUsers(ctx context.Context, cmd *cli.Command) error {
	uc, closer, err := adminUseCases(ctx, cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	users, err := uc.GetAllUsers(ctx)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, users)
}

func listGames(ctx context.Context, cmd *cli.Command) error {
	uc, closer, err := adminUseCases(ctx, cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	games, err := uc.GetAllGames(ctx)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, games)
}

func deleteUser(ctx context.Context, cmd *cli.Command) error {
	userID := cmd.Args().First()
	if userID == "" {
		return errors.New("USER_ID is required")
	}
	uc, closer, err := adminUseCases(ctx, cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := uc.DeleteUser(ctx, userID); err != nil {
		return err
	}
	color.Green("Usuário %s removido", userID)
	return nil
}

func deleteGame(ctx context.Context, cmd *cli.Command) error {
	gameID := cmd.Args().First()
	if gameID == "" {
		return errors.New("GAME_ID is required")
	}
	uc, closer, err := adminUseCases(ctx, cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := uc.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	color.Green("Partida %s removida", gameID)
	return nil
}
