package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sweaters/internal/usecases"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Subscriber inscreve uma conexão websocket nos eventos de uma partida.
type Subscriber interface {
	ServeWS(w http.ResponseWriter, r *http.Request, gameID string)
}

type Handlers struct {
	useCases *usecases.UseCases
	events   Subscriber
	logger   *slog.Logger
	timeout  time.Duration
}

func New(useCases *usecases.UseCases, events Subscriber, logger *slog.Logger, timeout time.Duration) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{useCases: useCases, events: events, logger: logger, timeout: timeout}
}

// Router configura o gin com todas as rotas da API.
func (h *Handlers) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestContext(), h.logAPICall())

	h.registerHealthEndpoints(r)
	h.registerUserEndpoints(r)
	h.registerGameEndpoints(r)

	return r
}

// Listen serve a API em addr até ctx ser cancelado e então faz shutdown gracioso.
func (h *Handlers) Listen(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("listening on", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	h.logger.Info("shutting down", "addr", addr)
	return srv.Shutdown(shutdownCtx)
}
