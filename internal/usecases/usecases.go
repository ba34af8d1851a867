package usecases

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"sweaters/internal/repositories"
	"sweaters/internal/utils"
	"sweaters/internal/utils/deck"
)

const tracerName = "sweaters/internal/usecases"

// UseCases concentra o ciclo de vida de usuários e a máquina de estados das partidas.
// Não há lock: cada operação faz seus próprios round-trips ao store.
type UseCases struct {
	repos    *repositories.Repositories
	utils    *utils.Utils
	notifier Notifier
	logger   *slog.Logger
	tracer   trace.Tracer
	newID    func() string
}

type Option func(*UseCases)

// WithNotifier recebe os eventos de início, reset e compra de carta.
func WithNotifier(n Notifier) Option {
	return func(u *UseCases) { u.notifier = n }
}

// WithDeckSource troca a fonte aleatória do embaralhamento.
func WithDeckSource(src deck.Source) Option {
	return func(u *UseCases) { u.utils = utils.New(src) }
}

func WithIDGenerator(gen func() string) Option {
	return func(u *UseCases) { u.newID = gen }
}

func New(repos *repositories.Repositories, logger *slog.Logger, opts ...Option) *UseCases {
	if logger == nil {
		logger = slog.Default()
	}
	u := &UseCases{
		repos:    repos,
		utils:    utils.New(nil),
		notifier: noopNotifier{},
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CheckHealth pinga o backend.
func (u *UseCases) CheckHealth(ctx context.Context) error {
	ctx, span := u.tracer.Start(ctx, "CheckHealth")
	err := u.repos.Ping(ctx)
	endSpan(span, err)
	return err
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
