package usecases

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"sweaters/internal/models"
	"sweaters/internal/repositories"
	"sweaters/internal/testkit"
	"sweaters/internal/utils/deck"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []models.SessionEvent
}

func (n *recordingNotifier) Publish(event models.SessionEvent) {
	n.mu.Lock()
	n.events = append(n.events, event)
	n.mu.Unlock()
}

func (n *recordingNotifier) Events() []models.SessionEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.SessionEvent(nil), n.events...)
}

type fixture struct {
	uc       *UseCases
	rec      *testkit.Recorder
	notifier *recordingNotifier
}

func sequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func setup(t *testing.T, opts ...Option) fixture {
	t.Helper()
	backend, _ := testkit.NewRedis(t)
	rec := testkit.NewRecorder(backend)
	notifier := &recordingNotifier{}

	base := []Option{
		WithNotifier(notifier),
		WithDeckSource(rand.New(rand.NewSource(99))),
		WithIDGenerator(sequentialIDs("id")),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := New(repositories.New(rec), logger, append(base, opts...)...)
	return fixture{uc: uc, rec: rec, notifier: notifier}
}

func assertValidDeck(t *testing.T, cards map[string][]string) {
	t.Helper()
	if len(cards) != len(deck.Suits) {
		t.Fatalf("expected %d suits, got %d", len(deck.Suits), len(cards))
	}
	want := append([]string(nil), deck.Ranks...)
	sort.Strings(want)
	for _, suit := range deck.Suits {
		got := append([]string(nil), cards[suit]...)
		sort.Strings(got)
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Fatalf("suit %s is not a permutation of the ranks: %v", suit, cards[suit])
		}
	}
}
