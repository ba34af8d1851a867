// Package testkit reúne backends para testes: Redis em memória (miniredis),
// um gravador de escritas e injeção de falhas.
package testkit

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"sweaters/internal/infrastructure/redisdb"
	"sweaters/internal/repositories/store"
)

var ErrInjected = errors.New("injected backend failure")

// NewRedis sobe um miniredis para o teste e devolve o backend já conectado.
func NewRedis(t testing.TB) (*redisdb.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	backend := redisdb.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { backend.Close() })
	return backend, mr
}

// Recorder decora um backend registrando as chaves escritas e apagadas.
// FailSet/FailGet fazem a operação correspondente falhar para chaves com o prefixo dado.
type Recorder struct {
	store.Backend

	mu      sync.Mutex
	writes  []string
	deletes []string
	FailSet string
	FailGet string
}

func NewRecorder(inner store.Backend) *Recorder {
	return &Recorder{Backend: inner}
}

func hasPrefix(key, prefix string) bool {
	return prefix != "" && strings.HasPrefix(key, prefix)
}

func (r *Recorder) Set(ctx context.Context, key, value string) error {
	if hasPrefix(key, r.FailSet) {
		return ErrInjected
	}
	r.mu.Lock()
	r.writes = append(r.writes, key)
	r.mu.Unlock()
	return r.Backend.Set(ctx, key, value)
}

func (r *Recorder) Get(ctx context.Context, key string) (string, bool, error) {
	if hasPrefix(key, r.FailGet) {
		return "", false, ErrInjected
	}
	return r.Backend.Get(ctx, key)
}

func (r *Recorder) Del(ctx context.Context, key string) (int64, error) {
	r.mu.Lock()
	r.deletes = append(r.deletes, key)
	r.mu.Unlock()
	return r.Backend.Del(ctx, key)
}

// Writes devolve as chaves passadas a Set, em ordem.
func (r *Recorder) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.writes...)
}

func (r *Recorder) Deletes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.deletes...)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.writes = nil
	r.deletes = nil
	r.mu.Unlock()
}
