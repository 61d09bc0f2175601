package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	"github.com/sangkips/pos-terminal/internal/domain/repository"
	"github.com/sangkips/pos-terminal/internal/infrastructure/storage"
)

// flakyStore wraps the in-memory store and fails writes to selected keys
type flakyStore struct {
	repository.KVStore
	mu       sync.Mutex
	failKeys map[string]bool
}

func newFlakyStore() *flakyStore {
	return &flakyStore{KVStore: storage.NewMemoryStore(), failKeys: map[string]bool{}}
}

func (s *flakyStore) failWrites(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failKeys = map[string]bool{}
	for _, k := range keys {
		s.failKeys[k] = true
	}
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	fail := s.failKeys[key]
	s.mu.Unlock()
	if fail {
		return errors.New("write failed")
	}
	return s.KVStore.Set(ctx, key, value)
}

// recordingPrinter keeps every job it receives
type recordingPrinter struct {
	mu   sync.Mutex
	jobs [][]byte
	err  error
}

func (p *recordingPrinter) Print(_ context.Context, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, append([]byte(nil), data...))
	return nil
}

func (p *recordingPrinter) Close() error      { return nil }
func (p *recordingPrinter) IsConnected() bool { return p.err == nil }

// testClock is a settable time source
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fixture struct {
	terminal *Terminal
	store    *flakyStore
	clock    *testClock
	printer  *recordingPrinter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newFlakyStore()
	clock := &testClock{now: time.Date(2024, 6, 15, 18, 0, 0, 0, time.Local)}
	p := &recordingPrinter{}
	term := NewTerminal(store, TerminalOptions{
		Printer:      p,
		PrinterType:  "usb",
		PrinterWidth: 32,
	})
	term.Sales.WithClock(clock.Now)
	term.Reports.WithClock(clock.Now)
	return &fixture{terminal: term, store: store, clock: clock, printer: p}
}

func (f *fixture) addProduct(t *testing.T, name string, price float64, stock int, category, barcode string) *entity.Product {
	t.Helper()
	p, err := f.terminal.Catalog.AddProduct(context.Background(), &CreateProductInput{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: category,
		Barcode:  barcode,
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) setTax(t *testing.T, enabled bool, rate float64) {
	t.Helper()
	_, err := f.terminal.Settings.UpdateTaxSettings(context.Background(), &UpdateTaxSettingsInput{
		Enabled: enabled,
		Rate:    rate,
		Name:    "VAT",
	})
	require.NoError(t, err)
}

func ptr[T any](v T) *T {
	return &v
}
