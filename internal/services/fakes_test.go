package services

import (
	"context"
	"errors"
	"iss-display-gadget/internal/domain"
	"sync"
	"testing"
	"time"
)

type fakeDisplay struct {
	mu     sync.Mutex
	frames []domain.Frame
}

func (d *fakeDisplay) Render(f domain.Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = append(d.frames, f)
	return nil
}

func (d *fakeDisplay) last() (domain.Frame, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.frames) == 0 {
		return domain.Frame{}, false
	}
	return d.frames[len(d.frames)-1], true
}

func (d *fakeDisplay) all() []domain.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Frame(nil), d.frames...)
}

type fakeBacklight struct {
	mu     sync.Mutex
	colors []domain.Color
}

func (b *fakeBacklight) SetBacklight(c domain.Color) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.colors = append(b.colors, c)
	return nil
}

func (b *fakeBacklight) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.colors = nil
}

func (b *fakeBacklight) all() []domain.Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.Color(nil), b.colors...)
}

// fakeSleeper returns at once and records the requested durations.
type fakeSleeper struct {
	mu     sync.Mutex
	slept  []time.Duration
	failAt int // 1-based call that returns errStop; 0 never
}

var errStop = errors.New("stop")

func (s *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.slept = append(s.slept, d)
	n := len(s.slept)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.failAt > 0 && n >= s.failAt {
		return errStop
	}
	// Let other goroutines make progress when a mode loops on sleep.
	time.Sleep(time.Millisecond)
	return nil
}

func (s *fakeSleeper) durations() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.slept...)
}

type fakePositions struct {
	pos domain.Coordinates
	err error
}

func (p *fakePositions) Position(ctx context.Context) (domain.Coordinates, error) {
	return p.pos, p.err
}

type fakeGeocoder struct {
	addr  domain.Address
	err   error
	calls int
}

func (g *fakeGeocoder) Reverse(ctx context.Context, at domain.Coordinates) (domain.Address, error) {
	g.calls++
	return g.addr, g.err
}

type fakeHistory struct {
	recorded []domain.Observation
}

func (h *fakeHistory) Record(ctx context.Context, o domain.Observation) error {
	h.recorded = append(h.recorded, o)
	return nil
}

func (h *fakeHistory) Recent(ctx context.Context, limit int) ([]domain.Observation, error) {
	return h.recorded, nil
}

// fakeConnector reports connected after readyAfter polls.
type fakeConnector struct {
	mu         sync.Mutex
	connectErr error
	readyAfter int
	polls      int
	connects   int
}

func (c *fakeConnector) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connects++
	return c.connectErr
}

func (c *fakeConnector) Connected(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.polls++
	return c.polls > c.readyAfter, nil
}

type fakeButtons struct {
	mu      sync.Mutex
	pending []domain.Button
}

func (b *fakeButtons) press(btn domain.Button) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, btn)
}

func (b *fakeButtons) Pressed() (domain.Button, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return 0, false
	}
	btn := b.pending[0]
	b.pending = b.pending[1:]
	return btn, true
}

type fakeClock struct {
	now     time.Time
	syncErr error
}

func (c *fakeClock) Sync(ctx context.Context) error { return c.syncErr }
func (c *fakeClock) Now() time.Time                 { return c.now }

// blockingMode counts starts and cancellations and runs until cancelled.
type blockingMode struct {
	mu       sync.Mutex
	started  int
	canceled int
	err      error
}

func (m *blockingMode) Run(ctx context.Context) error {
	m.mu.Lock()
	m.started++
	err := m.err
	m.mu.Unlock()

	if err != nil {
		return err
	}

	<-ctx.Done()

	m.mu.Lock()
	m.canceled++
	m.mu.Unlock()
	return nil
}

func (m *blockingMode) counts() (started, canceled int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started, m.canceled
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func newTestScreen() (*Screen, *fakeDisplay, *fakeBacklight, *fakeSleeper) {
	d := &fakeDisplay{}
	b := &fakeBacklight{}
	s := &fakeSleeper{}
	return NewScreen(d, b, s), d, b, s
}
