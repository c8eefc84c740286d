package services

import (
	"context"
	"errors"
	"fmt"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/ports"
	"log"
	"time"
)

const (
	DefaultPollInterval   = 10 * time.Millisecond
	DefaultConnectTimeout = 30 * time.Second

	spinnerStep      = 200 * time.Millisecond
	connectedFlashes = 5
)

var spinner = []string{`\`, "|", "/", "-"}

type GadgetConfig struct {
	PollInterval   time.Duration
	ConnectTimeout time.Duration
}

// Gadget owns the screen and switches between modes on button presses.
type Gadget struct {
	screen    *Screen
	connector ports.NetworkConnector
	buttons   ports.ButtonPanel
	sleeper   ports.Sleeper
	modes     map[domain.Mode]ModeRunner
	cfg       GadgetConfig
}

// NewGadget wires the gadget. modes maps each selectable mode to its runner;
// a missing setup runner gets the plain setup screen.
func NewGadget(
	screen *Screen,
	connector ports.NetworkConnector,
	buttons ports.ButtonPanel,
	sleeper ports.Sleeper,
	modes map[domain.Mode]ModeRunner,
	cfg GadgetConfig,
) (*Gadget, error) {
	if screen == nil || connector == nil || buttons == nil {
		return nil, errors.New("gadget: screen, connector and buttons are required")
	}
	if sleeper == nil {
		sleeper = SystemSleeper{}
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}

	m := make(map[domain.Mode]ModeRunner, len(modes)+1)
	for k, v := range modes {
		m[k] = v
	}
	if _, ok := m[domain.ModeSetup]; !ok {
		m[domain.ModeSetup] = NewSetupMode(screen, nil)
	}

	return &Gadget{
		screen:    screen,
		connector: connector,
		buttons:   buttons,
		sleeper:   sleeper,
		modes:     m,
		cfg:       cfg,
	}, nil
}

// Startup shows the boot screen and associates with the network. It returns
// a FailureNetwork error when association fails or times out.
func (g *Gadget) Startup(ctx context.Context) error {
	g.screen.Show(domain.ModeNone, domain.Orange, domain.Line("Starting up...", 5, 25))
	return g.connect(ctx)
}

func (g *Gadget) connect(ctx context.Context) error {
	if err := g.connector.Connect(ctx); err != nil {
		return Fail(FailureNetwork, "connect", err)
	}

	cctx, cancel := context.WithTimeout(ctx, g.cfg.ConnectTimeout)
	defer cancel()

	text := "Connecting"
	for i := 0; ; i++ {
		ok, err := g.connector.Connected(cctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return Fail(FailureNetwork, "connect", err)
		}
		if ok {
			break
		}

		g.screen.Show(domain.ModeNone, domain.Orange, domain.Line(text, 6, 25))
		text = "Connecting " + spinner[i%len(spinner)]

		if err := g.sleeper.Sleep(cctx, spinnerStep); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return Fail(FailureNetwork, "connect", fmt.Errorf("not connected after %s", g.cfg.ConnectTimeout))
		}
	}

	log.Printf("network connected")
	g.screen.Show(domain.ModeNone, domain.Green, domain.Line("Connected!", 15, 25))
	return g.screen.Flash(ctx, domain.Green, connectedFlashes, false)
}

type running struct {
	mode   domain.Mode
	cancel context.CancelFunc
	done   chan error
}

func (r *running) stop() {
	if r == nil {
		return
	}
	r.cancel()
	if r.done != nil {
		<-r.done
	}
}

func (g *Gadget) launch(ctx context.Context, mode domain.Mode, runner ModeRunner) *running {
	if runner == nil {
		runner = g.modes[domain.ModeSetup]
	}
	mctx, cancel := context.WithCancel(ctx)
	r := &running{mode: mode, cancel: cancel, done: make(chan error, 1)}

	log.Printf("mode start mode=%s", mode)
	go func() {
		r.done <- runner.Run(mctx)
	}()
	return r
}

// Run starts up and then serves button presses until ctx is cancelled.
// bootErr carries a configuration failure from before the gadget was built;
// when set, the gadget skips the network and goes straight to setup.
func (g *Gadget) Run(ctx context.Context, bootErr error) error {
	var cur *running

	if bootErr == nil {
		bootErr = g.Startup(ctx)
	} else {
		g.screen.Show(domain.ModeNone, domain.Orange, domain.Line("Starting up...", 5, 25))
	}

	switch {
	case ctx.Err() != nil:
		return nil
	case bootErr != nil:
		log.Printf("startup failed kind=%q: %v", KindOf(bootErr), bootErr)
		cur = g.launch(ctx, domain.ModeSetup, NewSetupMode(g.screen, bootErr))
	default:
		cur = g.launch(ctx, domain.ModeClock, g.modes[domain.ModeClock])
	}

	ticker := time.NewTicker(g.cfg.PollInterval)
	defer ticker.Stop()

	for {
		var done chan error
		if cur != nil {
			done = cur.done
		}

		select {
		case <-ctx.Done():
			cur.stop()
			return nil

		case err := <-done:
			cur.done = nil
			if err != nil && ctx.Err() == nil {
				log.Printf("mode failed mode=%s kind=%q: %v", cur.mode, KindOf(err), err)
				cur = g.launch(ctx, domain.ModeSetup, NewSetupMode(g.screen, err))
			}

		case <-ticker.C:
			b, ok := g.buttons.Pressed()
			if !ok {
				continue
			}
			runner, ok := g.modes[b.Mode()]
			if !ok {
				log.Printf("button has no mode button=%s", b)
				continue
			}
			cur.stop()
			cur = g.launch(ctx, b.Mode(), runner)
		}
	}
}
