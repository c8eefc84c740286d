package services

import (
	"context"
	"errors"
	"fmt"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/platform/obs"
	"iss-display-gadget/internal/ports"
	"log"
	"time"
)

const (
	DefaultRefreshInterval = 10 * time.Second
	// Backlight blinks when the city under the ISS changes.
	changeFlashes = 3
)

// TrackerState is the only state carried between refresh cycles.
type TrackerState struct {
	PreviousCity string
}

func NewTrackerState() *TrackerState {
	return &TrackerState{PreviousCity: domain.UnknownCity}
}

// Changed reports whether city differs from the previous cycle's city.
func (s *TrackerState) Changed(city string) bool {
	return city != s.PreviousCity
}

func (s *TrackerState) Commit(city string) {
	s.PreviousCity = city
}

// Reading is the outcome of one refresh cycle.
type Reading struct {
	Position      domain.Coordinates
	DistanceMiles int
	Tier          domain.Color
	Label         domain.LocationLabel
	Changed       bool
}

// Lines renders the reading the way the ISS screen shows it.
func (r Reading) Lines() []domain.TextLine {
	lines := []domain.TextLine{domain.Line(fmt.Sprintf("ISS %d mi", r.DistanceMiles), 0, 0)}
	if !r.Label.IsOcean() {
		lines = append(lines, domain.Line(r.Label.City, 0, 22))
	}
	return append(lines, domain.Line(r.Label.Country, 0, 44))
}

type TrackerConfig struct {
	// Fixed point distances are measured from.
	Reference       domain.Coordinates
	RefreshInterval time.Duration
	LabelMaxLen     int
}

// ISSTracker runs the ISS mode: fetch, measure, label, show, flash on change.
type ISSTracker struct {
	positions ports.PositionProvider
	geocoder  ports.ReverseGeocoder
	history   ports.ObservationRepository
	screen    *Screen
	sleeper   ports.Sleeper
	cfg       TrackerConfig
	now       func() time.Time
	cycle     int64
}

// NewISSTracker builds the tracker. history may be nil.
func NewISSTracker(
	positions ports.PositionProvider,
	geocoder ports.ReverseGeocoder,
	history ports.ObservationRepository,
	screen *Screen,
	sleeper ports.Sleeper,
	cfg TrackerConfig,
) (*ISSTracker, error) {
	if positions == nil || geocoder == nil {
		return nil, errors.New("iss tracker: position provider and geocoder are required")
	}
	if screen == nil {
		return nil, errors.New("iss tracker: screen is nil")
	}
	if sleeper == nil {
		sleeper = SystemSleeper{}
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.LabelMaxLen == 0 {
		cfg.LabelMaxLen = DefaultLabelLen
	}

	return &ISSTracker{
		positions: positions,
		geocoder:  geocoder,
		history:   history,
		screen:    screen,
		sleeper:   sleeper,
		cfg:       cfg,
		now:       time.Now,
	}, nil
}

// Observe fetches the position and label and derives distance and tier.
// It does not touch the screen.
func (t *ISSTracker) Observe(ctx context.Context) (Reading, error) {
	pos, err := t.positions.Position(ctx)
	if err != nil {
		return Reading{}, Fail(FailureFetch, "iss position", err)
	}

	miles := RoundMiles(HaversineMiles(t.cfg.Reference, pos))

	addr, err := t.geocoder.Reverse(ctx, pos)
	if err != nil {
		return Reading{}, Fail(FailureFetch, "reverse geocode", err)
	}

	return Reading{
		Position:      pos,
		DistanceMiles: miles,
		Tier:          TierForDistance(float64(miles)),
		Label:         ResolveLabel(addr, t.cfg.LabelMaxLen),
	}, nil
}

// Cycle runs one refresh: observe, show, flash if the city changed and
// record the observation. st is updated after the flash.
func (t *ISSTracker) Cycle(ctx context.Context, st *TrackerState) (Reading, error) {
	t.cycle++
	ctx = obs.WithCycle(ctx, t.cycle)

	r, err := t.Observe(ctx)
	if err != nil {
		return Reading{}, err
	}

	t.screen.Show(domain.ModeISS, r.Tier, r.Lines()...)

	if st.Changed(r.Label.City) {
		r.Changed = true
		log.Printf("cycle=%d iss city changed from=%q to=%q", t.cycle, st.PreviousCity, r.Label.City)
		if err := t.screen.Flash(ctx, r.Tier, changeFlashes, true); err != nil {
			return r, err
		}
		st.Commit(r.Label.City)
	}

	if t.history != nil {
		err := t.history.Record(ctx, domain.Observation{
			ObservedAt:    t.now(),
			Position:      r.Position,
			DistanceMiles: r.DistanceMiles,
			Country:       r.Label.Country,
			City:          r.Label.City,
		})
		if err != nil {
			log.Printf("cycle=%d observation record failed: %v", t.cycle, err)
		}
	}

	return r, nil
}

// Run shows the locating screen then refreshes until ctx is cancelled.
// A fetch failure ends the mode with a FailureFetch error.
func (t *ISSTracker) Run(ctx context.Context) error {
	t.screen.Show(domain.ModeISS, domain.Orange, domain.Line("Locating ISS...", 0, 25))

	st := NewTrackerState()
	for {
		if _, err := t.Cycle(ctx, st); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := t.sleeper.Sleep(ctx, t.cfg.RefreshInterval); err != nil {
			return nil
		}
	}
}
