package ntpclock

import (
	"context"
	"errors"
	"fmt"
	"iss-display-gadget/internal/platform/obs"
	"time"

	"github.com/beevik/ntp"
	"go.uber.org/atomic"
)

const DefaultServer = "pool.ntp.org"

// Clock is the host clock corrected by an offset measured against an NTP
// server.
type Clock struct {
	server  string
	timeout time.Duration
	offset  atomic.Duration
	query   func(host string, opt ntp.QueryOptions) (*ntp.Response, error)
}

func New(server string, timeout time.Duration) *Clock {
	if server == "" {
		server = DefaultServer
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Clock{server: server, timeout: timeout, query: ntp.QueryWithOptions}
}

// Sync queries the server once and stores the clock offset. The previous
// offset is kept on failure.
func (c *Clock) Sync(ctx context.Context) (err error) {
	defer obs.Time(ctx, "ntp.Sync")(&err)

	type result struct {
		resp *ntp.Response
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		resp, err := c.query(c.server, ntp.QueryOptions{Timeout: c.timeout})
		ch <- result{resp, err}
	}()

	var r result
	select {
	case <-ctx.Done():
		return ctx.Err()
	case r = <-ch:
	}

	if r.err != nil {
		return fmt.Errorf("ntp sync %s: %w", c.server, r.err)
	}
	if r.resp == nil {
		return errors.New("ntp sync: empty response")
	}
	if err := r.resp.Validate(); err != nil {
		return fmt.Errorf("ntp sync %s: %w", c.server, err)
	}

	c.offset.Store(r.resp.ClockOffset)
	return nil
}

func (c *Clock) Offset() time.Duration { return c.offset.Load() }

func (c *Clock) Now() time.Time {
	return time.Now().Add(c.offset.Load())
}
