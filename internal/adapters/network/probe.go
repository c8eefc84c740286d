package network

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"
)

const DefaultProbeAddr = "api.open-notify.org:80"

// ProbeConnector treats the uplink as up once a TCP dial to Addr succeeds.
// Joining the Wi-Fi network itself is left to the host OS.
type ProbeConnector struct {
	Addr string
	SSID string
	// Per-dial timeout.
	DialTimeout time.Duration

	dial func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewProbeConnector(addr, ssid string, dialTimeout time.Duration) *ProbeConnector {
	if addr == "" {
		addr = DefaultProbeAddr
	}
	if dialTimeout <= 0 {
		dialTimeout = 2 * time.Second
	}
	d := &net.Dialer{}
	return &ProbeConnector{Addr: addr, SSID: ssid, DialTimeout: dialTimeout, dial: d.DialContext}
}

func (c *ProbeConnector) Connect(ctx context.Context) error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("network connect: probe address %q: %w", c.Addr, err)
	}
	log.Printf("network connect ssid=%q probe=%s", c.SSID, c.Addr)
	return nil
}

// Connected dials the probe address once. Dial failures mean "not yet";
// only cancellation of ctx is reported as an error.
func (c *ProbeConnector) Connected(ctx context.Context) (bool, error) {
	dctx, cancel := context.WithTimeout(ctx, c.DialTimeout)
	defer cancel()

	conn, err := c.dial(dctx, "tcp", c.Addr)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	conn.Close()
	return true, nil
}
