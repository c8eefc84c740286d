package network

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestProbeConnector(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()

	c := NewProbeConnector(addr, "home", time.Second)
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	ok, err := c.Connected(context.Background())
	if err != nil || !ok {
		t.Fatalf("Connected = %v, %v; want true", ok, err)
	}

	ln.Close()
	ok, err = c.Connected(context.Background())
	if err != nil || ok {
		t.Fatalf("Connected after close = %v, %v; want false, nil", ok, err)
	}
}

func TestProbeConnectorBadAddr(t *testing.T) {
	c := NewProbeConnector("no-port", "", time.Second)
	if err := c.Connect(context.Background()); err == nil {
		t.Fatalf("expected error for address without port")
	}
}

func TestProbeConnectorCancelled(t *testing.T) {
	c := NewProbeConnector("127.0.0.1:9", "", time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Connected(ctx); err == nil {
		t.Fatalf("expected cancellation error")
	}
}
