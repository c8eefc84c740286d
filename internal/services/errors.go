package services

import (
	"errors"
	"fmt"
)

// FailureKind classifies why the gadget fell back to the setup screen.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	// Secrets/config file missing or invalid.
	FailureConfig
	// Network association failed or timed out.
	FailureNetwork
	// A runtime fetch (position, geocode) failed.
	FailureFetch
)

func (k FailureKind) String() string {
	switch k {
	case FailureConfig:
		return "config error"
	case FailureNetwork:
		return "no network"
	case FailureFetch:
		return "fetch failed"
	default:
		return "error"
	}
}

// Failure is a classified error that diverts the gadget to setup mode.
type Failure struct {
	Kind FailureKind
	Op   string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.Op, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Fail wraps err as a Failure of the given kind. A nil err stays nil.
func Fail(kind FailureKind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Failure{Kind: kind, Op: op, Err: err}
}

// KindOf reports the failure kind carried by err, or FailureUnknown.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return FailureUnknown
}
