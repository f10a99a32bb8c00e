package reltime

import (
	"fmt"
	"strings"
)

// SecondsStyle selects the unit label used in the seconds bucket.
type SecondsStyle int

const (
	// SecondsPlural always writes "seconds", including "1 seconds ago".
	SecondsPlural SecondsStyle = iota
	// SecondsSingular writes "1 second ago" like the other buckets.
	SecondsSingular
)

// ParseSecondsStyle parses "plural" or "singular". The empty string is plural.
func ParseSecondsStyle(s string) (SecondsStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plural":
		return SecondsPlural, nil
	case "singular":
		return SecondsSingular, nil
	default:
		return SecondsPlural, fmt.Errorf("invalid seconds style %q (must be plural or singular)", s)
	}
}

func (s SecondsStyle) String() string {
	if s == SecondsSingular {
		return "singular"
	}
	return "plural"
}

// FuturePolicy selects how instants after "now" are handled.
type FuturePolicy int

const (
	// FuturePassThrough reports negative elapsed time, e.g. "-5 seconds ago".
	FuturePassThrough FuturePolicy = iota
	// FutureClamp reports future instants as "0 seconds ago".
	FutureClamp
	// FutureReject makes Describe return ErrFuture.
	FutureReject
)

// ParseFuturePolicy parses "pass", "clamp" or "reject". The empty string is pass.
func ParseFuturePolicy(s string) (FuturePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pass", "passthrough":
		return FuturePassThrough, nil
	case "clamp":
		return FutureClamp, nil
	case "reject":
		return FutureReject, nil
	default:
		return FuturePassThrough, fmt.Errorf("invalid future policy %q (must be pass, clamp or reject)", s)
	}
}

func (p FuturePolicy) String() string {
	switch p {
	case FutureClamp:
		return "clamp"
	case FutureReject:
		return "reject"
	default:
		return "pass"
	}
}

// Set implements pflag.Value.
func (p *FuturePolicy) Set(s string) error {
	v, err := ParseFuturePolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Type implements pflag.Value.
func (p *FuturePolicy) Type() string {
	return "policy"
}
