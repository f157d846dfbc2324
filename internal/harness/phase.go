package harness

import (
	"strings"

	"github.com/pkg/errors"
)

// Phase is which part of a strategy's life is timed.
type Phase uint8

const (
	// Build a collection from scratch.
	Populate Phase = iota
	// Total the perimeter of a collection built beforehand, off the clock.
	Iterate
	// Build and total, as one timed operation.
	Both
)

var phaseNames = [...]string{"populate", "iterate", "both"}

var Phases = []Phase{Populate, Iterate, Both}

func PhaseNames() []string {
	return append([]string(nil), phaseNames[:]...)
}

func ParsePhase(name string) (Phase, error) {
	for i, phaseName := range phaseNames {
		if phaseName == name {
			return Phase(i), nil
		}
	}
	return 0, errors.Errorf("unknown phase %q (have %s)", name, strings.Join(phaseNames[:], ", "))
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	if int(p) >= len(phaseNames) {
		return nil, errors.Errorf("unknown phase %d", p)
	}
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	phase, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = phase
	return nil
}
