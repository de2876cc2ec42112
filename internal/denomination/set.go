package denomination

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrInvalidConfiguration = errors.New("invalid denomination configuration")
	ErrDenominationNotFound = errors.New("denomination not found")
)

// matchTolerance absorbs float drift between persisted values and configured ones.
const matchTolerance = 1e-6

// minFaceValue keeps the allocation loop bounded: amount / minFaceValue iterations at worst.
const minFaceValue = 0.01

// Denomination is a fixed face value plus the sprite used to display it.
type Denomination struct {
	Value  float64
	Sprite string
}

// Set holds the configured denominations sorted descending by face value.
type Set struct {
	denominations []Denomination
}

func NewSet(denominations []Denomination) (*Set, error) {
	if len(denominations) == 0 {
		return nil, fmt.Errorf("%w: empty denomination list", ErrInvalidConfiguration)
	}
	for _, d := range denominations {
		if d.Value < minFaceValue {
			return nil, fmt.Errorf("%w: face value %v is below the minimum %v", ErrInvalidConfiguration, d.Value, minFaceValue)
		}
	}
	sorted := make([]Denomination, len(denominations))
	copy(sorted, denominations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	return &Set{denominations: sorted}, nil
}

func (s *Set) Denominations() []Denomination {
	out := make([]Denomination, len(s.denominations))
	copy(out, s.denominations)
	return out
}

func (s *Set) Smallest() float64 {
	return s.denominations[len(s.denominations)-1].Value
}

// Allocate breaks amount into denominations, largest first. The part of the
// amount smaller than the smallest denomination is dropped, never rounded.
func (s *Set) Allocate(amount float64) []Denomination {
	var result []Denomination
	remaining := amount
	for remaining >= s.Smallest() {
		for _, d := range s.denominations {
			if d.Value <= remaining {
				result = append(result, d)
				remaining -= d.Value
				break
			}
		}
	}
	return result
}

// LookupByValue resolves a persisted face value back to a configured denomination.
func (s *Set) LookupByValue(value float64) (Denomination, error) {
	for _, d := range s.denominations {
		if math.Abs(d.Value-value) <= matchTolerance {
			return d, nil
		}
	}
	return Denomination{}, fmt.Errorf("%w: no denomination with value %v", ErrDenominationNotFound, value)
}
