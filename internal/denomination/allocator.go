package denomination

import (
	"fmt"

	"github.com/google/uuid"
)

// IssuedCoin is a denomination that is live on the board: issued and not yet collected.
type IssuedCoin struct {
	ID uuid.UUID
	Denomination
}

// Record is the durable form of one live coin. Only the face value is
// persisted; IDs are ephemeral and reassigned on restore.
type Record struct {
	Value float64 `json:"value"`
}

// Allocator owns the live-set of issued coins for one board. It is not
// goroutine safe; callers that share one serialize access themselves.
type Allocator struct {
	set         *Set
	live        []IssuedCoin
	onCollected func(IssuedCoin)
}

func NewAllocator(set *Set) *Allocator {
	return &Allocator{set: set}
}

func (a *Allocator) Set() *Set {
	return a.set
}

func (a *Allocator) Allocate(amount float64) []Denomination {
	return a.set.Allocate(amount)
}

// OnCollected registers a callback fired whenever Collect removes a live coin.
func (a *Allocator) OnCollected(fn func(IssuedCoin)) {
	a.onCollected = fn
}

func (a *Allocator) Issue(d Denomination) IssuedCoin {
	coin := IssuedCoin{ID: uuid.New(), Denomination: d}
	a.live = append(a.live, coin)
	return coin
}

// Collect removes a live coin and fires the collected callback. Collecting an
// unknown or already collected id is a no-op: collection notifications may
// race a concurrent reset or arrive twice.
func (a *Allocator) Collect(id uuid.UUID) bool {
	coin, ok := a.remove(id)
	if !ok {
		return false
	}
	if a.onCollected != nil {
		a.onCollected(coin)
	}
	return true
}

// Discard removes a live coin without signaling collection. Used to unwind an
// issuance whose persistence failed.
func (a *Allocator) Discard(id uuid.UUID) bool {
	_, ok := a.remove(id)
	return ok
}

func (a *Allocator) remove(id uuid.UUID) (IssuedCoin, bool) {
	for i, coin := range a.live {
		if coin.ID == id {
			a.live = append(a.live[:i], a.live[i+1:]...)
			return coin, true
		}
	}
	return IssuedCoin{}, false
}

func (a *Allocator) Reset() {
	a.live = nil
}

// TotalValue recomputes the live-set sum on every call, so it can never go
// stale against the live-set.
func (a *Allocator) TotalValue() float64 {
	var total float64
	for _, coin := range a.live {
		total += coin.Value
	}
	return total
}

func (a *Allocator) Live() []IssuedCoin {
	out := make([]IssuedCoin, len(a.live))
	copy(out, a.live)
	return out
}

func (a *Allocator) Records() []Record {
	records := make([]Record, len(a.live))
	for i, coin := range a.live {
		records[i] = Record{Value: coin.Value}
	}
	return records
}

// Restore replaces the live-set with coins resolved from persisted records,
// in record order. A value with no configured match aborts the whole restore
// and leaves the live-set unchanged: a mismatch between saved data and the
// current configuration must never silently issue a wrong denomination.
func (a *Allocator) Restore(records []Record) error {
	restored := make([]IssuedCoin, 0, len(records))
	for _, r := range records {
		d, err := a.set.LookupByValue(r.Value)
		if err != nil {
			return fmt.Errorf("restore record %v: %w", r.Value, err)
		}
		restored = append(restored, IssuedCoin{ID: uuid.New(), Denomination: d})
	}
	a.live = restored
	return nil
}
