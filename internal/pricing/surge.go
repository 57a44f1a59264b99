package pricing

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidMultiplier guards against a non-positive multiplier leaking out of
// a misconfigured festival table.
var ErrInvalidMultiplier = errors.New("invalid surge multiplier")

const (
	weekendMultiplier = 1.2
	baseMultiplier    = 1.0
)

// Table is the process-wide surge pricing configuration. Festival dates take
// priority over the weekend rule; everything else prices at 1.0. The table is
// built once at startup and never mutated afterwards.
type Table struct {
	festivals map[string]float64
}

// DefaultFestivals returns the built-in festival surge dates.
func DefaultFestivals() map[string]float64 {
	return map[string]float64{
		"2024-03-25": 1.5, // Holi
		"2024-10-12": 2.0, // Navratri
		"2024-11-04": 1.8, // Diwali
		"2024-12-31": 1.3, // New Year's Eve
	}
}

// NewTable builds a surge table from the given festival map. A nil map falls
// back to the defaults.
func NewTable(festivals map[string]float64) *Table {
	if festivals == nil {
		festivals = DefaultFestivals()
	}
	copied := make(map[string]float64, len(festivals))
	for date, m := range festivals {
		copied[date] = m
	}
	return &Table{festivals: copied}
}

// Multiplier returns the surge multiplier for a calendar date. An exact
// festival match wins over the weekend rule.
func (t *Table) Multiplier(date time.Time) float64 {
	if m, ok := t.festivals[date.Format("2006-01-02")]; ok {
		return m
	}

	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return weekendMultiplier
	}

	return baseMultiplier
}

// Quote applies the surge multiplier to a base amount in paise and rounds to
// the nearest paise.
func (t *Table) Quote(basePaise int64, date time.Time) (totalPaise int64, multiplier float64, err error) {
	multiplier = t.Multiplier(date)
	if multiplier <= 0 {
		return 0, 0, ErrInvalidMultiplier
	}

	return RoundPaise(float64(basePaise) * multiplier), multiplier, nil
}

// RoundPaise rounds a fractional paise amount half away from zero.
func RoundPaise(v float64) int64 {
	return int64(math.Round(v))
}
