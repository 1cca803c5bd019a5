package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyPoint is the reconstructed state of an asset at the end of a month
type MonthlyPoint struct {
	Month Month
	Value decimal.Decimal // End-of-month value
	Buys  decimal.Decimal // Sum of buys recorded in the month
	Sells decimal.Decimal // Sum of sells recorded in the month
}

// NetFlow returns buys minus sells for the month
func (p MonthlyPoint) NetFlow() decimal.Decimal {
	return p.Buys.Sub(p.Sells)
}

// MonthlySeries is the gap-free monthly value history of one asset, starting at its
// inception month. Points are consecutive months in ascending order.
type MonthlySeries struct {
	InceptionValue decimal.Decimal
	Points         []MonthlyPoint
}

// Len returns the number of months in the series
func (s MonthlySeries) Len() int {
	return len(s.Points)
}

// IsEmpty reports whether the series holds no months
func (s MonthlySeries) IsEmpty() bool {
	return len(s.Points) == 0
}

// Start returns the first month of the series (zero Month when empty)
func (s MonthlySeries) Start() Month {
	if s.IsEmpty() {
		return Month{}
	}
	return s.Points[0].Month
}

// End returns the last month of the series (zero Month when empty)
func (s MonthlySeries) End() Month {
	if s.IsEmpty() {
		return Month{}
	}
	return s.Points[len(s.Points)-1].Month
}

// Last returns the final point of the series
func (s MonthlySeries) Last() (MonthlyPoint, bool) {
	if s.IsEmpty() {
		return MonthlyPoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Index returns the position of month m in Points, or -1 when m is outside the series
func (s MonthlySeries) Index(m Month) int {
	if s.IsEmpty() {
		return -1
	}
	i := MonthsBetween(s.Start(), m)
	if i < 0 || i >= len(s.Points) {
		return -1
	}
	return i
}

// At returns the point recorded for month m
func (s MonthlySeries) At(m Month) (MonthlyPoint, bool) {
	i := s.Index(m)
	if i < 0 {
		return MonthlyPoint{}, false
	}
	return s.Points[i], true
}

// ValueAt returns the value as of month m.
// Months after the series end carry the last value forward; months before the
// series start have no value and return zero.
func (s MonthlySeries) ValueAt(m Month) decimal.Decimal {
	if s.IsEmpty() || m.Before(s.Start()) {
		return decimal.Zero
	}
	if m.After(s.End()) {
		return s.Points[len(s.Points)-1].Value
	}
	return s.Points[s.Index(m)].Value
}

// FlowsBetween sums the buys and sells of months in (from, to].
// A zero from includes every month up to and including to.
func (s MonthlySeries) FlowsBetween(from, to Month) (buys, sells decimal.Decimal) {
	buys, sells = decimal.Zero, decimal.Zero
	for _, p := range s.Points {
		if !from.IsZero() && !p.Month.After(from) {
			continue
		}
		if p.Month.After(to) {
			break
		}
		buys = buys.Add(p.Buys)
		sells = sells.Add(p.Sells)
	}
	return buys, sells
}
