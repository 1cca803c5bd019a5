package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func sampleSeries() MonthlySeries {
	jan := NewMonth(2024, time.January)
	return MonthlySeries{
		InceptionValue: dec(1000),
		Points: []MonthlyPoint{
			{Month: jan, Value: dec(1000), Buys: decimal.Zero, Sells: decimal.Zero},
			{Month: jan.AddMonths(1), Value: dec(1200), Buys: dec(100), Sells: decimal.Zero},
			{Month: jan.AddMonths(2), Value: dec(1300), Buys: decimal.Zero, Sells: decimal.Zero},
			{Month: jan.AddMonths(3), Value: dec(1200), Buys: decimal.Zero, Sells: dec(100)},
		},
	}
}

func TestMonthlySeries_ValueAt(t *testing.T) {
	s := sampleSeries()
	jan := NewMonth(2024, time.January)

	assert.True(t, dec(1200).Equal(s.ValueAt(jan.AddMonths(1))))
	assert.True(t, dec(1200).Equal(s.ValueAt(jan.AddMonths(9))), "value carries forward past the end")
	assert.True(t, s.ValueAt(jan.AddMonths(-1)).IsZero(), "no value before inception")
	assert.True(t, MonthlySeries{}.ValueAt(jan).IsZero())

	assert.Equal(t, jan, s.Start())
	assert.Equal(t, jan.AddMonths(3), s.End())
	assert.Equal(t, 2, s.Index(jan.AddMonths(2)))
	assert.Equal(t, -1, s.Index(jan.AddMonths(4)))
}

func TestMonthlySeries_FlowsBetween(t *testing.T) {
	s := sampleSeries()
	jan := NewMonth(2024, time.January)

	buys, sells := s.FlowsBetween(jan, jan.AddMonths(3))
	assert.True(t, dec(100).Equal(buys))
	assert.True(t, dec(100).Equal(sells))

	buys, sells = s.FlowsBetween(jan.AddMonths(1), jan.AddMonths(3))
	assert.True(t, buys.IsZero(), "lower bound is exclusive")
	assert.True(t, dec(100).Equal(sells))

	buys, _ = s.FlowsBetween(Month{}, jan.AddMonths(1))
	assert.True(t, dec(100).Equal(buys), "zero lower bound includes the first month")
}

func TestPercent_ZeroBaseline(t *testing.T) {
	assert.True(t, Percent(dec(50), decimal.Zero).IsZero())
	assert.True(t, dec(50).Equal(Percent(dec(50), dec(100))))

	f := NewReturnFigure(decimal.Zero, dec(10))
	assert.True(t, f.Percentage.IsZero())

	sum := NewReturnFigure(dec(100), dec(10)).Add(NewReturnFigure(dec(300), dec(30)))
	assert.True(t, dec(400).Equal(sum.Baseline))
	assert.True(t, dec(10).Equal(sum.Percentage))
}

func TestWindow_Validate(t *testing.T) {
	assert.NoError(t, WindowSinceInception.Validate())
	assert.NoError(t, WindowOneYear.Validate())
	assert.ErrorIs(t, Window(-1).Validate(), ErrInvalidArgument)
}
