package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantfabric/taengine/pkg/indicator"
)

func findSignal(r *Report, name string) (Signal, bool) {
	for _, s := range r.Signals {
		if s.Name == name {
			return s, true
		}
	}
	return Signal{}, false
}

func TestSignals_Uptrend(t *testing.T) {
	series := trendSeries(120, 100, 0.5)
	snap, err := Compute(context.Background(), series)
	assert.NoError(t, err)

	r := Signals(snap, series.Closes())
	assert.Equal(t, Bullish, r.Overall)
	assert.Greater(t, r.Confidence, 0.5)

	trend, ok := findSignal(r, "trend")
	assert.True(t, ok)
	assert.Equal(t, Bullish, trend.Bias)

	cross, ok := findSignal(r, "ma-cross")
	assert.True(t, ok)
	assert.Equal(t, Bullish, cross.Bias)

	// a relentless climb reads overbought on the oscillators
	rsi, ok := findSignal(r, "rsi")
	assert.True(t, ok)
	assert.Equal(t, Bearish, rsi.Bias)

	psar, ok := findSignal(r, "psar")
	assert.True(t, ok)
	assert.Equal(t, Bullish, psar.Bias)
}

func TestSignals_Downtrend(t *testing.T) {
	series := trendSeries(120, 200, -0.5)
	snap, err := Compute(context.Background(), series)
	assert.NoError(t, err)

	r := Signals(snap, series.Closes())
	assert.Equal(t, Bearish, r.Overall)
	// the bearish camp carries exactly half the emitted signals here: the
	// oscillators read the slide as oversold and bollinger stays neutral
	assert.GreaterOrEqual(t, r.Confidence, 0.5)

	rsi, ok := findSignal(r, "rsi")
	assert.True(t, ok)
	assert.Equal(t, Bullish, rsi.Bias)
}

func TestSignals_SingleIndicator(t *testing.T) {
	snap := &Snapshot{RSI: []float64{75}}
	r := Signals(snap, []float64{100})

	assert.Len(t, r.Signals, 1)
	assert.Equal(t, Bearish, r.Overall)
	assert.InDelta(t, 1.0, r.Confidence, 1e-9)
}

func TestSignals_Tie(t *testing.T) {
	snap := &Snapshot{
		RSI:   []float64{25},
		Stoch: &indicator.StochResult{K: []float64{85}},
	}
	r := Signals(snap, []float64{100})

	assert.Len(t, r.Signals, 2)
	assert.Equal(t, Neutral, r.Overall)
	assert.InDelta(t, 0.5, r.Confidence, 1e-9)
}

func TestSignals_Empty(t *testing.T) {
	r := Signals(nil, nil)
	assert.Empty(t, r.Signals)
	assert.Equal(t, Neutral, r.Overall)
	assert.Zero(t, r.Confidence)
}

func TestBiasString(t *testing.T) {
	assert.Equal(t, "bullish", Bullish.String())
	assert.Equal(t, "bearish", Bearish.String())
	assert.Equal(t, "neutral", Neutral.String())
}
