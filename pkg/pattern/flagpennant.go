package pattern

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/quantfabric/taengine/pkg/datatype/floats"
)

/*
Flag / pennant: a strong directional move (the pole) followed by a narrow
consolidation whose trend lines either converge (pennant) or run parallel
against the move (flag).

- https://www.investopedia.com/terms/f/flag.asp
*/

const (
	// poleBars is how much trailing history the pole is measured over.
	poleBars = 20
	// minPoleMove is the least relative move that counts as a pole.
	minPoleMove = 0.05
	// parallelSlopeTolerance bounds the slope gap for flag trend lines.
	parallelSlopeTolerance = 0.001
)

type FlagKind int

const (
	FlagNone FlagKind = iota
	Flag
	Pennant
)

// FlagPennant reports a consolidation pattern following a strong move.
type FlagPennant struct {
	Detected bool
	Kind     FlagKind
	Bullish  bool
}

// DetectFlagPennant measures the pole over the last poleBars closes and
// fits regression lines through the last window highs and lows to classify
// the consolidation.
func DetectFlagPennant(highs, lows, closes []float64, window int) *FlagPennant {
	if len(closes) < poleBars || len(highs) < window || len(lows) < window {
		return &FlagPennant{}
	}

	pole := floats.Slice(closes).Tail(poleBars)
	if pole[0] == 0 {
		return &FlagPennant{}
	}
	move := (pole.Last() - pole[0]) / pole[0]
	if math.Abs(move) < minPoleMove {
		return &FlagPennant{}
	}
	bullish := move > 0

	consHighs := floats.Slice(highs).Tail(window)
	consLows := floats.Slice(lows).Tail(window)

	consRange := (consHighs.Max() - consLows.Min()) / consLows.Min()
	if consRange >= 0.5*math.Abs(move) {
		return &FlagPennant{}
	}

	x := make([]float64, window)
	for i := range x {
		x[i] = float64(i)
	}
	_, highSlope := stat.LinearRegression(x, consHighs, nil, false)
	_, lowSlope := stat.LinearRegression(x, consLows, nil, false)

	// converging trend lines make a pennant
	if (bullish && highSlope < 0 && lowSlope > 0) || (!bullish && highSlope > 0 && lowSlope < 0) {
		return &FlagPennant{Detected: true, Kind: Pennant, Bullish: bullish}
	}

	// parallel lines sloping against the move make a flag
	if math.Abs(highSlope-lowSlope) < parallelSlopeTolerance &&
		((bullish && highSlope < 0) || (!bullish && highSlope > 0)) {
		return &FlagPennant{Detected: true, Kind: Flag, Bullish: bullish}
	}

	return &FlagPennant{}
}
