// Package analysis composes the individual indicators into series-level
// products: a Snapshot holding the full default indicator set for one price
// series, and rule-based trading signals derived from it.
package analysis

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/quantfabric/taengine/pkg/datatype/floats"
	"github.com/quantfabric/taengine/pkg/indicator"
	"github.com/quantfabric/taengine/pkg/types"
)

// Default lookbacks for the snapshot. Individual indicator functions stay
// parameterized; these only pin the composed view.
const (
	FastSMAPeriod   = 20
	SlowSMAPeriod   = 50
	TrendSMAPeriod  = 200
	FastEMAPeriod   = 12
	SlowEMAPeriod   = 26
	SignalPeriod    = 9
	RSIPeriod       = 14
	StochKPeriod    = 14
	StochDPeriod    = 3
	WilliamsRPeriod = 14
	CCIPeriod       = 20
	ATRPeriod       = 14
	BollPeriod      = 20
	BollBandWidth   = 2.0
	VolPeriod       = 20
	LevelWindow     = 5
	ProfileBins     = 20

	IchimokuTenkan = 9
	IchimokuKijun  = 26
	IchimokuSpanB  = 52

	PSARStep    = 0.02
	PSARMaxStep = 0.2
)

// Snapshot is the default indicator set computed over one price series.
// Slice-valued members are aligned to the input bars; members whose
// lookback exceeds the series length come back empty.
type Snapshot struct {
	SMAFast  []float64
	SMASlow  []float64
	SMATrend []float64
	EMAFast  []float64
	EMASlow  []float64

	MACD      *indicator.MACDResult
	Bollinger *indicator.BollingerBands

	RSI       []float64
	Stoch     *indicator.StochResult
	WilliamsR []float64
	CCI       []float64

	ATR        []float64
	Volatility []float64
	VWAP       float64
	VWAPValid  bool

	Ichimoku *indicator.IchimokuResult
	PSAR     *indicator.PSARResult

	Drawdown   *indicator.DrawdownResult
	Fibonacci  *indicator.FibonacciLevels
	PivotPoint *indicator.PivotPoints
	Levels     *indicator.SupportResistance
	Profile    []indicator.VolumeBin
}

// Compute validates the series and fills a Snapshot, running independent
// indicator families concurrently. A lookback longer than the series is not
// an error; the affected members stay empty.
func Compute(ctx context.Context, series types.PriceSeries) (*Snapshot, error) {
	if err := series.Validate(); err != nil {
		return nil, errors.Wrap(err, "snapshot")
	}
	if len(series) == 0 {
		return nil, errors.New("snapshot: empty series")
	}

	highs := series.Highs()
	lows := series.Lows()
	closes := series.Closes()
	volumes := series.Volumes()

	snap := &Snapshot{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if snap.SMAFast, err = indicator.SMA(closes, FastSMAPeriod); err != nil {
			return err
		}
		if snap.SMASlow, err = indicator.SMA(closes, SlowSMAPeriod); err != nil {
			return err
		}
		if snap.SMATrend, err = indicator.SMA(closes, TrendSMAPeriod); err != nil {
			return err
		}
		if snap.EMAFast, err = indicator.EMA(closes, FastEMAPeriod); err != nil {
			return err
		}
		snap.EMASlow, err = indicator.EMA(closes, SlowEMAPeriod)
		return err
	})

	g.Go(func() (err error) {
		if snap.MACD, err = indicator.MACD(closes, FastEMAPeriod, SlowEMAPeriod, SignalPeriod); err != nil {
			return err
		}
		snap.Bollinger, err = indicator.Boll(closes, BollPeriod, BollBandWidth)
		return err
	})

	g.Go(func() (err error) {
		if snap.RSI, err = indicator.RSI(closes, RSIPeriod); err != nil {
			return err
		}
		if snap.Stoch, err = indicator.Stoch(highs, lows, closes, StochKPeriod, StochDPeriod); err != nil {
			return err
		}
		if snap.WilliamsR, err = indicator.WilliamsR(highs, lows, closes, WilliamsRPeriod); err != nil {
			return err
		}
		snap.CCI, err = indicator.CCI(highs, lows, closes, CCIPeriod)
		return err
	})

	g.Go(func() (err error) {
		if snap.ATR, err = indicator.ATR(highs, lows, closes, ATRPeriod); err != nil {
			return err
		}
		if snap.Volatility, err = indicator.RealizedVolatility(closes, VolPeriod); err != nil {
			return err
		}
		snap.VWAP, snap.VWAPValid, err = indicator.VWAP(closes, volumes)
		return err
	})

	g.Go(func() (err error) {
		if snap.Ichimoku, err = indicator.Ichimoku(highs, lows, closes, IchimokuTenkan, IchimokuKijun, IchimokuSpanB); err != nil {
			return err
		}
		snap.PSAR, err = indicator.PSAR(highs, lows, PSARStep, PSARMaxStep)
		return err
	})

	g.Go(func() (err error) {
		if snap.Drawdown, err = indicator.Drawdown(closes); err != nil {
			return err
		}

		hi := floats.Slice(highs).Max()
		lo := floats.Slice(lows).Min()
		if snap.Fibonacci, err = indicator.FibonacciRetracement(hi, lo); err != nil {
			return err
		}

		last := series[len(series)-1]
		if snap.PivotPoint, err = indicator.CalculatePivotPoints(last.High, last.Low, last.Close); err != nil {
			return err
		}

		if snap.Levels, err = indicator.FindSupportResistance(closes, LevelWindow); err != nil {
			return err
		}
		snap.Profile, err = indicator.VolumeProfile(closes, volumes, ProfileBins)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "snapshot")
	}

	log.WithFields(log.Fields{
		"bars":      len(series),
		"vwapValid": snap.VWAPValid,
	}).Debug("snapshot computed")
	return snap, nil
}
