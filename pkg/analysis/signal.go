package analysis

import (
	log "github.com/sirupsen/logrus"

	"github.com/quantfabric/taengine/pkg/datatype/floats"
	"github.com/quantfabric/taengine/pkg/indicator"
)

type Bias int

const (
	Neutral Bias = iota
	Bullish
	Bearish
)

func (b Bias) String() string {
	switch b {
	case Bullish:
		return "bullish"
	case Bearish:
		return "bearish"
	}
	return "neutral"
}

// Signal is a single indicator's directional reading.
type Signal struct {
	Name   string
	Bias   Bias
	Reason string
}

// Report aggregates per-indicator signals into an overall bias. Confidence
// is the winning camp's share of all emitted signals, so an all-neutral
// report scores zero.
type Report struct {
	Signals    []Signal
	Overall    Bias
	Confidence float64
}

// Signals derives rule-based readings from a computed snapshot. Indicators
// whose warm-up never completed on this series simply stay silent.
func Signals(snap *Snapshot, closes []float64) *Report {
	r := &Report{}
	if snap == nil || len(closes) == 0 {
		return r
	}
	price := floats.Slice(closes).Last()

	if slow, ok := lastValid(snap.SMASlow); ok {
		if price > slow {
			r.add("trend", Bullish, "close above the slow moving average")
		} else if price < slow {
			r.add("trend", Bearish, "close below the slow moving average")
		} else {
			r.add("trend", Neutral, "close on the slow moving average")
		}
	}

	if fast, ok := lastValid(snap.SMAFast); ok {
		if slow, ok := lastValid(snap.SMASlow); ok {
			if fast > slow {
				r.add("ma-cross", Bullish, "fast moving average above slow")
			} else if fast < slow {
				r.add("ma-cross", Bearish, "fast moving average below slow")
			} else {
				r.add("ma-cross", Neutral, "moving averages overlap")
			}
		}
	}

	if rsi, ok := lastValid(snap.RSI); ok {
		switch {
		case rsi > 70:
			r.add("rsi", Bearish, "overbought")
		case rsi < 30:
			r.add("rsi", Bullish, "oversold")
		default:
			r.add("rsi", Neutral, "mid range")
		}
	}

	if snap.MACD != nil {
		if line, ok := lastValid(snap.MACD.Line); ok {
			if sig, ok := lastValid(snap.MACD.Signal); ok {
				if line > sig {
					r.add("macd", Bullish, "line above signal")
				} else if line < sig {
					r.add("macd", Bearish, "line below signal")
				} else {
					r.add("macd", Neutral, "line on signal")
				}
			}
		}
	}

	if snap.Bollinger != nil {
		if upper, ok := lastValid(snap.Bollinger.Upper); ok {
			if lower, ok := lastValid(snap.Bollinger.Lower); ok {
				switch {
				case price > upper:
					r.add("bollinger", Bearish, "close above the upper band")
				case price < lower:
					r.add("bollinger", Bullish, "close below the lower band")
				default:
					r.add("bollinger", Neutral, "close inside the bands")
				}
			}
		}
	}

	if snap.Stoch != nil {
		if k, ok := lastValid(snap.Stoch.K); ok {
			switch {
			case k > 80:
				r.add("stochastic", Bearish, "overbought")
			case k < 20:
				r.add("stochastic", Bullish, "oversold")
			default:
				r.add("stochastic", Neutral, "mid range")
			}
		}
	}

	if snap.Ichimoku != nil {
		if a, ok := lastValid(snap.Ichimoku.SenkouA); ok {
			if b, ok := lastValid(snap.Ichimoku.SenkouB); ok {
				top, bottom := a, b
				if b > a {
					top, bottom = b, a
				}
				switch {
				case price > top:
					r.add("ichimoku", Bullish, "close above the cloud")
				case price < bottom:
					r.add("ichimoku", Bearish, "close below the cloud")
				default:
					r.add("ichimoku", Neutral, "close inside the cloud")
				}
			}
		}
	}

	if snap.PSAR != nil && len(snap.PSAR.Up) > 0 {
		if _, ok := lastValid(snap.PSAR.Values); ok {
			if snap.PSAR.Up[len(snap.PSAR.Up)-1] {
				r.add("psar", Bullish, "stop below price")
			} else {
				r.add("psar", Bearish, "stop above price")
			}
		}
	}

	r.tally()
	log.WithFields(log.Fields{
		"signals":    len(r.Signals),
		"overall":    r.Overall.String(),
		"confidence": r.Confidence,
	}).Debug("signals generated")
	return r
}

func (r *Report) add(name string, bias Bias, reason string) {
	r.Signals = append(r.Signals, Signal{Name: name, Bias: bias, Reason: reason})
}

func (r *Report) tally() {
	if len(r.Signals) == 0 {
		return
	}

	var bull, bear int
	for _, s := range r.Signals {
		switch s.Bias {
		case Bullish:
			bull++
		case Bearish:
			bear++
		}
	}

	if bull > bear {
		r.Overall = Bullish
		r.Confidence = float64(bull) / float64(len(r.Signals))
	} else if bear > bull {
		r.Overall = Bearish
		r.Confidence = float64(bear) / float64(len(r.Signals))
	} else if bull > 0 {
		r.Overall = Neutral
		r.Confidence = float64(bull) / float64(len(r.Signals))
	}
}

// lastValid returns the last defined value of an aligned indicator output.
func lastValid(values []float64) (float64, bool) {
	for i := len(values) - 1; i >= 0; i-- {
		if indicator.IsValid(values[i]) {
			return values[i], true
		}
	}
	return 0, false
}
