package indicator

import "github.com/pkg/errors"

/*
pivotpoints implements classic floor-trader pivot points computed from the
prior period's high, low and close.

- https://www.investopedia.com/terms/p/pivotpoint.asp
*/

type PivotPoints struct {
	Pivot float64
	R1    float64
	R2    float64
	R3    float64
	S1    float64
	S2    float64
	S3    float64
}

func CalculatePivotPoints(high, low, close float64) (*PivotPoints, error) {
	if high < low {
		return nil, errors.Errorf("pivot points: high %f below low %f", high, low)
	}

	p := (high + low + close) / 3.0
	spread := high - low
	return &PivotPoints{
		Pivot: p,
		R1:    2*p - low,
		R2:    p + spread,
		R3:    high + 2*(p-low),
		S1:    2*p - high,
		S2:    p - spread,
		S3:    low - 2*(high-p),
	}, nil
}
