package pricing

import (
	"errors"
	"math"

	"pms-calendar/internal/domain/rangeset"
)

var ErrInvalidPercentIncrement = errors.New("percent increment must be a finite number")

// Rate is what a price range charges per day. PercentIncrement is stored with
// the range for the dashboard and the channel manager; quoting uses Price only.
type Rate struct {
	Price            Money
	PercentIncrement float64
}

func NewRate(priceCents int64, percentIncrement float64) (Rate, error) {
	price, err := NewNonNegativeMoney(priceCents)
	if err != nil {
		return Rate{}, err
	}
	if math.IsNaN(percentIncrement) || math.IsInf(percentIncrement, 0) {
		return Rate{}, ErrInvalidPercentIncrement
	}
	return Rate{Price: price, PercentIncrement: percentIncrement}, nil
}

type PriceRange = rangeset.Range[Rate]
