package pricing

import (
	"pms-calendar/internal/domain/calendar"
)

const (
	DefaultSurchargeThreshold = 3
	DefaultSurchargePercent   = 10
)

type PriceCalculator interface {
	Quote(stay []calendar.Date, daily DayRates, partySize int) Quote
}

// Quote is a priced stay. Nights lists each day's charge before the party
// multiplier; Total is the figure to bill.
type Quote struct {
	Nights    []NightCharge
	Subtotal  Money
	PartySize int
	Surcharge bool
	Total     Money
}

type NightCharge struct {
	Date   calendar.Date
	Base   Money
	Charge Money
	Priced bool
}

// DefaultPriceCalculator sums the day prices of a stay, adding SurchargePercent
// to each day when the party is larger than SurchargeThreshold, then
// multiplies the sum by the party size. Days without a price count as zero.
// Party size is not validated here.
type DefaultPriceCalculator struct {
	SurchargeThreshold int
	SurchargePercent   int64
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		SurchargeThreshold: DefaultSurchargeThreshold,
		SurchargePercent:   DefaultSurchargePercent,
	}
}

func (pc *DefaultPriceCalculator) Quote(stay []calendar.Date, daily DayRates, partySize int) Quote {
	surcharge := partySize > pc.SurchargeThreshold
	q := Quote{
		Nights:    make([]NightCharge, 0, len(stay)),
		PartySize: partySize,
		Surcharge: surcharge,
	}

	for _, d := range stay {
		rate, ok := daily[d]
		charge := rate.Price
		if surcharge {
			charge = charge.AddPercent(pc.SurchargePercent)
		}
		q.Nights = append(q.Nights, NightCharge{Date: d, Base: rate.Price, Charge: charge, Priced: ok})
		q.Subtotal = q.Subtotal.Add(charge)
	}

	q.Total = q.Subtotal.Times(int64(partySize))
	return q
}
