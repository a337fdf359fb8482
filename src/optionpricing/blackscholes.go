package optionpricing

import (
	"math"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

// d1d2 evaluates both Black-Scholes terms in one place so that pricing
// and every greek share the same values. Callers must rule out
// degenerate inputs (T=0 or sigma=0) first.
func d1d2(c Contract) (float64, float64) {
	sqrtT := math.Sqrt(c.TimeToExpiry)
	d1 := (math.Log(c.Spot/c.Strike) + (c.RiskFreeRate-c.DividendYield+0.5*c.Volatility*c.Volatility)*c.TimeToExpiry) / (c.Volatility * sqrtT)
	d2 := d1 - c.Volatility*sqrtT

	return d1, d2
}

// Price computes the Black-Scholes-Merton theoretical value of a
// European option. Degenerate contracts (T=0 or sigma=0) price at
// intrinsic value instead of evaluating d1/d2.
func Price(c Contract) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	return priceUnchecked(c), nil
}

func priceUnchecked(c Contract) float64 {
	if c.isDegenerate() {
		return c.IntrinsicValue()
	}

	d1, d2 := d1d2(c)
	spotDiscount := c.Spot * math.Exp(-c.DividendYield*c.TimeToExpiry)
	strikeDiscount := c.Strike * math.Exp(-c.RiskFreeRate*c.TimeToExpiry)

	if c.OptionType == optionmodels.OptionTypeCall {
		return spotDiscount*normCdf(d1) - strikeDiscount*normCdf(d2)
	}

	return strikeDiscount*normCdf(-d2) - spotDiscount*normCdf(-d1)
}
