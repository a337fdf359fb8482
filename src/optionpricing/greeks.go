package optionpricing

import (
	"math"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

// GreeksResult holds the theoretical price and sensitivities in natural
// units: theta per year, vega per unit volatility, rho per unit rate.
// ToDTO applies the display scaling used by the API layer.
type GreeksResult struct {
	Price float64
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}

// ToDTO rescales theta to a per-day decay, and vega and rho to a change
// per one percentage point.
func (g GreeksResult) ToDTO() optionmodels.GreeksDTO {
	return optionmodels.GreeksDTO{
		Delta: g.Delta,
		Gamma: g.Gamma,
		Theta: g.Theta / 365,
		Vega:  g.Vega / 100,
		Rho:   g.Rho / 100,
	}
}

// Greeks computes the theoretical price and all five sensitivities from
// a single d1/d2 evaluation, so that related quantities cannot drift
// apart in floating point.
func Greeks(c Contract) (GreeksResult, error) {
	if err := c.Validate(); err != nil {
		return GreeksResult{}, err
	}

	if c.isDegenerate() {
		return degenerateGreeks(c), nil
	}

	d1, d2 := d1d2(c)

	sqrtT := math.Sqrt(c.TimeToExpiry)
	qDiscount := math.Exp(-c.DividendYield * c.TimeToExpiry)
	rDiscount := math.Exp(-c.RiskFreeRate * c.TimeToExpiry)
	pdfD1 := normPdf(d1)

	result := GreeksResult{
		Gamma: qDiscount * pdfD1 / (c.Spot * c.Volatility * sqrtT),
		Vega:  c.Spot * qDiscount * pdfD1 * sqrtT,
	}

	timeDecay := -c.Spot * qDiscount * pdfD1 * c.Volatility / (2 * sqrtT)

	if c.OptionType == optionmodels.OptionTypeCall {
		cdfD1 := normCdf(d1)
		cdfD2 := normCdf(d2)

		result.Price = c.Spot*qDiscount*cdfD1 - c.Strike*rDiscount*cdfD2
		result.Delta = qDiscount * cdfD1
		result.Theta = timeDecay - c.RiskFreeRate*c.Strike*rDiscount*cdfD2 + c.DividendYield*c.Spot*qDiscount*cdfD1
		result.Rho = c.Strike * c.TimeToExpiry * rDiscount * cdfD2
	} else {
		cdfNegD1 := normCdf(-d1)
		cdfNegD2 := normCdf(-d2)

		result.Price = c.Strike*rDiscount*cdfNegD2 - c.Spot*qDiscount*cdfNegD1
		result.Delta = qDiscount * (normCdf(d1) - 1)
		result.Theta = timeDecay + c.RiskFreeRate*c.Strike*rDiscount*cdfNegD2 - c.DividendYield*c.Spot*qDiscount*cdfNegD1
		result.Rho = -c.Strike * c.TimeToExpiry * rDiscount * cdfNegD2
	}

	return result, nil
}

// degenerateGreeks covers T=0 and sigma=0: gamma, theta and vega vanish
// and delta collapses to the exercise indicator.
func degenerateGreeks(c Contract) GreeksResult {
	result := GreeksResult{
		Price: c.IntrinsicValue(),
	}

	if c.OptionType == optionmodels.OptionTypeCall {
		if c.Spot > c.Strike {
			result.Delta = 1
		}
	} else {
		if c.Spot < c.Strike {
			result.Delta = -1
		}
	}

	return result
}
