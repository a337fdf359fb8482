package optionpricing

import (
	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

// Contract is the immutable pricing input. All computations on it are
// pure functions safe for concurrent use.
type Contract struct {
	Spot          float64
	Strike        float64
	TimeToExpiry  float64 // years
	RiskFreeRate  float64
	Volatility    float64
	DividendYield float64
	OptionType    optionmodels.OptionType
}

func (c Contract) Validate() error {
	if c.Spot <= 0 {
		return newInputError("spot", c.Spot, "must be positive")
	}

	if c.Strike <= 0 {
		return newInputError("strike", c.Strike, "must be positive")
	}

	if c.TimeToExpiry < 0 {
		return newInputError("time_to_expiry", c.TimeToExpiry, "cannot be negative")
	}

	if c.Volatility < 0 {
		return newInputError("volatility", c.Volatility, "cannot be negative")
	}

	if c.DividendYield < 0 {
		return newInputError("dividend_yield", c.DividendYield, "cannot be negative")
	}

	if err := c.OptionType.Validate(); err != nil {
		return newInputError("option_type", 0, err.Error())
	}

	return nil
}

// IntrinsicValue is the payoff at immediate exercise, ignoring time value.
func (c Contract) IntrinsicValue() float64 {
	if c.OptionType == optionmodels.OptionTypeCall {
		return max(c.Spot-c.Strike, 0)
	}

	return max(c.Strike-c.Spot, 0)
}

// isDegenerate reports whether the closed-form d1/d2 terms are undefined.
func (c Contract) isDegenerate() bool {
	return c.TimeToExpiry == 0 || c.Volatility == 0
}

// WithVolatility returns a copy priced at a different volatility, used
// by the implied volatility search.
func (c Contract) WithVolatility(sigma float64) Contract {
	c.Volatility = sigma
	return c
}
