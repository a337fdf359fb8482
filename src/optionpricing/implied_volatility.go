package optionpricing

import (
	"fmt"
	"math"
)

const (
	// Search bracket for annualized volatility.
	sigmaFloor = 1e-6
	sigmaCeil  = 5.0

	priceTolerance    = 1e-6
	maxIterations     = 200
	initialSigmaGuess = 0.3
	minVega           = 1e-10
)

// ImpliedVolatilityQuery is a contract with sigma unset plus the
// observed market price to invert for.
type ImpliedVolatilityQuery struct {
	Contract    Contract
	MarketPrice float64
}

type ImpliedVolatilityResult struct {
	Volatility float64
	ModelPrice float64
	Iterations int
}

// ImpliedVolatility solves for the sigma that reproduces the observed
// market price. The search is a Newton-Raphson iteration kept inside a
// maintained [lo, hi] bracket; whenever the Newton step leaves the
// bracket or vega collapses, the step falls back to bisection. A market
// price that is unreachable inside the bracket is reported as a
// ConvergenceError, never clamped to a boundary value.
func ImpliedVolatility(q ImpliedVolatilityQuery) (ImpliedVolatilityResult, error) {
	c := q.Contract.WithVolatility(0)

	if err := c.Validate(); err != nil {
		return ImpliedVolatilityResult{}, err
	}

	if q.MarketPrice <= 0 {
		return ImpliedVolatilityResult{}, newInputError("market_price", q.MarketPrice, "must be positive")
	}

	if c.TimeToExpiry == 0 {
		return ImpliedVolatilityResult{}, &ConvergenceError{
			Reason: "contract is expired: price carries no volatility information",
		}
	}

	if intrinsic := c.IntrinsicValue(); q.MarketPrice < intrinsic-priceTolerance {
		return ImpliedVolatilityResult{}, &ConvergenceError{
			Reason: fmt.Sprintf("market price %v below intrinsic value %v", q.MarketPrice, intrinsic),
		}
	}

	priceAtFloor := priceUnchecked(c.WithVolatility(sigmaFloor))
	if q.MarketPrice < priceAtFloor-priceTolerance {
		return ImpliedVolatilityResult{}, &ConvergenceError{
			Reason: fmt.Sprintf("market price %v below minimum achievable price %v at sigma=%v", q.MarketPrice, priceAtFloor, sigmaFloor),
		}
	}

	priceAtCeil := priceUnchecked(c.WithVolatility(sigmaCeil))
	if q.MarketPrice > priceAtCeil+priceTolerance {
		return ImpliedVolatilityResult{}, &ConvergenceError{
			Reason: fmt.Sprintf("market price %v above maximum achievable price %v at sigma=%v", q.MarketPrice, priceAtCeil, sigmaCeil),
		}
	}

	lo, hi := sigmaFloor, sigmaCeil
	sigma := initialSigmaGuess

	var diff float64
	for i := 1; i <= maxIterations; i++ {
		modelPrice := priceUnchecked(c.WithVolatility(sigma))
		diff = modelPrice - q.MarketPrice

		if math.Abs(diff) < priceTolerance {
			return ImpliedVolatilityResult{
				Volatility: sigma,
				ModelPrice: modelPrice,
				Iterations: i,
			}, nil
		}

		// Black-Scholes price is monotone increasing in sigma, so a
		// positive diff means sigma is an upper bound.
		if diff > 0 {
			hi = sigma
		} else {
			lo = sigma
		}

		vega := vegaUnchecked(c.WithVolatility(sigma))
		newton := sigma - diff/vega

		if vega < minVega || newton <= lo || newton >= hi {
			sigma = (lo + hi) / 2
		} else {
			sigma = newton
		}
	}

	return ImpliedVolatilityResult{}, &ConvergenceError{
		Reason:     "iteration budget exhausted",
		Iterations: maxIterations,
		LastSigma:  sigma,
		LastDiff:   diff,
	}
}

func vegaUnchecked(c Contract) float64 {
	if c.isDegenerate() {
		return 0
	}

	d1, _ := d1d2(c)

	return c.Spot * math.Exp(-c.DividendYield*c.TimeToExpiry) * normPdf(d1) * math.Sqrt(c.TimeToExpiry)
}
