package optionpricing

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

const tradingDaysPerYear = 252

// HistoricalVolatility annualizes the sample standard deviation of log
// returns over a trailing window of closing prices.
func HistoricalVolatility(closes []float64, window int) (float64, error) {
	if window < 2 {
		return 0, newInputError("window", float64(window), "must be at least 2")
	}

	if len(closes) < 2 {
		return 0, newInputError("closes", float64(len(closes)), "need at least 2 closing prices")
	}

	logReturns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return 0, newInputError("closes", closes[i], "closing prices must be positive")
		}

		logReturns = append(logReturns, math.Log(closes[i]/closes[i-1]))
	}

	// A single return has no dispersion to measure.
	if len(logReturns) < 2 {
		return 0, nil
	}

	if len(logReturns) > window {
		logReturns = logReturns[len(logReturns)-window:]
	}

	sd, err := stats.StandardDeviationSample(logReturns)
	if err != nil {
		return 0, fmt.Errorf("HistoricalVolatility: failed to calculate the standard deviation: %v", err)
	}

	return sd * math.Sqrt(tradingDaysPerYear), nil
}
