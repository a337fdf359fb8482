package marketdata

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

// DefaultRiskFreeRate is used when no Treasury quote can be fetched.
const DefaultRiskFreeRate = 0.03

// treasuryTickers maps maturities to the Yahoo index symbols that proxy
// them. The 13-week bill covers everything up to a year.
var treasuryTickers = map[string]optionmodels.StockSymbol{
	"1M":  "^IRX",
	"3M":  "^IRX",
	"1Y":  "^IRX",
	"5Y":  "^FVX",
	"10Y": "^TNX",
	"30Y": "^TYX",
}

var treasuryMaturities = []string{"1M", "3M", "1Y", "5Y", "10Y", "30Y"}

// IndexQuoter is the slice of YahooClient the rate service needs.
type IndexQuoter interface {
	FetchIndexQuote(symbol optionmodels.StockSymbol) (float64, error)
}

type RiskFreeRateService struct {
	quoter       IndexQuoter
	fallbackRate float64
}

func NewRiskFreeRateService(quoter IndexQuoter) *RiskFreeRateService {
	return &RiskFreeRateService{
		quoter:       quoter,
		fallbackRate: DefaultRiskFreeRate,
	}
}

// GetTreasuryRate returns the current rate for a maturity as a decimal.
func (s *RiskFreeRateService) GetTreasuryRate(maturity string) (float64, error) {
	ticker, found := treasuryTickers[maturity]
	if !found {
		ticker = treasuryTickers["10Y"]
	}

	yieldPct, err := s.quoter.FetchIndexQuote(ticker)
	if err != nil {
		return 0, fmt.Errorf("GetTreasuryRate: failed to fetch %s yield: %w", maturity, err)
	}

	// Yields quote in percentage points
	return yieldPct / 100, nil
}

// MaturityForExpiry buckets a time to expiration into the Treasury
// maturity whose rate discounts it.
func MaturityForExpiry(timeToExpiryYears float64) string {
	switch {
	case timeToExpiryYears <= 0.25:
		return "3M"
	case timeToExpiryYears <= 1.0:
		return "1Y"
	case timeToExpiryYears <= 5.0:
		return "5Y"
	default:
		return "10Y"
	}
}

// GetRateForExpiry returns the maturity-matched rate, falling back to
// the default when the quote fetch fails.
func (s *RiskFreeRateService) GetRateForExpiry(timeToExpiryYears float64) (float64, string) {
	maturity := MaturityForExpiry(timeToExpiryYears)

	rate, err := s.GetTreasuryRate(maturity)
	if err != nil {
		log.Warnf("GetRateForExpiry: falling back to default rate: %v", err)
		return s.fallbackRate, maturity
	}

	return rate, maturity
}

// GetAllRates fetches every maturity it can; missing maturities are
// omitted from the map.
func (s *RiskFreeRateService) GetAllRates() map[string]float64 {
	rates := make(map[string]float64)

	for _, maturity := range treasuryMaturities {
		rate, err := s.GetTreasuryRate(maturity)
		if err != nil {
			log.Warnf("GetAllRates: skipping %s: %v", maturity, err)
			continue
		}

		rates[maturity] = rate
	}

	return rates
}

func (s *RiskFreeRateService) FallbackRate() float64 {
	return s.fallbackRate
}
