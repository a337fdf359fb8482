package optionmodels

// OptionChainCsvDTO flattens a chain entry for gocsv export.
type OptionChainCsvDTO struct {
	Symbol            string  `csv:"symbol"`
	Underlying        string  `csv:"underlying"`
	ExpirationDate    string  `csv:"expiration_date"`
	OptionType        string  `csv:"option_type"`
	Strike            float64 `csv:"strike"`
	Bid               float64 `csv:"bid"`
	Ask               float64 `csv:"ask"`
	LastPrice         float64 `csv:"last_price"`
	Volume            int     `csv:"volume"`
	OpenInterest      int     `csv:"open_interest"`
	ImpliedVolatility float64 `csv:"implied_volatility"`
	ModelPrice        float64 `csv:"model_price"`
	Difference        float64 `csv:"difference"`
	Delta             float64 `csv:"delta"`
	Gamma             float64 `csv:"gamma"`
	Theta             float64 `csv:"theta"`
	Vega              float64 `csv:"vega"`
	Rho               float64 `csv:"rho"`
}

func (e *OptionChainEntry) ToCsvDTO() *OptionChainCsvDTO {
	deref := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}

	derefInt := func(v *int) int {
		if v == nil {
			return 0
		}
		return *v
	}

	dto := &OptionChainCsvDTO{
		Symbol:            e.Symbol,
		Underlying:        e.Underlying,
		ExpirationDate:    e.ExpirationDate,
		OptionType:        string(e.OptionType),
		Strike:            e.Strike,
		Bid:               deref(e.Bid),
		Ask:               deref(e.Ask),
		LastPrice:         deref(e.LastPrice),
		Volume:            derefInt(e.Volume),
		OpenInterest:      derefInt(e.OpenInterest),
		ImpliedVolatility: deref(e.ImpliedVolatility),
		ModelPrice:        deref(e.ModelPrice),
		Difference:        deref(e.Difference),
	}

	if e.Greeks != nil {
		dto.Delta = e.Greeks.Delta
		dto.Gamma = e.Greeks.Gamma
		dto.Theta = e.Greeks.Theta
		dto.Vega = e.Greeks.Vega
		dto.Rho = e.Greeks.Rho
	}

	return dto
}
