package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/optionpricing"
	"github.com/jiaming2012/options-pricing/src/utils"
)

type RunArgs struct {
	Spot          float64
	Strike        float64
	Expiration    string
	TimeToExpiry  float64
	RiskFreeRate  float64
	Volatility    float64
	DividendYield float64
	OptionType    string
	MarketPrice   float64
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/price_option/main.go --spot 100 --strike 105 --expiration 2026-12-18 --vol 0.2 --type call",
	Short: "Price an option and print its greeks",
	Run: func(cmd *cobra.Command, args []string) {
		runArgs := RunArgs{}
		var err error

		if runArgs.Spot, err = cmd.Flags().GetFloat64("spot"); err != nil {
			log.Fatalf("error getting spot: %v", err)
		}

		if runArgs.Strike, err = cmd.Flags().GetFloat64("strike"); err != nil {
			log.Fatalf("error getting strike: %v", err)
		}

		if runArgs.Expiration, err = cmd.Flags().GetString("expiration"); err != nil {
			log.Fatalf("error getting expiration: %v", err)
		}

		if runArgs.TimeToExpiry, err = cmd.Flags().GetFloat64("years"); err != nil {
			log.Fatalf("error getting years: %v", err)
		}

		if runArgs.RiskFreeRate, err = cmd.Flags().GetFloat64("rate"); err != nil {
			log.Fatalf("error getting rate: %v", err)
		}

		if runArgs.Volatility, err = cmd.Flags().GetFloat64("vol"); err != nil {
			log.Fatalf("error getting vol: %v", err)
		}

		if runArgs.DividendYield, err = cmd.Flags().GetFloat64("dividend"); err != nil {
			log.Fatalf("error getting dividend: %v", err)
		}

		if runArgs.OptionType, err = cmd.Flags().GetString("type"); err != nil {
			log.Fatalf("error getting type: %v", err)
		}

		if runArgs.MarketPrice, err = cmd.Flags().GetFloat64("market-price"); err != nil {
			log.Fatalf("error getting market-price: %v", err)
		}

		if err := Run(runArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func resolveTimeToExpiry(args RunArgs) (float64, error) {
	if args.Expiration != "" {
		return utils.YearsUntilExpirationDate(args.Expiration, time.Now().UTC())
	}

	if args.TimeToExpiry > 0 {
		return args.TimeToExpiry, nil
	}

	return 0, fmt.Errorf("resolveTimeToExpiry: either --expiration or --years is required")
}

func Run(args RunArgs) error {
	timeToExpiry, err := resolveTimeToExpiry(args)
	if err != nil {
		return fmt.Errorf("Run: %v", err)
	}

	optionType := optionmodels.OptionType(args.OptionType)
	if err := optionType.Validate(); err != nil {
		return fmt.Errorf("Run: %v", err)
	}

	contract := optionpricing.Contract{
		Spot:          args.Spot,
		Strike:        args.Strike,
		TimeToExpiry:  timeToExpiry,
		RiskFreeRate:  args.RiskFreeRate,
		Volatility:    args.Volatility,
		DividendYield: args.DividendYield,
		OptionType:    optionType,
	}

	if args.MarketPrice > 0 {
		result, ivErr := optionpricing.ImpliedVolatility(optionpricing.ImpliedVolatilityQuery{
			Contract:    contract,
			MarketPrice: args.MarketPrice,
		})
		if ivErr != nil {
			return fmt.Errorf("Run: %v", ivErr)
		}

		log.Infof("Solved implied volatility %.4f in %d iterations", result.Volatility, result.Iterations)
		contract = contract.WithVolatility(result.Volatility)
	}

	price, err := optionpricing.Price(contract)
	if err != nil {
		return fmt.Errorf("Run: %v", err)
	}

	greeks, err := optionpricing.Greeks(contract)
	if err != nil {
		return fmt.Errorf("Run: %v", err)
	}

	dto := greeks.ToDTO()
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetHeader([]string{"", "Value"})

	table.Append([]string{"Price", fmt.Sprintf("$%s", p.Sprintf("%.4f", price))})
	table.Append([]string{"Delta", fmt.Sprintf("%.4f", dto.Delta)})
	table.Append([]string{"Gamma", fmt.Sprintf("%.6f", dto.Gamma)})
	table.Append([]string{"Theta/day", fmt.Sprintf("%.4f", dto.Theta)})
	table.Append([]string{"Vega/1%", fmt.Sprintf("%.4f", dto.Vega)})
	table.Append([]string{"Rho/1%", fmt.Sprintf("%.4f", dto.Rho)})

	fmt.Printf("%s %s, strike $%s, expiring in %.4f years:\n", contract.OptionType, p.Sprintf("%.2f", contract.Spot), p.Sprintf("%.2f", contract.Strike), timeToExpiry)
	table.Render()

	return nil
}

func main() {
	runCmd.Flags().Float64("spot", 0, "Current price of the underlying")
	runCmd.Flags().Float64("strike", 0, "Strike price")
	runCmd.Flags().String("expiration", "", "Expiration date, e.g. 2026-12-18")
	runCmd.Flags().Float64("years", 0, "Time to expiry in years, alternative to --expiration")
	runCmd.Flags().Float64("rate", 0.05, "Annualized risk-free rate")
	runCmd.Flags().Float64("vol", 0.2, "Annualized volatility")
	runCmd.Flags().Float64("dividend", 0, "Continuous dividend yield")
	runCmd.Flags().String("type", "call", "Option type: call or put")
	runCmd.Flags().Float64("market-price", 0, "Observed market price: solves implied volatility first")

	runCmd.MarkFlagRequired("spot")
	runCmd.MarkFlagRequired("strike")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}
