package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-pricing/src/marketdata"
	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/utils"
)

type RunArgs struct {
	Ticker        string
	Expiration    string
	Limit         int
	Outdir        string
	ListContracts bool
	GoEnv         string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/export_chain/main.go --ticker AAPL --expiration 2026-12-18 --outdir chains/aapl.csv",
	Short: "Export an option chain with model prices and greeks to CSV",
	Run: func(cmd *cobra.Command, args []string) {
		runArgs := RunArgs{}
		var err error

		if runArgs.Ticker, err = cmd.Flags().GetString("ticker"); err != nil {
			log.Fatalf("error getting ticker: %v", err)
		}

		if runArgs.Expiration, err = cmd.Flags().GetString("expiration"); err != nil {
			log.Fatalf("error getting expiration: %v", err)
		}

		if runArgs.Limit, err = cmd.Flags().GetInt("limit"); err != nil {
			log.Fatalf("error getting limit: %v", err)
		}

		if runArgs.Outdir, err = cmd.Flags().GetString("outdir"); err != nil {
			log.Fatalf("error getting outdir: %v", err)
		}

		if runArgs.ListContracts, err = cmd.Flags().GetBool("list-contracts"); err != nil {
			log.Fatalf("error getting list-contracts: %v", err)
		}

		if runArgs.GoEnv, err = cmd.Flags().GetString("go-env"); err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		if err := Run(runArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

// listContracts prints the Polygon reference listing instead of
// exporting quotes. Useful for discovering tradable strikes before an
// export.
func listContracts(args RunArgs, ticker optionmodels.StockSymbol) error {
	polygonApiKey := os.Getenv("POLYGON_API_KEY")
	if polygonApiKey == "" {
		return fmt.Errorf("listContracts: missing POLYGON_API_KEY environment variable")
	}

	client := marketdata.NewPolygonOptionsClient(polygonApiKey)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	contracts, err := client.ListContracts(ctx, ticker, optionmodels.ExpirationDate(args.Expiration), args.Limit)
	if err != nil {
		return fmt.Errorf("listContracts: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Symbol", "Type", "Strike", "Expiration"})

	for _, contract := range contracts {
		table.Append([]string{
			contract.Symbol,
			string(contract.OptionType),
			fmt.Sprintf("%.2f", contract.Strike),
			contract.ExpirationDt.String(),
		})
	}

	table.Render()
	log.Infof("Listed %d contracts for %s", len(contracts), ticker)

	return nil
}

func Run(args RunArgs) error {
	projectsDir := os.Getenv("PROJECTS_DIR")
	if projectsDir == "" {
		log.Fatalf("missing PROJECTS_DIR environment variable")
	}

	if err := utils.InitEnvironmentVariables(projectsDir, args.GoEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	ticker := optionmodels.NewStockSymbol(args.Ticker)
	if err := ticker.Validate(); err != nil {
		return fmt.Errorf("Run: %v", err)
	}

	if args.ListContracts {
		return listContracts(args, ticker)
	}

	yahooClient := marketdata.NewYahooClient()
	rateService := marketdata.NewRiskFreeRateService(yahooClient)

	chain, err := yahooClient.FetchChain(ticker, optionmodels.ExpirationDate(args.Expiration))
	if err != nil {
		return fmt.Errorf("Run: %v", err)
	}

	now := time.Now().UTC()
	timeToExpiry, err := utils.YearsUntilExpirationDate(chain.ExpirationDate.String(), now)
	if err != nil {
		return fmt.Errorf("Run: %v", err)
	}

	riskFreeRate, maturity := rateService.GetRateForExpiry(timeToExpiry)
	response := marketdata.BuildChainResponse(chain, riskFreeRate, maturity, now, args.Limit)

	rows := make([]*optionmodels.OptionChainCsvDTO, 0, len(response.Calls)+len(response.Puts))
	for i := range response.Calls {
		rows = append(rows, response.Calls[i].ToCsvDTO())
	}
	for i := range response.Puts {
		rows = append(rows, response.Puts[i].ToCsvDTO())
	}

	dir := filepath.Dir(args.Outdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	file, err := os.Create(args.Outdir)
	if err != nil {
		return fmt.Errorf("Run: error creating CSV file: %v", err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("Run: error marshalling file: %v", err)
	}

	log.Infof("Exported %d quotes for %s expiring %s to %s", len(rows), ticker, response.ExpirationDate, args.Outdir)

	return nil
}

func main() {
	runCmd.Flags().String("ticker", "", "Underlying ticker symbol")
	runCmd.Flags().String("expiration", "", "Expiration date, e.g. 2026-12-18; defaults to the nearest expiration")
	runCmd.Flags().Int("limit", 50, "Maximum quotes per side")
	runCmd.Flags().String("outdir", "chain.csv", "Output CSV path")
	runCmd.Flags().Bool("list-contracts", false, "List Polygon reference contracts instead of exporting quotes")
	runCmd.Flags().String("go-env", "development", "The go environment to run the command in")

	runCmd.MarkFlagRequired("ticker")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}
