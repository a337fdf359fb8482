package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"path"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otellogrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdk_trace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jiaming2012/options-pricing/src/marketdata"
	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/pricingapi"
	"github.com/jiaming2012/options-pricing/src/quotestream"
	"github.com/jiaming2012/options-pricing/src/utils"
)

const (
	chainCacheTTL = time.Minute
	quoteCacheTTL = 30 * time.Second
)

func main() {
	run()
}

// setupOTelSDK bootstraps the OpenTelemetry pipeline.
// If it does not return an error, make sure to call shutdown for proper cleanup.
func setupOTelSDK(ctx context.Context) (shutdown func(context.Context) error, err error) {
	var shutdownFuncs []func(context.Context) error

	shutdown = func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}

	handleErr := func(inErr error) {
		err = errors.Join(inErr, shutdown(ctx))
	}

	prop := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(prop)

	traceExporter, err := otlptrace.New(ctx, otlptracehttp.NewClient())
	if err != nil {
		return nil, err
	}

	res, _ := resource.New(ctx, resource.WithAttributes(attribute.String("service.name", "options-pricing")))

	tracerProvider := sdk_trace.NewTracerProvider(
		sdk_trace.WithBatcher(traceExporter),
		sdk_trace.WithResource(res),
	)

	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)

	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		handleErr(err)
		return
	}

	meterProvider := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(metricExporter)))
	shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
	otel.SetMeterProvider(meterProvider)

	err = runtime.Start(runtime.WithMinimumReadMemStatsInterval(time.Second))
	if err != nil {
		log.Fatalf("runtime.Start: %v", err)
	}

	return
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	fmt.Fprintf(w, `{"status":"ok"}`)
}

func bannerHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	fmt.Fprintf(w, `{"service":"options-pricing","docs":"/api/options, /api/options-chain, /api/market, /ws/quotes"}`)
}

func registerPprofHandlers(router *mux.Router) {
	pprofRouter := router.PathPrefix("/debug/pprof").Subrouter()
	pprofRouter.HandleFunc("/", http.HandlerFunc(pprof.Index))
	pprofRouter.HandleFunc("/cmdline", http.HandlerFunc(pprof.Cmdline))
	pprofRouter.HandleFunc("/profile", http.HandlerFunc(pprof.Profile))
	pprofRouter.HandleFunc("/symbol", http.HandlerFunc(pprof.Symbol))
	pprofRouter.HandleFunc("/trace", http.HandlerFunc(pprof.Trace))
	pprofRouter.Handle("/allocs", pprof.Handler("allocs"))
	pprofRouter.Handle("/goroutine", pprof.Handler("goroutine"))
	pprofRouter.Handle("/heap", pprof.Handler("heap"))
	pprofRouter.Handle("/mutex", pprof.Handler("mutex"))
}

func run() {
	projectsDir, err := utils.RequireEnv("PROJECTS_DIR")
	if err != nil {
		log.Fatalf("PROJECTS_DIR not set: %v", err)
	}

	goEnv, err := utils.RequireEnv("GO_ENV")
	if err != nil {
		log.Fatalf("GO_ENV not set: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	if err := utils.InitEnvironmentVariables(projectsDir, goEnv); err != nil {
		log.Panic(err)
	}

	quotestream.Init()

	log.SetOutput(os.Stdout)
	log.Infof("Log level set to %v", log.GetLevel())

	twelveDataApiKey, err := utils.RequireEnv("TWELVE_DATA_API_KEY")
	if err != nil {
		log.Fatalf("$TWELVE_DATA_API_KEY not set: %v", err)
	}

	port, err := utils.RequireEnv("PORT")
	if err != nil {
		log.Fatalf("$PORT not set: %v", err)
	}

	// Set up Telemetry
	log.AddHook(otellogrus.NewHook(otellogrus.WithLevels(
		log.PanicLevel,
		log.FatalLevel,
		log.ErrorLevel,
		log.WarnLevel,
		log.InfoLevel,
	)))

	otelShutdown, err := setupOTelSDK(ctx)
	if err != nil {
		log.Fatalf("failed to setup otel sdk: %v", err)
	}

	defer func() {
		if shutdownErr := otelShutdown(context.Background()); shutdownErr != nil {
			log.Errorf("otel shutdown: %v", shutdownErr)
		}
	}()

	// Market data clients
	twelveDataClient := marketdata.NewTwelveDataClient(twelveDataApiKey)
	yahooClient := marketdata.NewYahooClient()
	rateService := marketdata.NewRiskFreeRateService(yahooClient)

	// Setup router
	router := mux.NewRouter()
	router.HandleFunc("/", bannerHandler)
	router.HandleFunc("/health", healthHandler)
	registerPprofHandlers(router)

	pricingapi.SetupOptionsHandler(router.PathPrefix("/api/options").Subrouter())

	pricingapi.SetupOptionChainHandler(
		router.PathPrefix("/api/options-chain").Subrouter(),
		&pricingapi.OptionChainRequestExecutor{
			YahooClient: yahooClient,
			RateService: rateService,
			ChainCache:  marketdata.NewCache[optionmodels.OptionChainResponse](chainCacheTTL),
		},
		&pricingapi.ExpirationsRequestExecutor{
			YahooClient: yahooClient,
		},
	)

	pricingapi.SetupMarketHandler(
		router.PathPrefix("/api/market").Subrouter(),
		&pricingapi.StockInfoRequestExecutor{
			TwelveDataClient: twelveDataClient,
			QuoteCache:       marketdata.NewCache[*optionmodels.StockInfoResponse](quoteCacheTTL),
		},
		&pricingapi.HistoricalVolatilityRequestExecutor{
			TwelveDataClient: twelveDataClient,
		},
		&pricingapi.TreasuryRatesRequestExecutor{
			RateService: rateService,
		},
	)

	// Quote streaming
	hub := quotestream.NewHub()
	if err := hub.Run(); err != nil {
		log.Fatalf("failed to start quote hub: %v", err)
	}

	router.HandleFunc("/ws/quotes", hub.ServeWs)

	watchlistFile := os.Getenv("WATCHLIST_CONFIG_FILE")
	if watchlistFile == "" {
		watchlistFile = "watchlist.yaml"
	}

	watchlistPath := path.Join(projectsDir, "options-pricing", "src", watchlistFile)
	watchlist, err := quotestream.LoadWatchlist(watchlistPath)
	if err != nil {
		log.Warnf("quote streaming disabled: %v", err)
	} else {
		worker := quotestream.NewQuoteWorker(watchlist, twelveDataClient, rateService)

		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Start(ctx)
		}()
	}

	// Setup web server
	srv := &http.Server{
		Handler: otelhttp.NewHandler(router, "options-pricing-api"),
		Addr:    fmt.Sprintf(":%s", port),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// Start web server
	go func() {
		log.Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil {
			if err.Error() != "http: Server closed" {
				log.Fatalf("failed to start server: %v", err)
			}
		}
	}()

	// Create channel for shutdown signals.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	log.Info("Main: init complete")

	// Block here until program is shut down
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown: %v", err)
	}

	cancel()

	// Wait for workers to shut down
	wg.Wait()

	log.Info("Main: gracefully stopped!")
}
