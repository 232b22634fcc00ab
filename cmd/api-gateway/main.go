package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/metrics"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/cache"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/fixture"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/loader"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/rpc"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/transport"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/wallet/connect"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/wallet/gas"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/wallet/signer"
)

var config struct {
	Addr            string        `long:"addr" env:"API_GATEWAY_ADDR" description:"http addr" default:":8001"`
	Network         string        `long:"network" env:"SUI_NETWORK" description:"network label for metrics" default:"devnet"`
	RPCURL          string        `long:"rpc-url" env:"SUI_RPC_URL" description:"full node JSON-RPC url" default:"https://fullnode.devnet.sui.io:443"`
	RPCRateLimit    int           `long:"rpc-rps" env:"SUI_RPC_RPS" description:"max rpc requests per second, 0 disables the limit" default:"20"`
	StaticFixtures  string        `long:"static-fixtures" env:"SUI_STATIC_FIXTURES" description:"serve transactions from this fixture file instead of the node"`
	RedisAddr       string        `long:"redis-addr" env:"REDIS_ADDR" description:"redis addr for the transaction cache, empty disables it"`
	RedisTTL        time.Duration `long:"redis-ttl" env:"REDIS_TTL" description:"transaction cache ttl" default:"24h"`
	LoadWorkers     int           `long:"load-workers" env:"LOAD_WORKERS" description:"concurrent loads for batch requests" default:"8"`
	GasOverhead     uint64        `long:"gas-overhead-percent" env:"GAS_OVERHEAD_PERCENT" description:"overhead added to simulated gas cost" default:"10"`
	GasCacheTTL     time.Duration `long:"gas-cache-ttl" env:"GAS_CACHE_TTL" description:"gas estimate cache ttl" default:"30s"`
	WalletName      string        `long:"wallet-name" env:"WALLET_NAME" description:"name of the watch-only wallet adapter" default:"Watch-only"`
	WalletAccounts  []string      `long:"wallet-account" env:"WALLET_ACCOUNTS" env-delim:"," description:"addresses exposed by the watch-only wallet"`
	ConnectText     string        `long:"connect-text" env:"CONNECT_TEXT" description:"connect button text" default:"Connect Wallet"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" description:"graceful shutdown timeout" default:"10s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	client, closeClient, err := rpc.Dial(ctx, config.RPCURL, config.RPCRateLimit, metrics.NewRPCClient(config.Network))
	if err != nil {
		logger.Fatal("Dial full node", zap.Error(err))
	}
	defer closeClient()

	var source loader.Source = client
	if config.RedisAddr != "" {
		redisClient, err := cache.Dial(ctx, cache.Config{Addr: config.RedisAddr, TTL: config.RedisTTL})
		if err != nil {
			logger.Fatal("Connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisClient.Close()
		}()
		source, err = cache.New(client, redisClient, config.RedisTTL, metrics.NewTransactionCache(config.Network), logger.Named("tx_cache"))
		if err != nil {
			logger.Fatal("Init transaction cache", zap.Error(err))
		}
	}

	loaderCfg := loader.Config{
		Source:      source,
		Reporter:    metrics.NewErrorReporter(logger),
		Metrics:     metrics.NewTransactionLoader(config.Network),
		WorkerCount: config.LoadWorkers,
	}
	if config.StaticFixtures != "" {
		store, err := fixture.Load(config.StaticFixtures)
		if err != nil {
			logger.Fatal("Load static fixtures", zap.Error(err))
		}
		logger.Info("Serving static transactions", zap.Int("count", store.Len()))
		loaderCfg.Fixtures = store
		loaderCfg.Static = true
	}
	txLoader, err := loader.New(loaderCfg, logger)
	if err != nil {
		logger.Fatal("Init transaction loader", zap.Error(err))
	}

	wallet, err := connect.NewWallet(logger, connect.NewWatchOnly(config.WalletName, config.WalletAccounts))
	if err != nil {
		logger.Fatal("Init wallet", zap.Error(err))
	}
	modal := connect.NewModal(wallet)
	button := connect.NewButton(wallet, modal, config.ConnectText, logger)

	dryRunSigner, err := signer.New(wallet, client, config.GasOverhead, logger)
	if err != nil {
		logger.Fatal("Init signer", zap.Error(err))
	}
	estimator, err := gas.New(gas.Config{
		Signer:     dryRunSigner,
		Serializer: client,
		Balances:   client,
		Metrics:    metrics.NewGasEstimator(config.Network),
		TTL:        config.GasCacheTTL,
	}, logger)
	if err != nil {
		logger.Fatal("Init gas estimator", zap.Error(err))
	}

	handler, err := transport.NewHandler(transport.Config{
		Loader:     txLoader,
		Functions:  client,
		Gas:        estimator,
		Button:     button,
		Modal:      modal,
		Connection: wallet,
	}, logger)
	if err != nil {
		logger.Fatal("Init http handler", zap.Error(err))
	}

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(handler.Router()),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr), zap.String("network", config.Network))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
