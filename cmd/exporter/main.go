package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/bitcoin"
	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/discovery"
	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/metrics"
	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/service"
	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/transport"
)

var config struct {
	Addr        string        `long:"addr" env:"EXPORTER_ADDR" description:"listen address" default:":8000"`
	Host        string        `long:"bitcoin-host" env:"BITCOIN_HOST" description:"default bitcoind host" default:"bitcoin-stack.bitcoin.svc.cluster.local"`
	Port        int           `long:"bitcoin-port" env:"BITCOIN_PORT" description:"bitcoind RPC port" default:"18332"`
	User        string        `long:"bitcoin-user" env:"BITCOIN_USER" description:"bitcoind RPC username" default:"bitcoin"`
	Password    string        `long:"bitcoin-password" env:"BITCOIN_PASSWORD" description:"bitcoind RPC password" default:"bitcoin"`
	ServiceName string        `long:"service-name" env:"BITCOIN_SERVICE_NAME" description:"StatefulSet headless service name" default:"bitcoin-stack"`
	Namespace   string        `long:"namespace" env:"BITCOIN_NAMESPACE" description:"StatefulSet namespace" default:"bitcoin"`
	RPCTimeout  time.Duration `long:"rpc-timeout" env:"BITCOIN_RPC_TIMEOUT" description:"timeout per RPC call" default:"10s"`
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
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	rpc := bitcoin.NewClient(bitcoin.Config{
		Host:     config.Host,
		Port:     config.Port,
		User:     config.User,
		Password: config.Password,
		Timeout:  config.RPCTimeout,
	}, metrics.NewRPCClient())
	discoverer := discovery.NewDiscoverer(config.ServiceName, config.Namespace, net.DefaultResolver, logger.Named("discovery"))
	exporter := service.NewExporter(discoverer, rpc, metrics.NewScrape(), logger.Named("exporter"))

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(transport.NewHandler(exporter, logger.Named("http"))),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// A scrape blocks up to the RPC timeout on the slowest pod, so the
		// write timeout has to sit well above it.
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting bitcoin pod exporter", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
