package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/auth"
	"github.com/umalmyha/clientes/internal/cache"
	"github.com/umalmyha/clientes/internal/config"
	"github.com/umalmyha/clientes/internal/infra"
	"github.com/umalmyha/clientes/internal/metrics"
	"github.com/umalmyha/clientes/internal/service"
	"github.com/umalmyha/clientes/internal/validation"
	"google.golang.org/grpc"
)

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	logger, err := infra.Logger(cfg.Log)
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := infra.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer store.Close()

	m := metrics.New()

	clienteCache, closeCache, err := buildClienteCache(ctx, cfg.Redis, m, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer closeCache()

	jwtValidator, err := buildJwtValidator(cfg.Auth)
	if err != nil {
		logger.Fatal(err)
	}

	validator, err := validation.New()
	if err != nil {
		logger.Fatal(err)
	}

	clienteSvc := service.NewClienteService(
		store.Transactor,
		store.Repository,
		clienteCache,
		logger,
		service.Options{SearchEmptyNotFound: cfg.Store.SearchEmptyNotFound},
	)

	e := infra.Router(clienteSvc, infra.RouterOpts{
		HTTP:         cfg.HTTP,
		Validator:    validator,
		JwtValidator: jwtValidator,
		Metrics:      m,
		Logger:       logger,
	})
	grpcServer := infra.GrpcServer(clienteSvc, validator, jwtValidator, m, logger)

	start(ctx, cfg, e, grpcServer, logger)
}

func buildClienteCache(ctx context.Context, cfg config.RedisCfg, m *metrics.Metrics, logger logrus.FieldLogger) (cache.ClienteCache, func(), error) {
	if !cfg.Enabled() {
		logger.Info("redis address is not set, cliente cache is disabled")
		return cache.NewNopClienteCache(), func() {}, nil
	}

	client, err := infra.Redis(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Errorf("failed to close redis client - %s", err)
		}
	}
	return cache.NewObservedClienteCache(cache.NewRedisClienteCache(client, cfg.TimeToLive), m), closeFn, nil
}

func buildJwtValidator(cfg config.AuthCfg) (*auth.JwtValidator, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	key, err := auth.LoadPublicKey(cfg.PublicKeyFile)
	if err != nil {
		return nil, err
	}
	return auth.NewJwtValidator(cfg.Issuer, key), nil
}

func start(ctx context.Context, cfg config.Config, e *echo.Echo, grpcServer *grpc.Server, logger logrus.FieldLogger) {
	errorCh := make(chan error, 2)

	go func() {
		logger.Infof("http server is listening on port %d", cfg.HTTP.Port)
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.HTTP.Port))
	}()

	go func() {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Grpc.Port))
		if err != nil {
			errorCh <- fmt.Errorf("failed to listen grpc port - %w", err)
			return
		}

		logger.Infof("grpc server is listening on port %d", cfg.Grpc.Port)
		errorCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal has been sent, stopping the servers...")
		shutdown(cfg, e, grpcServer, logger)
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("shutting down the servers, unexpected error occurred - %s", err)
		}
		shutdown(cfg, e, grpcServer, logger)
	}
}

func shutdown(cfg config.Config, e *echo.Echo, grpcServer *grpc.Server, logger logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	grpcServer.GracefulStop()
	if err := e.Shutdown(ctx); err != nil {
		logger.Errorf("failed to stop http server gracefully - %s", err)
	}
}
