package service

import (
	"context"
	"os"
	"strconv"
	"time"

	"diving-backend/src/api"
	"diving-backend/src/rotator"
	"diving-backend/src/storage"
)

const defaultListenAddr = ":8080"

type Service struct {
	storage   *storage.Storage
	rotator   *rotator.Rotator
	apiServer *api.Server

	addr string
}

// StorageOptionsFromEnv builds storage options from the POSTGRES_* and
// REDIS_ADDRESS environment variables; unset variables keep the defaults.
func StorageOptionsFromEnv() []storage.Option {
	return []storage.Option{
		storage.WithDbUser(os.Getenv("POSTGRES_USER")),
		storage.WithDbPassword(os.Getenv("POSTGRES_PASSWORD")),
		storage.WithDbPort(os.Getenv("POSTGRES_PORT")),
		storage.WithDbHost(os.Getenv("POSTGRES_HOST")),
		storage.WithDbName(os.Getenv("POSTGRES_NAME")),
		storage.WithRedisAddress(os.Getenv("REDIS_ADDRESS")),
	}
}

func New() (*Service, error) {
	s, err := storage.NewStorage(StorageOptionsFromEnv()...)
	if err != nil {
		return nil, err
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = defaultListenAddr
	}

	return &Service{
		storage:   s,
		rotator:   rotator.New(s, rotatorOptionsFromEnv()...),
		apiServer: api.DefaultApiServer(s),
		addr:      addr,
	}, nil
}

// Start runs the rotator and the HTTP server until the context is cancelled
// or the server fails. The rotator is always stopped before returning.
func (s *Service) Start(ctx context.Context) error {
	s.rotator.Start()
	defer s.rotator.Stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.apiServer.Run(s.addr)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Service) Close() error {
	return s.storage.Close()
}

func rotatorOptionsFromEnv() []rotator.Option {
	opts := make([]rotator.Option, 0, 3)

	if d, err := time.ParseDuration(os.Getenv("ROTATION_COMMON_INTERVAL")); err == nil {
		opts = append(opts, rotator.WithCommonInterval(d))
	}
	if d, err := time.ParseDuration(os.Getenv("ROTATION_RARE_INTERVAL")); err == nil {
		opts = append(opts, rotator.WithRareInterval(d))
	}
	if r, err := strconv.ParseFloat(os.Getenv("ROTATION_RADIUS_KM"), 64); err == nil {
		opts = append(opts, rotator.WithRadiusKm(r))
	}

	return opts
}
