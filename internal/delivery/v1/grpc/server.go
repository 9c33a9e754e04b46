package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/DRSN-tech/billing-backend/internal/cfg"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName — имя сервиса в ответах health-check.
const ServiceName = "billing.v1"

const (
	readinessInterval = 10 * time.Second
	readinessTimeout  = 3 * time.Second
)

// ReadinessCheck проверяет одну зависимость сервиса (БД, Redis, хранилище).
type ReadinessCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type GRPCServer struct {
	server *grpc.Server
	health *health.Server
	cfg    *cfg.GRPCConfig
	logger logger.Logger
	checks []ReadinessCheck

	stopOnce sync.Once
	stop     chan struct{}
}

func NewGRPCServer(cfg *cfg.GRPCConfig, logger logger.Logger, checks ...ReadinessCheck) *GRPCServer {
	s := &GRPCServer{
		health: health.NewServer(),
		cfg:    cfg,
		logger: logger,
		checks: checks,
		stop:   make(chan struct{}),
	}

	s.server = grpc.NewServer(grpc.UnaryInterceptor(s.unaryInterceptor))
	healthpb.RegisterHealthServer(s.server, s.health)
	reflection.Register(s.server)

	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return s
}

func (s *GRPCServer) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	lis, err := net.Listen(s.cfg.NetworkMode, addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	go s.watchReadiness()

	return s.server.Serve(lis)
}

func (s *GRPCServer) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Infof("gRPC server stopped gracefully")
		return nil
	case <-ctx.Done():
		s.server.Stop()
		s.logger.Warnf("gRPC server forced to stop after timeout")
		return ctx.Err()
	}
}

func (s *GRPCServer) watchReadiness() {
	ticker := time.NewTicker(readinessInterval)
	defer ticker.Stop()

	for {
		s.refreshReadiness(context.Background())

		select {
		case <-s.stop:
			return
		case <-ticker.C:
		}
	}
}

// refreshReadiness выставляет SERVING, только если все проверки прошли.
func (s *GRPCServer) refreshReadiness(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING

	for _, check := range s.checks {
		pingCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
		err := check.Ping(pingCtx)
		cancel()

		if err != nil {
			s.logger.Warnf("readiness check %s failed: %v", check.Name, err)
			st = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	s.health.SetServingStatus(ServiceName, st)
	return st
}

func (s *GRPCServer) unaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		s.logger.Warnf("%s: %v", info.FullMethod, err)
		return nil, GRPCErrorResponse(err)
	}
	return resp, nil
}
