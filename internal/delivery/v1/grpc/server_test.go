package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/billing-backend/internal/cfg"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestGRPCErrorResponse(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{e.Wrap("op", e.ErrNotAuthenticated), codes.Unauthenticated},
		{e.ErrNoVendor, codes.PermissionDenied},
		{e.NewValidationError(map[string]string{"name": "name is required"}), codes.InvalidArgument},
		{e.Generic(e.ErrInvalidPrice, errors.New("abc")), codes.InvalidArgument},
		{e.ErrPriceScale, codes.InvalidArgument},
		{e.ErrInvoiceNotFound, codes.NotFound},
		{e.ErrCategoryExists, codes.AlreadyExists},
		{e.ErrLastCategory, codes.FailedPrecondition},
		{e.ErrStorageUnavailable, codes.Unavailable},
		{errors.New("boom"), codes.Internal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, status.Code(GRPCErrorResponse(tc.err)), tc.err.Error())
	}

	assert.NoError(t, GRPCErrorResponse(nil))
}

func newTestServer(checks ...ReadinessCheck) *GRPCServer {
	return NewGRPCServer(&cfg.GRPCConfig{Port: "0", NetworkMode: "tcp"}, logger.Nop(), checks...)
}

func servingStatus(t *testing.T, s *GRPCServer) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := s.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestReadiness(t *testing.T) {
	var dbErr error
	s := newTestServer(
		ReadinessCheck{Name: "postgres", Ping: func(context.Context) error { return dbErr }},
		ReadinessCheck{Name: "redis", Ping: func(context.Context) error { return nil }},
	)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, s))

	s.refreshReadiness(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, s))

	dbErr = errors.New("connection refused")
	s.refreshReadiness(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, s))
}

func TestUnaryInterceptorMapsErrors(t *testing.T) {
	s := newTestServer()

	_, err := s.unaryInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/billing.v1/Test"},
		func(context.Context, any) (any, error) { return nil, e.ErrProductNotFound })
	assert.Equal(t, codes.NotFound, status.Code(err))

	resp, err := s.unaryInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/billing.v1/Test"},
		func(context.Context, any) (any, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}
