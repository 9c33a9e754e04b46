package grpc

import (
	"errors"

	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCErrorResponse переводит доменную ошибку в статус gRPC. Неизвестные ошибки скрываются за Internal.
func GRPCErrorResponse(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var verr *e.ValidationError

	switch {
	case errors.Is(err, e.ErrNotAuthenticated):
		return status.Error(codes.Unauthenticated, e.ErrNotAuthenticated.Error())
	case errors.Is(err, e.ErrNoVendor):
		return status.Error(codes.PermissionDenied, e.ErrNoVendor.Error())
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Error())
	case errors.Is(err, e.ErrInvalidID), errors.Is(err, e.ErrInvalidPrice),
		errors.Is(err, e.ErrPriceMustBePositive), errors.Is(err, e.ErrPriceScale),
		errors.Is(err, e.ErrInvalidTaxRate),
		errors.Is(err, e.ErrProductNameRequired), errors.Is(err, e.ErrCategoryRequired),
		errors.Is(err, e.ErrCategoryNameEmpty), errors.Is(err, e.ErrInvalidImage),
		errors.Is(err, e.ErrUnsupportedMediaType), errors.Is(err, e.ErrImageTooLarge):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, e.ErrCustomerNotFound), errors.Is(err, e.ErrProductNotFound),
		errors.Is(err, e.ErrInvoiceNotFound), errors.Is(err, e.ErrCategoryNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, e.ErrCategoryExists):
		return status.Error(codes.AlreadyExists, e.ErrCategoryExists.Error())
	case errors.Is(err, e.ErrLastCategory), errors.Is(err, e.ErrDeleteNotConfirmed),
		errors.Is(err, usecase.ErrFormClosed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, e.ErrStorageUnavailable):
		return status.Error(codes.Unavailable, e.ErrStorageUnavailable.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
