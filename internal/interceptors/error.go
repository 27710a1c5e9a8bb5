package interceptors

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/clientes/internal/errors"
	"github.com/umalmyha/clientes/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const internalErrorMessage = "Error interno del servidor. Intente nuevamente."

func httpToGrpcCode(s int) codes.Code {
	switch s {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// ErrorUnaryInterceptor converts error retrieved from handler to gRPC error with corresponding code
func ErrorUnaryInterceptor(logger logrus.FieldLogger, applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		res, err := h(ctx, req)
		if err == nil {
			return res, nil
		}

		if _, ok := status.FromError(err); ok { // it is already grpc status error
			return nil, err
		}

		code := grpcCode(err)
		if code == codes.Internal {
			logger.WithError(err).WithField("method", info.FullMethod).Error("error occurred on grpc request processing")
			return nil, status.Error(code, internalErrorMessage)
		}
		return nil, status.Error(code, err.Error())
	}
}

func grpcCode(err error) codes.Code {
	var (
		echoErr     *echo.HTTPError
		notFoundErr *apperrors.EntryNotFoundErr
		conflictErr *apperrors.ConflictErr
		badArgErr   *apperrors.BadArgumentErr
		payloadErr  *validation.PayloadError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return codes.NotFound
	case errors.As(err, &conflictErr):
		return codes.AlreadyExists
	case errors.As(err, &badArgErr), errors.As(err, &payloadErr):
		return codes.InvalidArgument
	case errors.As(err, &echoErr):
		return httpToGrpcCode(echoErr.Code)
	default:
		return codes.Internal
	}
}
