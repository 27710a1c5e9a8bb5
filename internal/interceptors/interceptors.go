package interceptors

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryInterceptorApplicable decides whether interceptor must run for the call
type UnaryInterceptorApplicable func(*grpc.UnaryServerInfo) bool

func isUnaryInterceptorApplicable(info *grpc.UnaryServerInfo, fns ...UnaryInterceptorApplicable) bool {
	if len(fns) == 0 {
		return true
	}

	for _, fn := range fns {
		if !fn(info) {
			return false
		}
	}
	return true
}

// UnaryApplicableForService limits interceptor to methods of provided service
func UnaryApplicableForService(svc string) UnaryInterceptorApplicable {
	return func(info *grpc.UnaryServerInfo) bool {
		// FullMethod is the full RPC method string, i.e., /package.service/method.
		return strings.HasPrefix(info.FullMethod, "/"+svc+"/")
	}
}

// CallRecorder receives outcome of every handled call
type CallRecorder interface {
	GrpcCall(method, code string)
}

// LoggingUnaryInterceptor logs every call with its status code and latency, recorder is optional
func LoggingUnaryInterceptor(logger logrus.FieldLogger, recorder CallRecorder) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		start := time.Now()
		res, err := h(ctx, req)

		code := status.Code(err)
		if recorder != nil {
			recorder.GrpcCall(info.FullMethod, code.String())
		}

		logger.WithFields(logrus.Fields{
			"method":  info.FullMethod,
			"code":    code.String(),
			"latency": time.Since(start).String(),
		}).Info("grpc call served")

		return res, err
	}
}
