package registry_service_api

import (
	"context"
	"log/slog"
	"path"
	"time"

	"github.com/Domenick1991/airportregistry/internal/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryInterceptor logs every call and records it in metrics under the
// method name.
func UnaryInterceptor(logger *slog.Logger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		code := status.Code(err)
		method := path.Base(info.FullMethod)
		m.Observe("grpc", method, resultLabel(code), elapsed)

		level := slog.LevelInfo
		if code == codes.Internal || code == codes.Unknown {
			level = slog.LevelError
		}
		logger.LogAttrs(ctx, level, "grpc request",
			slog.String("method", method),
			slog.String("code", code.String()),
			slog.Duration("elapsed", elapsed),
		)
		return resp, err
	}
}

func resultLabel(code codes.Code) string {
	switch code {
	case codes.OK:
		return "success"
	case codes.NotFound:
		return "not_found"
	case codes.FailedPrecondition:
		return "conflict"
	case codes.InvalidArgument:
		return "invalid"
	default:
		return "error"
	}
}
