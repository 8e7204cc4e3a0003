package access

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WithLogging wraps call so that every request and its result are logged under name.
func WithLogging[T any](logger *zap.Logger, name string, call Call[T]) Call[T] {
	return func(ctx context.Context) (T, error) {
		logger.Debug("api request", zap.String("service", name))
		start := time.Now()
		res, err := call(ctx)
		elapsed := time.Since(start)
		if err != nil {
			logger.Warn("api request failed",
				zap.String("service", name),
				zap.String("reason", NormalizeError(err)),
				zap.Duration("elapsed", elapsed),
				zap.Error(err))
			return res, err
		}
		logger.Debug("api response", zap.String("service", name), zap.Duration("elapsed", elapsed))
		return res, nil
	}
}
