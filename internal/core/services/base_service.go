package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aozora-dev/blue_return_app/internal/middleware"
)

// BaseService provides common functionality for all services. All services
// share one mutex so that statement derivations and ledger mutations are
// serialized; a statement therefore always reflects a consistent snapshot.
// Exported service methods take the lock for their full duration, unexported
// helpers assume it is already held.
type BaseService struct {
	mu *sync.Mutex
}

// NewBaseService creates a BaseService with its own mutex. Services built
// from the same BaseService value serialize against each other.
func NewBaseService() BaseService {
	return BaseService{mu: &sync.Mutex{}}
}

func (s *BaseService) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}
