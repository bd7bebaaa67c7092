package usecase

import (
	"context"
	"log/slog"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

// unhealthyMessage is shown for failures other than connectivity, whose
// driver text stays in the logs.
const unhealthyMessage = "database check failed"

// HealthService reports whether the API and its database are usable.
type HealthService struct {
	db  ports.Repository
	log *slog.Logger
}

// NewHealthService creates a new HealthService.
func NewHealthService(db ports.Repository, log *slog.Logger) *HealthService {
	return &HealthService{db: db, log: log}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check opens a database connection and reports "degraded" when that fails.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	if err := s.db.Health(ctx); err != nil {
		s.log.Warn("database health check failed", "error", err)
		status.Status = "degraded"
		status.Components["database"] = ComponentHealth{
			Status:  "unhealthy",
			Message: healthMessage(err),
		}
	} else {
		status.Components["database"] = ComponentHealth{Status: "healthy"}
	}

	return status
}

func healthMessage(err error) string {
	if dbErr, ok := domain.AsDatabaseConnectionError(err); ok {
		return dbErr.Message
	}
	return unhealthyMessage
}
