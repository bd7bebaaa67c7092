package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/src/core/domain"
	"fintrack/src/infra/logger"
)

type stubHealth struct{ err error }

func (s stubHealth) Health(context.Context) error { return s.err }

func TestHealthService_Check(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  string
		wantDB      string
		wantMessage string
	}{
		{
			name:       "healthy",
			wantStatus: "ok",
			wantDB:     "healthy",
		},
		{
			name:        "connection error shows its message",
			err:         &domain.DatabaseConnectionError{Message: "Unable to connect using DATABASE_URL.", Cause: errors.New("dial tcp: refused")},
			wantStatus:  "degraded",
			wantDB:      "unhealthy",
			wantMessage: "Unable to connect using DATABASE_URL.",
		},
		{
			name:        "other errors hide driver text",
			err:         errors.New("unexpected message type 'Z' during ping"),
			wantStatus:  "degraded",
			wantDB:      "unhealthy",
			wantMessage: unhealthyMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHealthService(stubHealth{err: tt.err}, logger.Discard())

			got := svc.Check(context.Background())

			assert.Equal(t, tt.wantStatus, got.Status)
			db, ok := got.Components["database"]
			require.True(t, ok)
			assert.Equal(t, tt.wantDB, db.Status)
			assert.Equal(t, tt.wantMessage, db.Message)
		})
	}
}
