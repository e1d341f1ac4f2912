package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clockifish/internal/domain"
	"clockifish/internal/errors"
)

func TestStopCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("stops the running timer", func(t *testing.T) {
		app, mock := setupTestApp(t)
		entry := domain.NewTimeEntry("user-1", "ws-1", time.Now().Add(-30*time.Minute))
		entry.ID = "entry-1"
		mock.current = &entry

		err := NewStopCommand(app).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, mock.stopCalls)
		assert.Nil(t, mock.current)
	})

	t.Run("no running timer is informational, not an error", func(t *testing.T) {
		app, mock := setupTestApp(t)

		err := NewStopCommand(app).Execute(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, mock.stopCalls)
	})

	t.Run("surfaces service rejection", func(t *testing.T) {
		app, mock := setupTestApp(t)
		mock.currentErr = errors.NewAPIError(401, "bad key")

		err := NewStopCommand(app).Execute(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}
