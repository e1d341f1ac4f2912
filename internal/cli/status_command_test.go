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

func TestStatusCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("shows running timer", func(t *testing.T) {
		app, mock := setupTestApp(t)
		entry := domain.NewTimeEntry("user-1", "ws-1", time.Now().Add(-time.Hour))
		entry.ID = "entry-1"
		mock.current = &entry

		err := NewStatusCommand(app).Execute(ctx, nil)
		assert.NoError(t, err)
	})

	t.Run("no running timer exits zero", func(t *testing.T) {
		app, _ := setupTestApp(t)

		err := NewStatusCommand(app).Execute(ctx, nil)
		assert.NoError(t, err)
	})

	t.Run("id with running timer prints bare id", func(t *testing.T) {
		app, mock := setupTestApp(t)
		entry := domain.NewTimeEntry("user-1", "ws-1", time.Now())
		entry.ID = "entry-1"
		mock.current = &entry

		err := NewStatusCommand(app).Execute(ctx, []string{"id"})
		assert.NoError(t, err)
	})

	t.Run("id with no running timer returns the sentinel", func(t *testing.T) {
		app, _ := setupTestApp(t)

		err := NewStatusCommand(app).Execute(ctx, []string{"id"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoTimerRunning)
	})

	t.Run("rejects unknown argument", func(t *testing.T) {
		app, _ := setupTestApp(t)

		err := NewStatusCommand(app).Execute(ctx, []string{"bogus"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})

	t.Run("surfaces lookup failure", func(t *testing.T) {
		app, mock := setupTestApp(t)
		mock.currentErr = errors.NewAPIError(500, "boom")

		err := NewStatusCommand(app).Execute(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}
