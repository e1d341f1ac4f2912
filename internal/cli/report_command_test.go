package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clockifish/internal/api"
	"clockifish/internal/errors"
	"clockifish/internal/report"
)

func TestReportCommand_Execute(t *testing.T) {
	ctx := context.Background()
	window := report.WeekWindow(time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC))

	t.Run("week report", func(t *testing.T) {
		app, mock := setupTestApp(t)
		mock.week = &api.Report{Window: window, TotalHours: 1.5}

		err := NewReportCommand(app).Execute(ctx, "week", false)
		assert.NoError(t, err)
	})

	t.Run("week report raw", func(t *testing.T) {
		app, mock := setupTestApp(t)
		mock.week = &api.Report{Window: window, TotalHours: 5401.0 / 3600.0}

		err := NewReportCommand(app).Execute(ctx, "week", true)
		assert.NoError(t, err)
	})

	t.Run("month report", func(t *testing.T) {
		app, _ := setupTestApp(t)

		err := NewReportCommand(app).Execute(ctx, "month", false)
		assert.NoError(t, err)
	})

	t.Run("both windows when no period given", func(t *testing.T) {
		app, _ := setupTestApp(t)

		err := NewReportCommand(app).Execute(ctx, "", false)
		assert.NoError(t, err)
	})

	t.Run("rejects unknown period", func(t *testing.T) {
		app, _ := setupTestApp(t)

		err := NewReportCommand(app).Execute(ctx, "fortnight", false)
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})

	t.Run("surfaces fetch failure", func(t *testing.T) {
		app, mock := setupTestApp(t)
		mock.reportErr = errors.NewAPIError(500, "boom")

		err := NewReportCommand(app).Execute(ctx, "week", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}
