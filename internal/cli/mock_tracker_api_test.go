package cli

import (
	"context"
	"testing"
	"time"

	"clockifish/internal/api"
	"clockifish/internal/config"
	"clockifish/internal/domain"
	"clockifish/internal/report"
)

// mockTrackerAPI implements the TrackerAPI interface for testing
type mockTrackerAPI struct {
	current    *domain.TimeEntry
	currentErr error
	started    *domain.TimeEntry
	startErr   error
	week       *api.Report
	month      *api.Report
	reportErr  error

	startCalls      int
	lastDescription string
	lastProjectID   string
	stopCalls       int
}

func (m *mockTrackerAPI) StartTimer(ctx context.Context, description, projectID string) (*domain.TimeEntry, error) {
	m.startCalls++
	m.lastDescription = description
	m.lastProjectID = projectID
	if m.startErr != nil {
		return nil, m.startErr
	}
	if m.started != nil {
		return m.started, nil
	}
	entry := domain.NewTimeEntry("user-1", "ws-1", time.Now())
	entry.ID = "entry-1"
	entry.Description = description
	entry.ProjectID = projectID
	m.current = &entry
	return &entry, nil
}

func (m *mockTrackerAPI) StopTimer(ctx context.Context) (*domain.TimeEntry, error) {
	m.stopCalls++
	if m.currentErr != nil {
		return nil, m.currentErr
	}
	if m.current == nil {
		return nil, nil
	}
	stopped := m.current.Stop(time.Now())
	m.current = nil
	return &stopped, nil
}

func (m *mockTrackerAPI) CurrentTimer(ctx context.Context) (*domain.TimeEntry, error) {
	if m.currentErr != nil {
		return nil, m.currentErr
	}
	return m.current, nil
}

func (m *mockTrackerAPI) WeekReport(ctx context.Context, now time.Time) (*api.Report, error) {
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	if m.week != nil {
		return m.week, nil
	}
	return &api.Report{Window: report.WeekWindow(now)}, nil
}

func (m *mockTrackerAPI) MonthReport(ctx context.Context, now time.Time) (*api.Report, error) {
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	if m.month != nil {
		return m.month, nil
	}
	return &api.Report{Window: report.MonthWindow(now)}, nil
}

// setupTestApp creates an App wired to a fresh mock TrackerAPI
func setupTestApp(t *testing.T) (*App, *mockTrackerAPI) {
	t.Helper()
	mock := &mockTrackerAPI{}
	cfg := config.NewConfig()
	cfg.Credentials = config.Credentials{APIKey: "test-key", WorkspaceID: "ws-1"}
	return NewApp(mock, cfg), mock
}
