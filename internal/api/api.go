package api

import (
	"context"
	"time"

	"clockifish/internal/clockify"
	"clockifish/internal/domain"
	"clockifish/internal/report"
)

// Report is the result of reducing a window of time entries.
type Report struct {
	Window     report.Window
	Entries    []*domain.TimeEntry
	TotalHours float64
}

// TrackerAPI defines the business-logic interface for timer and report
// workflows. Each operation issues its network calls strictly in sequence;
// the user is re-resolved per operation and never cached.
type TrackerAPI interface {
	// StartTimer starts a new timer now. Empty description/projectID means
	// the field is omitted.
	StartTimer(ctx context.Context, description, projectID string) (*domain.TimeEntry, error)

	// StopTimer ends the running timer. Returns nil, nil when nothing is
	// running; that is a normal absent-value result, not an error.
	StopTimer(ctx context.Context) (*domain.TimeEntry, error)

	// CurrentTimer returns the running timer, or nil when there is none.
	CurrentTimer(ctx context.Context) (*domain.TimeEntry, error)

	// WeekReport aggregates the week containing now.
	WeekReport(ctx context.Context, now time.Time) (*Report, error)

	// MonthReport aggregates the month containing now.
	MonthReport(ctx context.Context, now time.Time) (*Report, error)
}

type trackerAPIImpl struct {
	client clockify.Client
}

// New creates a new TrackerAPI instance over the given client.
func New(client clockify.Client) TrackerAPI {
	return &trackerAPIImpl{client: client}
}

func (a *trackerAPIImpl) StartTimer(ctx context.Context, description, projectID string) (*domain.TimeEntry, error) {
	return a.client.StartTimer(ctx, description, projectID)
}

func (a *trackerAPIImpl) CurrentTimer(ctx context.Context) (*domain.TimeEntry, error) {
	user, err := a.client.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := a.client.GetInProgressEntries(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	// The service guarantees at most one in-progress entry per user. If it
	// ever returns more, the first element wins.
	return entries[0], nil
}

func (a *trackerAPIImpl) StopTimer(ctx context.Context) (*domain.TimeEntry, error) {
	current, err := a.CurrentTimer(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	return a.client.StopTimer(ctx, current.UserID)
}

func (a *trackerAPIImpl) WeekReport(ctx context.Context, now time.Time) (*Report, error) {
	return a.reportFor(ctx, report.WeekWindow(now))
}

func (a *trackerAPIImpl) MonthReport(ctx context.Context, now time.Time) (*Report, error) {
	return a.reportFor(ctx, report.MonthWindow(now))
}

func (a *trackerAPIImpl) reportFor(ctx context.Context, window report.Window) (*Report, error) {
	user, err := a.client.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := a.client.GetTimeEntries(ctx, user.ID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return &Report{
		Window:     window,
		Entries:    entries,
		TotalHours: report.TotalHours(entries),
	}, nil
}
