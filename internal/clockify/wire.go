package clockify

import (
	"time"

	"clockifish/internal/domain"
)

// rawUser mirrors the JSON returned by GET /user.
type rawUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (r rawUser) toDomain() *domain.User {
	return &domain.User{
		ID:    r.ID,
		Email: r.Email,
		Name:  r.Name,
	}
}

// rawInterval mirrors the timeInterval object. Timestamps are strict
// RFC3339; a null end means the entry is still running.
type rawInterval struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
}

// rawTimeEntry mirrors the JSON for a Clockify time entry.
type rawTimeEntry struct {
	ID           string      `json:"id"`
	Description  string      `json:"description"`
	UserID       string      `json:"userId"`
	WorkspaceID  string      `json:"workspaceId"`
	ProjectID    *string     `json:"projectId"`
	TimeInterval rawInterval `json:"timeInterval"`
}

func (r rawTimeEntry) toDomain() *domain.TimeEntry {
	entry := &domain.TimeEntry{
		ID:          r.ID,
		Description: r.Description,
		UserID:      r.UserID,
		WorkspaceID: r.WorkspaceID,
		StartTime:   r.TimeInterval.Start,
	}
	if r.ProjectID != nil {
		entry.ProjectID = *r.ProjectID
	}
	if r.TimeInterval.End != nil {
		end := *r.TimeInterval.End
		entry.EndTime = &end
	}
	return entry
}

func toDomainEntries(raw []rawTimeEntry) []*domain.TimeEntry {
	out := make([]*domain.TimeEntry, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.toDomain())
	}
	return out
}
