package dto

import (
	"github.com/google/uuid"

	"newsfeed-service/internal/core/domain"
)

type TriggerIngestRequest struct {
	Source   string   `json:"source"`
	Sections []string `json:"sections"`
}

type IngestRunResponse struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	Section    string    `json:"section"`
	Status     string    `json:"status"`
	StartedAt  string    `json:"started_at"`
	FinishedAt string    `json:"finished_at,omitempty"`
	Fetched    int       `json:"fetched"`
	Inserted   int       `json:"inserted"`
	Updated    int       `json:"updated"`
	Skipped    int       `json:"skipped"`
	Error      string    `json:"error,omitempty"`
}

type ListIngestRunsResponse struct {
	Items      []IngestRunResponse `json:"items"`
	Total      int                 `json:"total"`
	PageSize   int                 `json:"page_size"`
	NextOffset int                 `json:"next_offset"`
}

func ToIngestRunResponse(r *domain.IngestRun) IngestRunResponse {
	resp := IngestRunResponse{
		ID:        r.ID,
		Source:    r.Source,
		Section:   r.Section,
		Status:    string(r.Status),
		StartedAt: formatTime(r.StartedAt),
		Fetched:   r.Fetched,
		Inserted:  r.Inserted,
		Updated:   r.Updated,
		Skipped:   r.Skipped,
		Error:     r.Error,
	}
	if r.FinishedAt != nil {
		resp.FinishedAt = formatTime(*r.FinishedAt)
	}
	return resp
}
