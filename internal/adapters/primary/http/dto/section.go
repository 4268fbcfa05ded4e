package dto

import "newsfeed-service/internal/core/domain"

type SectionResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	UpdatedAt   string `json:"updated_at"`
}

type ListSectionsResponse struct {
	Items []SectionResponse `json:"items"`
	Total int               `json:"total"`
}

type SyncSectionsResponse struct {
	Synced int `json:"synced"`
}

func ToSectionResponse(s *domain.Section) SectionResponse {
	return SectionResponse{
		Name:        s.Name,
		DisplayName: s.DisplayName,
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}
