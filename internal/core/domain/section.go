package domain

import "time"

// Section is an entry from the Times Wire section list (arts, business, ...).
type Section struct {
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Section) Validate() error {
	if s.Name == "" {
		return ErrInvalidSectionName
	}
	return nil
}
