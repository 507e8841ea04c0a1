package domain

import "time"

// Zone is a fare/administrative area stops can belong to.
type Zone struct {
	ID        string         `json:"id" db:"id"`
	Name      *LocalizedText `json:"name,omitempty"`
	Color     *string        `json:"color,omitempty" db:"color"`
	IsActive  bool           `json:"is_active" db:"is_active"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time     `json:"-" db:"deleted_at"`
}
