package domain

import (
	"encoding/json"
	"time"
)

// BusLane is a physical polyline a service follows. Geometry is stored
// as a jsonb array of [lon,lat] pairs and decoded leniently at
// projection time, so Path stays raw here.
type BusLane struct {
	ID          string            `json:"id" db:"id"`
	Name        *LocalizedText    `json:"name,omitempty"`
	Description *LocalizedText    `json:"description,omitempty"`
	Color       string            `json:"color" db:"color"`
	Weight      float64           `json:"weight" db:"weight"`
	Opacity     float64           `json:"opacity" db:"opacity"`
	IsActive    bool              `json:"is_active" db:"is_active"`
	Path        json.RawMessage   `json:"path" db:"path"`
	ServiceID   *string           `json:"service_id,omitempty" db:"service_id"`
	Service     *TransportService `json:"service,omitempty"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time        `json:"-" db:"deleted_at"`
}
