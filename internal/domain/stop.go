package domain

import "time"

// BusStop is a boarding point. Lanes and Routes point into the
// collections loaded in the same batch (see BusRoute).
//
// IsActive is a pointer because narrower fetch shapes legitimately omit
// the column; projection treats absence as visible.
type BusStop struct {
	ID              string         `json:"id" db:"id"`
	Latitude        float64        `json:"latitude" db:"latitude"`
	Longitude       float64        `json:"longitude" db:"longitude"`
	Name            *LocalizedText `json:"name,omitempty"`
	Description     *LocalizedText `json:"description,omitempty"`
	Images          []UploadedFile `json:"images,omitempty"`
	IconID          *string        `json:"icon_id,omitempty" db:"icon_id"`
	Icon            *MapIcon       `json:"icon,omitempty"`
	ZoneID          *string        `json:"zone_id,omitempty" db:"zone_id"`
	Zone            *Zone          `json:"zone,omitempty"`
	HasShelter      bool           `json:"has_shelter" db:"has_shelter"`
	HasBench        bool           `json:"has_bench" db:"has_bench"`
	HasLighting     bool           `json:"has_lighting" db:"has_lighting"`
	IsAccessible    bool           `json:"is_accessible" db:"is_accessible"`
	HasRealTimeInfo bool           `json:"has_real_time_info" db:"has_real_time_info"`
	Lanes           []*BusLane     `json:"lanes,omitempty"`
	Routes          []*BusRoute    `json:"routes,omitempty"`
	IsActive        *bool          `json:"is_active,omitempty" db:"is_active"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt       *time.Time     `json:"-" db:"deleted_at"`
}
