package domain

import "time"

// Transport service types.
const (
	ServiceTypeBus     = "BUS"
	ServiceTypeMetro   = "METRO"
	ServiceTypeTram    = "TRAM"
	ServiceTypeFerry   = "FERRY"
	ServiceTypeMinibus = "MINIBUS"
)

var validServiceTypes = map[string]bool{
	ServiceTypeBus:     true,
	ServiceTypeMetro:   true,
	ServiceTypeTram:    true,
	ServiceTypeFerry:   true,
	ServiceTypeMinibus: true,
}

func IsValidServiceType(t string) bool {
	return validServiceTypes[t]
}

// TransportService is an operator-level grouping (bus network, metro
// line family, ...). Lanes and routes optionally belong to one.
type TransportService struct {
	ID          string         `json:"id" db:"id"`
	Type        string         `json:"type" db:"type"`
	Color       string         `json:"color" db:"color"`
	IsActive    bool           `json:"is_active" db:"is_active"`
	Name        *LocalizedText `json:"name,omitempty"`
	Description *LocalizedText `json:"description,omitempty"`
	IconID      *string        `json:"icon_id,omitempty" db:"icon_id"`
	Icon        *MapIcon       `json:"icon,omitempty"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time     `json:"-" db:"deleted_at"`
}
