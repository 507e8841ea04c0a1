package domain

import "time"

// Route directions.
const (
	DirectionBidirectional = "BIDIRECTIONAL"
	DirectionForward       = "FORWARD"
	DirectionBackward      = "BACKWARD"
)

var validDirections = map[string]bool{
	DirectionBidirectional: true,
	DirectionForward:       true,
	DirectionBackward:      true,
}

func IsValidDirection(d string) bool {
	return validDirections[d]
}

// BusRoute is a logical service line. It carries no geometry of its
// own, only ordered membership in lanes and stops. Lanes and Stops
// point into the collections loaded in the same batch, so a membership
// whose target failed its own active/non-deleted filter is simply
// absent here.
type BusRoute struct {
	ID          string            `json:"id" db:"id"`
	Name        *LocalizedText    `json:"name,omitempty"`
	Description *LocalizedText    `json:"description,omitempty"`
	RouteNumber *string           `json:"route_number,omitempty" db:"route_number"`
	Direction   string            `json:"direction" db:"direction"`
	Color       *string           `json:"color,omitempty" db:"color"`
	IsActive    bool              `json:"is_active" db:"is_active"`
	ServiceID   *string           `json:"service_id,omitempty" db:"service_id"`
	Service     *TransportService `json:"service,omitempty"`
	Lanes       []*BusLane        `json:"lanes,omitempty"`
	Stops       []*BusStop        `json:"stops,omitempty"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time        `json:"-" db:"deleted_at"`
}
