package domain

import "time"

// MapSnapshot is the result of the single transactional batch fetch
// behind the public map endpoint. All five collections observe the same
// database snapshot; embedded relations (lane.Service, stop.Zone, ...)
// point into these collections and were never looked up separately.
type MapSnapshot struct {
	Services []*TransportService
	Stops    []*BusStop
	Lanes    []*BusLane
	Routes   []*BusRoute
	Zones    []*Zone
}

// ListParams is the shared contract of every admin list page:
// pagination, whitelisted sorting, free-text search over localized
// names and an optional active filter.
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
	IsActive  *bool
}

// Offset returns the SQL offset for the current page.
func (p ListParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// EntityCount holds per-collection dashboard counters.
type EntityCount struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// Statistics is the dashboard-statistics payload.
type Statistics struct {
	Services    EntityCount `json:"services"`
	Stops       EntityCount `json:"stops"`
	Lanes       EntityCount `json:"lanes"`
	Routes      EntityCount `json:"routes"`
	Zones       EntityCount `json:"zones"`
	Icons       EntityCount `json:"icons"`
	LastUpdated time.Time   `json:"last_updated"`
}
