package dto

// Coordinate is a [lon, lat] pair as the map renderer expects it.
type Coordinate [2]float64

// LocalizedTextView carries the three locale slots. Slots serialize as
// null when the translation is missing; the whole view is nil only when
// the underlying record is absent.
type LocalizedTextView struct {
	En  *string `json:"en"`
	Ar  *string `json:"ar"`
	Ckb *string `json:"ckb"`
}

// MapIconView is the flat display descriptor for a map icon.
type MapIconView struct {
	ID           string   `json:"id"`
	FileURL      string   `json:"fileUrl"`
	IconSize     *float64 `json:"iconSize,omitempty"`
	IconAnchorX  *float64 `json:"iconAnchorX,omitempty"`
	IconAnchorY  *float64 `json:"iconAnchorY,omitempty"`
	PopupAnchorX *float64 `json:"popupAnchorX,omitempty"`
	PopupAnchorY *float64 `json:"popupAnchorY,omitempty"`
}

// MapServiceView is embedded by lanes, routes and stops.
type MapServiceView struct {
	ID       string             `json:"id"`
	Type     string             `json:"type"`
	Color    string             `json:"color"`
	IsActive bool               `json:"isActive"`
	Name     *LocalizedTextView `json:"name,omitempty"`
	Icon     *MapIconView       `json:"icon,omitempty"`
}

// MapLaneSummaryView is the compact lane shape embedded in stops.
type MapLaneSummaryView struct {
	ID        string             `json:"id"`
	Name      *LocalizedTextView `json:"name,omitempty"`
	Color     string             `json:"color"`
	ServiceID *string            `json:"serviceId,omitempty"`
	Service   *MapServiceView    `json:"service,omitempty"`
}

// MapLaneView extends the summary with geometry and styling.
type MapLaneView struct {
	MapLaneSummaryView
	Path     []Coordinate `json:"path"`
	Weight   float64      `json:"weight"`
	Opacity  float64      `json:"opacity"`
	IsActive bool         `json:"isActive"`
}

// MapRouteSummaryView is the compact route shape embedded in stops.
type MapRouteSummaryView struct {
	ID          string             `json:"id"`
	Name        *LocalizedTextView `json:"name,omitempty"`
	RouteNumber *string            `json:"routeNumber,omitempty"`
	Direction   string             `json:"direction"`
	Color       *string            `json:"color,omitempty"`
	ServiceID   *string            `json:"serviceId,omitempty"`
	Service     *MapServiceView    `json:"service,omitempty"`
}

// MapRouteView extends the summary with membership id lists. Routes
// carry no geometry of their own.
type MapRouteView struct {
	MapRouteSummaryView
	LaneIDs  []string `json:"laneIds"`
	StopIDs  []string `json:"stopIds"`
	IsActive bool     `json:"isActive"`
}

// MapZoneView is the flattened zone shape.
type MapZoneView struct {
	ID       string             `json:"id"`
	Name     *LocalizedTextView `json:"name,omitempty"`
	Color    *string            `json:"color,omitempty"`
	IsActive bool               `json:"isActive"`
}

// StopImageView is one stop photo.
type StopImageView struct {
	ID   string  `json:"id"`
	URL  string  `json:"url"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
	Size *int64  `json:"size,omitempty"`
}

// StopAmenitiesView mirrors the stop's amenity flags unchanged.
type StopAmenitiesView struct {
	HasShelter      bool `json:"hasShelter"`
	HasBench        bool `json:"hasBench"`
	HasLighting     bool `json:"hasLighting"`
	IsAccessible    bool `json:"isAccessible"`
	HasRealTimeInfo bool `json:"hasRealTimeInfo"`
}

// MapStopView is the full stop shape for the public map.
type MapStopView struct {
	ID          string                `json:"id"`
	Latitude    float64               `json:"latitude"`
	Longitude   float64               `json:"longitude"`
	Name        *LocalizedTextView    `json:"name,omitempty"`
	Description *LocalizedTextView    `json:"description,omitempty"`
	Images      []StopImageView       `json:"images"`
	Icon        *MapIconView          `json:"icon,omitempty"`
	Zone        *MapZoneView          `json:"zone,omitempty"`
	Services    []MapServiceView      `json:"services"`
	ServiceIDs  []string              `json:"serviceIds"`
	Lanes       []MapLaneSummaryView  `json:"lanes"`
	Routes      []MapRouteSummaryView `json:"routes"`
	Amenities   StopAmenitiesView     `json:"amenities"`
	IsActive    bool                  `json:"isActive"`
}

// MapDataPayload is the aggregation endpoint's data field.
type MapDataPayload struct {
	Services []MapServiceView `json:"services"`
	Stops    []MapStopView    `json:"stops"`
	Lanes    []MapLaneView    `json:"lanes"`
	Routes   []MapRouteView   `json:"routes"`
	Zones    []MapZoneView    `json:"zones"`
}

// MapResponse is the endpoint envelope. Error is a plain string here,
// unlike the admin API envelope: the map client only ever shows a
// generic loading-failed state.
type MapResponse struct {
	Success bool            `json:"success"`
	Data    *MapDataPayload `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}
