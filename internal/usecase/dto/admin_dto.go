package dto

import (
	"encoding/json"

	"github.com/transit-backoffice/internal/domain"
)

// LocalizedTextInput is the admin-facing localized field shape.
type LocalizedTextInput struct {
	En  *string `json:"en"`
	Ar  *string `json:"ar"`
	Ckb *string `json:"ckb"`
}

// ListQuery carries the shared admin list parameters.
type ListQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Search    string `query:"search"`
	IsActive  *bool  `query:"isActive"`
}

// ToListParams applies the list defaults shared by every admin page.
func (q ListQuery) ToListParams() domain.ListParams {
	p := domain.ListParams{
		Page:      q.Page,
		Limit:     q.Limit,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Search:    q.Search,
		IsActive:  q.IsActive,
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.SortOrder == "" {
		p.SortOrder = "asc"
	}
	return p
}

type CreateServiceRequest struct {
	Type        string              `json:"type" validate:"required"`
	Color       string              `json:"color" validate:"required,hexcolor"`
	IsActive    *bool               `json:"isActive"`
	Name        *LocalizedTextInput `json:"name" validate:"required"`
	Description *LocalizedTextInput `json:"description"`
	IconID      *string             `json:"iconId" validate:"omitempty,uuid4"`
}

type UpdateServiceRequest struct {
	Type        *string             `json:"type"`
	Color       *string             `json:"color" validate:"omitempty,hexcolor"`
	IsActive    *bool               `json:"isActive"`
	Name        *LocalizedTextInput `json:"name"`
	Description *LocalizedTextInput `json:"description"`
	IconID      *string             `json:"iconId" validate:"omitempty,uuid4"`
}

type CreateStopRequest struct {
	Latitude        float64             `json:"latitude" validate:"latitude"`
	Longitude       float64             `json:"longitude" validate:"longitude"`
	Name            *LocalizedTextInput `json:"name" validate:"required"`
	Description     *LocalizedTextInput `json:"description"`
	IconID          *string             `json:"iconId" validate:"omitempty,uuid4"`
	ZoneID          *string             `json:"zoneId" validate:"omitempty,uuid4"`
	HasShelter      bool                `json:"hasShelter"`
	HasBench        bool                `json:"hasBench"`
	HasLighting     bool                `json:"hasLighting"`
	IsAccessible    bool                `json:"isAccessible"`
	HasRealTimeInfo bool                `json:"hasRealTimeInfo"`
	LaneIDs         []string            `json:"laneIds" validate:"omitempty,dive,uuid4"`
	IsActive        *bool               `json:"isActive"`
}

type UpdateStopRequest struct {
	Latitude        *float64            `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64            `json:"longitude" validate:"omitempty,longitude"`
	Name            *LocalizedTextInput `json:"name"`
	Description     *LocalizedTextInput `json:"description"`
	IconID          *string             `json:"iconId" validate:"omitempty,uuid4"`
	ZoneID          *string             `json:"zoneId" validate:"omitempty,uuid4"`
	HasShelter      *bool               `json:"hasShelter"`
	HasBench        *bool               `json:"hasBench"`
	HasLighting     *bool               `json:"hasLighting"`
	IsAccessible    *bool               `json:"isAccessible"`
	HasRealTimeInfo *bool               `json:"hasRealTimeInfo"`
	LaneIDs         []string            `json:"laneIds" validate:"omitempty,dive,uuid4"`
	IsActive        *bool               `json:"isActive"`
}

type CreateLaneRequest struct {
	Name        *LocalizedTextInput `json:"name" validate:"required"`
	Description *LocalizedTextInput `json:"description"`
	Color       string              `json:"color" validate:"required,hexcolor"`
	Weight      float64             `json:"weight" validate:"gte=0"`
	Opacity     float64             `json:"opacity" validate:"gte=0,lte=1"`
	Path        json.RawMessage     `json:"path"`
	ServiceID   *string             `json:"serviceId" validate:"omitempty,uuid4"`
	IsActive    *bool               `json:"isActive"`
}

type UpdateLaneRequest struct {
	Name        *LocalizedTextInput `json:"name"`
	Description *LocalizedTextInput `json:"description"`
	Color       *string             `json:"color" validate:"omitempty,hexcolor"`
	Weight      *float64            `json:"weight" validate:"omitempty,gte=0"`
	Opacity     *float64            `json:"opacity" validate:"omitempty,gte=0,lte=1"`
	Path        json.RawMessage     `json:"path"`
	ServiceID   *string             `json:"serviceId" validate:"omitempty,uuid4"`
	IsActive    *bool               `json:"isActive"`
}

type CreateRouteRequest struct {
	Name        *LocalizedTextInput `json:"name" validate:"required"`
	Description *LocalizedTextInput `json:"description"`
	RouteNumber *string             `json:"routeNumber"`
	Direction   string              `json:"direction" validate:"required"`
	Color       *string             `json:"color" validate:"omitempty,hexcolor"`
	ServiceID   *string             `json:"serviceId" validate:"omitempty,uuid4"`
	LaneIDs     []string            `json:"laneIds" validate:"omitempty,dive,uuid4"`
	StopIDs     []string            `json:"stopIds" validate:"omitempty,dive,uuid4"`
	IsActive    *bool               `json:"isActive"`
}

type UpdateRouteRequest struct {
	Name        *LocalizedTextInput `json:"name"`
	Description *LocalizedTextInput `json:"description"`
	RouteNumber *string             `json:"routeNumber"`
	Direction   *string             `json:"direction"`
	Color       *string             `json:"color" validate:"omitempty,hexcolor"`
	ServiceID   *string             `json:"serviceId" validate:"omitempty,uuid4"`
	LaneIDs     []string            `json:"laneIds" validate:"omitempty,dive,uuid4"`
	StopIDs     []string            `json:"stopIds" validate:"omitempty,dive,uuid4"`
	IsActive    *bool               `json:"isActive"`
}

type CreateZoneRequest struct {
	Name     *LocalizedTextInput `json:"name" validate:"required"`
	Color    *string             `json:"color" validate:"omitempty,hexcolor"`
	IsActive *bool               `json:"isActive"`
}

type UpdateZoneRequest struct {
	Name     *LocalizedTextInput `json:"name"`
	Color    *string             `json:"color" validate:"omitempty,hexcolor"`
	IsActive *bool               `json:"isActive"`
}

type CreateIconRequest struct {
	FileID       string   `json:"fileId" validate:"required,uuid4"`
	IconSize     *float64 `json:"iconSize" validate:"omitempty,gt=0"`
	IconAnchorX  *float64 `json:"iconAnchorX"`
	IconAnchorY  *float64 `json:"iconAnchorY"`
	PopupAnchorX *float64 `json:"popupAnchorX"`
	PopupAnchorY *float64 `json:"popupAnchorY"`
}

type UpdateIconRequest struct {
	FileID       *string  `json:"fileId" validate:"omitempty,uuid4"`
	IconSize     *float64 `json:"iconSize" validate:"omitempty,gt=0"`
	IconAnchorX  *float64 `json:"iconAnchorX"`
	IconAnchorY  *float64 `json:"iconAnchorY"`
	PopupAnchorX *float64 `json:"popupAnchorX"`
	PopupAnchorY *float64 `json:"popupAnchorY"`
}

// ApplyTo copies the input slots onto an existing localized record,
// keeping its id. A nil input leaves the record untouched.
func (in *LocalizedTextInput) ApplyTo(t *domain.LocalizedText) {
	if in == nil || t == nil {
		return
	}
	t.En = in.En
	t.Ar = in.Ar
	t.Ckb = in.Ckb
}
