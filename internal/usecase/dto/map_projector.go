package dto

import (
	"github.com/tidwall/gjson"

	"github.com/transit-backoffice/internal/domain"
)

// ProjectLocalizedText maps a localized record to its view. Record
// absence projects to nil; missing slots stay null inside the view.
func ProjectLocalizedText(t *domain.LocalizedText) *LocalizedTextView {
	if t == nil {
		return nil
	}
	return &LocalizedTextView{
		En:  t.En,
		Ar:  t.Ar,
		Ckb: t.Ckb,
	}
}

// ProjectMapIcon flattens an icon-with-file relation. An icon whose
// file relation is missing projects to nil; without a resolvable URL
// there is nothing to render.
func ProjectMapIcon(icon *domain.MapIcon) *MapIconView {
	if icon == nil || icon.File == nil {
		return nil
	}
	return &MapIconView{
		ID:           icon.ID,
		FileURL:      icon.File.URL,
		IconSize:     icon.IconSize,
		IconAnchorX:  icon.IconAnchorX,
		IconAnchorY:  icon.IconAnchorY,
		PopupAnchorX: icon.PopupAnchorX,
		PopupAnchorY: icon.PopupAnchorY,
	}
}

// DecodePath leniently decodes stored lane geometry. Only entries that
// are two-element numeric arrays survive; everything else is dropped,
// order preserved. Partial rendering beats failing the request, so no
// error is ever returned for malformed geometry.
func DecodePath(raw []byte) []Coordinate {
	path := make([]Coordinate, 0)
	if len(raw) == 0 {
		return path
	}

	parsed := gjson.ParseBytes(raw)
	if !parsed.IsArray() {
		return path
	}

	for _, entry := range parsed.Array() {
		if !entry.IsArray() {
			continue
		}
		pair := entry.Array()
		if len(pair) != 2 {
			continue
		}
		if pair[0].Type != gjson.Number || pair[1].Type != gjson.Number {
			continue
		}
		path = append(path, Coordinate{pair[0].Float(), pair[1].Float()})
	}

	return path
}

// ProjectMapService maps a service relation, nil when absent (e.g. the
// relation failed its own nested active filter at the query layer).
func ProjectMapService(svc *domain.TransportService) *MapServiceView {
	if svc == nil {
		return nil
	}
	return &MapServiceView{
		ID:       svc.ID,
		Type:     svc.Type,
		Color:    svc.Color,
		IsActive: svc.IsActive,
		Name:     ProjectLocalizedText(svc.Name),
		Icon:     ProjectMapIcon(svc.Icon),
	}
}

// ProjectLaneSummary builds the compact lane shape embedded in stops.
func ProjectLaneSummary(lane *domain.BusLane) MapLaneSummaryView {
	return MapLaneSummaryView{
		ID:        lane.ID,
		Name:      ProjectLocalizedText(lane.Name),
		Color:     lane.Color,
		ServiceID: lane.ServiceID,
		Service:   ProjectMapService(lane.Service),
	}
}

// ProjectLane builds the full lane shape for the top-level collection.
func ProjectLane(lane *domain.BusLane) MapLaneView {
	return MapLaneView{
		MapLaneSummaryView: ProjectLaneSummary(lane),
		Path:               DecodePath(lane.Path),
		Weight:             lane.Weight,
		Opacity:            lane.Opacity,
		IsActive:           lane.IsActive,
	}
}

// ProjectRouteSummary builds the compact route shape embedded in stops.
// A route without a color of its own inherits the service color.
func ProjectRouteSummary(route *domain.BusRoute) MapRouteSummaryView {
	color := route.Color
	if color == nil && route.Service != nil {
		c := route.Service.Color
		color = &c
	}
	return MapRouteSummaryView{
		ID:          route.ID,
		Name:        ProjectLocalizedText(route.Name),
		RouteNumber: route.RouteNumber,
		Direction:   route.Direction,
		Color:       color,
		ServiceID:   route.ServiceID,
		Service:     ProjectMapService(route.Service),
	}
}

// ProjectRoute builds the full route shape, flattening lane and stop
// memberships to bare id lists.
func ProjectRoute(route *domain.BusRoute) MapRouteView {
	laneIDs := make([]string, 0, len(route.Lanes))
	for _, lane := range route.Lanes {
		laneIDs = append(laneIDs, lane.ID)
	}
	stopIDs := make([]string, 0, len(route.Stops))
	for _, stop := range route.Stops {
		stopIDs = append(stopIDs, stop.ID)
	}
	return MapRouteView{
		MapRouteSummaryView: ProjectRouteSummary(route),
		LaneIDs:             laneIDs,
		StopIDs:             stopIDs,
		IsActive:            route.IsActive,
	}
}

// ProjectZone flattens a zone row.
func ProjectZone(zone *domain.Zone) MapZoneView {
	return MapZoneView{
		ID:       zone.ID,
		Name:     ProjectLocalizedText(zone.Name),
		Color:    zone.Color,
		IsActive: zone.IsActive,
	}
}

// ProjectStopZone is the nullable variant for a stop's zone relation.
func ProjectStopZone(zone *domain.Zone) *MapZoneView {
	if zone == nil {
		return nil
	}
	v := ProjectZone(zone)
	return &v
}

// ProjectStop assembles the full stop view. The derived services list
// is the union of services reachable through the stop's lanes and
// routes, de-duplicated by id: lanes are scanned before routes, a
// repeated id overwrites the stored value but keeps its first-seen
// position.
func ProjectStop(stop *domain.BusStop) MapStopView {
	lanes := make([]MapLaneSummaryView, 0, len(stop.Lanes))
	for _, lane := range stop.Lanes {
		lanes = append(lanes, ProjectLaneSummary(lane))
	}

	routes := make([]MapRouteSummaryView, 0, len(stop.Routes))
	for _, route := range stop.Routes {
		routes = append(routes, ProjectRouteSummary(route))
	}

	services := make([]MapServiceView, 0)
	serviceIDs := make([]string, 0)
	seen := make(map[string]int)
	collect := func(svc *MapServiceView) {
		if svc == nil {
			return
		}
		if idx, ok := seen[svc.ID]; ok {
			services[idx] = *svc
			return
		}
		seen[svc.ID] = len(services)
		services = append(services, *svc)
		serviceIDs = append(serviceIDs, svc.ID)
	}
	for i := range lanes {
		collect(lanes[i].Service)
	}
	for i := range routes {
		collect(routes[i].Service)
	}

	images := make([]StopImageView, 0, len(stop.Images))
	for _, img := range stop.Images {
		images = append(images, StopImageView{
			ID:   img.ID,
			URL:  img.URL,
			Name: img.Name,
			Type: img.Type,
			Size: img.Size,
		})
	}

	// Narrower fetch shapes may omit the flag; a stop without it is
	// presumed visible.
	isActive := true
	if stop.IsActive != nil {
		isActive = *stop.IsActive
	}

	return MapStopView{
		ID:          stop.ID,
		Latitude:    stop.Latitude,
		Longitude:   stop.Longitude,
		Name:        ProjectLocalizedText(stop.Name),
		Description: ProjectLocalizedText(stop.Description),
		Images:      images,
		Icon:        ProjectMapIcon(stop.Icon),
		Zone:        ProjectStopZone(stop.Zone),
		Services:    services,
		ServiceIDs:  serviceIDs,
		Lanes:       lanes,
		Routes:      routes,
		Amenities: StopAmenitiesView{
			HasShelter:      stop.HasShelter,
			HasBench:        stop.HasBench,
			HasLighting:     stop.HasLighting,
			IsAccessible:    stop.IsAccessible,
			HasRealTimeInfo: stop.HasRealTimeInfo,
		},
		IsActive: isActive,
	}
}
