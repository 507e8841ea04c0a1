package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/domain/repository"
	"github.com/transit-backoffice/internal/pkg/errors"
)

type mapRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewMapRepository(db *DB) repository.MapRepository {
	return &mapRepository{
		db:     db,
		logger: db.logger,
	}
}

// FetchSnapshot runs the whole batch inside one repeatable-read
// transaction: either every collection reflects the same snapshot or
// the fetch fails as a unit. Embedded relations are attached from the
// collections loaded here, never looked up separately, so a relation
// whose target failed its own active/non-deleted filter comes out nil.
func (r *mapRepository) FetchSnapshot(ctx context.Context) (*domain.MapSnapshot, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		r.logger.Error("Failed to begin snapshot transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	services, svcByID, err := r.loadServices(ctx, tx)
	if err != nil {
		return nil, err
	}

	zones, zoneByID, err := r.loadZones(ctx, tx)
	if err != nil {
		return nil, err
	}

	lanes, laneByID, err := r.loadLanes(ctx, tx, svcByID)
	if err != nil {
		return nil, err
	}

	routes, routeByID, err := r.loadRoutes(ctx, tx, svcByID)
	if err != nil {
		return nil, err
	}

	stops, stopByID, err := r.loadStops(ctx, tx, zoneByID)
	if err != nil {
		return nil, err
	}

	if err := r.attachLaneStops(ctx, tx, laneByID, stopByID); err != nil {
		return nil, err
	}
	if err := r.attachRouteLanes(ctx, tx, routeByID, laneByID); err != nil {
		return nil, err
	}
	if err := r.attachRouteStops(ctx, tx, routeByID, stopByID); err != nil {
		return nil, err
	}
	if err := r.attachStopImages(ctx, tx, stopByID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit snapshot transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &domain.MapSnapshot{
		Services: services,
		Stops:    stops,
		Lanes:    lanes,
		Routes:   routes,
		Zones:    zones,
	}, nil
}

func (r *mapRepository) loadServices(ctx context.Context, tx *sqlx.Tx) ([]*domain.TransportService, map[string]*domain.TransportService, error) {
	rows, err := tx.QueryContext(ctx, serviceSelect+`
		WHERE s.deleted_at IS NULL AND s.is_active
		ORDER BY s.created_at ASC`)
	if err != nil {
		r.logger.Error("Failed to load map services", zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var services []*domain.TransportService
	byID := make(map[string]*domain.TransportService)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			r.logger.Error("Failed to scan map service", zap.Error(err))
			return nil, nil, errors.ErrDatabaseError
		}
		services = append(services, svc)
		byID[svc.ID] = svc
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate map services", zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	return services, byID, nil
}

func (r *mapRepository) loadZones(ctx context.Context, tx *sqlx.Tx) ([]*domain.Zone, map[string]*domain.Zone, error) {
	rows, err := tx.QueryContext(ctx, zoneSelect+`
		WHERE z.deleted_at IS NULL AND z.is_active
		ORDER BY z.created_at ASC`)
	if err != nil {
		r.logger.Error("Failed to load map zones", zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var zones []*domain.Zone
	byID := make(map[string]*domain.Zone)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			r.logger.Error("Failed to scan map zone", zap.Error(err))
			return nil, nil, errors.ErrDatabaseError
		}
		zones = append(zones, zone)
		byID[zone.ID] = zone
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate map zones", zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	return zones, byID, nil
}

func (r *mapRepository) loadLanes(ctx context.Context, tx *sqlx.Tx, svcByID map[string]*domain.TransportService) ([]*domain.BusLane, map[string]*domain.BusLane, error) {
	rows, err := tx.QueryContext(ctx, laneSelect+`
		WHERE l.deleted_at IS NULL AND l.is_active
		ORDER BY l.created_at ASC`)
	if err != nil {
		r.logger.Error("Failed to load map lanes", zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var lanes []*domain.BusLane
	byID := make(map[string]*domain.BusLane)
	for rows.Next() {
		lane, err := scanLane(rows)
		if err != nil {
			r.logger.Error("Failed to scan map lane", zap.Error(err))
			return nil, nil, errors.ErrDatabaseError
		}
		// The embedded service stays nil when its own filter dropped it,
		// even though the lane itself is active.
		if lane.ServiceID != nil {
			lane.Service = svcByID[*lane.ServiceID]
		}
		lanes = append(lanes, lane)
		byID[lane.ID] = lane
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate map lanes", zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	return lanes, byID, nil
}

func (r *mapRepository) loadRoutes(ctx context.Context, tx *sqlx.Tx, svcByID map[string]*domain.TransportService) ([]*domain.BusRoute, map[string]*domain.BusRoute, error) {
	rows, err := tx.QueryContext(ctx, routeSelect+`
		WHERE r.deleted_at IS NULL AND r.is_active
		ORDER BY r.created_at ASC`)
	if err != nil {
		r.logger.Error("Failed to load map routes", zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var routes []*domain.BusRoute
	byID := make(map[string]*domain.BusRoute)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			r.logger.Error("Failed to scan map route", zap.Error(err))
			return nil, nil, errors.ErrDatabaseError
		}
		if route.ServiceID != nil {
			route.Service = svcByID[*route.ServiceID]
		}
		routes = append(routes, route)
		byID[route.ID] = route
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate map routes", zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	return routes, byID, nil
}

func (r *mapRepository) loadStops(ctx context.Context, tx *sqlx.Tx, zoneByID map[string]*domain.Zone) ([]*domain.BusStop, map[string]*domain.BusStop, error) {
	rows, err := tx.QueryContext(ctx, stopSelect+`
		WHERE st.deleted_at IS NULL AND st.is_active
		ORDER BY st.created_at ASC`)
	if err != nil {
		r.logger.Error("Failed to load map stops", zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var stops []*domain.BusStop
	byID := make(map[string]*domain.BusStop)
	for rows.Next() {
		stop, err := scanStop(rows)
		if err != nil {
			r.logger.Error("Failed to scan map stop", zap.Error(err))
			return nil, nil, errors.ErrDatabaseError
		}
		if stop.ZoneID != nil {
			stop.Zone = zoneByID[*stop.ZoneID]
		}
		stops = append(stops, stop)
		byID[stop.ID] = stop
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate map stops", zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	return stops, byID, nil
}

// attachLaneStops fills stop.Lanes from the lane_stops junction. Rows
// whose lane or stop fell out of the filtered collections are skipped,
// which is exactly the nested-relation filter.
func (r *mapRepository) attachLaneStops(ctx context.Context, tx *sqlx.Tx, laneByID map[string]*domain.BusLane, stopByID map[string]*domain.BusStop) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT ls.lane_id, ls.stop_id
		FROM lane_stops ls
		JOIN bus_lanes l ON l.id = ls.lane_id
		ORDER BY l.created_at ASC`)
	if err != nil {
		r.logger.Error("Failed to load lane-stop memberships", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var laneID, stopID string
		if err := rows.Scan(&laneID, &stopID); err != nil {
			r.logger.Error("Failed to scan lane-stop membership", zap.Error(err))
			return errors.ErrDatabaseError
		}
		lane, stop := laneByID[laneID], stopByID[stopID]
		if lane == nil || stop == nil {
			continue
		}
		stop.Lanes = append(stop.Lanes, lane)
	}
	return rows.Err()
}

func (r *mapRepository) attachRouteLanes(ctx context.Context, tx *sqlx.Tx, routeByID map[string]*domain.BusRoute, laneByID map[string]*domain.BusLane) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT rl.route_id, rl.lane_id
		FROM route_lanes rl
		ORDER BY rl.route_id, rl.position ASC`)
	if err != nil {
		r.logger.Error("Failed to load route-lane memberships", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var routeID, laneID string
		if err := rows.Scan(&routeID, &laneID); err != nil {
			r.logger.Error("Failed to scan route-lane membership", zap.Error(err))
			return errors.ErrDatabaseError
		}
		route, lane := routeByID[routeID], laneByID[laneID]
		if route == nil || lane == nil {
			continue
		}
		route.Lanes = append(route.Lanes, lane)
	}
	return rows.Err()
}

// attachRouteStops fills both directions of the membership: the
// route's ordered stop list and the stop's route list (in route
// creation order).
func (r *mapRepository) attachRouteStops(ctx context.Context, tx *sqlx.Tx, routeByID map[string]*domain.BusRoute, stopByID map[string]*domain.BusStop) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT rs.route_id, rs.stop_id
		FROM route_stops rs
		JOIN bus_routes r ON r.id = rs.route_id
		ORDER BY r.created_at ASC, rs.position ASC`)
	if err != nil {
		r.logger.Error("Failed to load route-stop memberships", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var routeID, stopID string
		if err := rows.Scan(&routeID, &stopID); err != nil {
			r.logger.Error("Failed to scan route-stop membership", zap.Error(err))
			return errors.ErrDatabaseError
		}
		route, stop := routeByID[routeID], stopByID[stopID]
		if route == nil || stop == nil {
			continue
		}
		route.Stops = append(route.Stops, stop)
		stop.Routes = append(stop.Routes, route)
	}
	return rows.Err()
}

func (r *mapRepository) attachStopImages(ctx context.Context, tx *sqlx.Tx, stopByID map[string]*domain.BusStop) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT si.stop_id, f.id, f.url, f.name, f.type, f.size
		FROM stop_images si
		JOIN uploaded_files f ON f.id = si.file_id
		ORDER BY si.stop_id, si.position ASC`)
	if err != nil {
		r.logger.Error("Failed to load stop images", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var (
			stopID    string
			img       domain.UploadedFile
			name, typ sql.NullString
			size      sql.NullInt64
		)
		if err := rows.Scan(&stopID, &img.ID, &img.URL, &name, &typ, &size); err != nil {
			r.logger.Error("Failed to scan stop image", zap.Error(err))
			return errors.ErrDatabaseError
		}
		stop := stopByID[stopID]
		if stop == nil {
			continue
		}
		img.Name = nullStr(name)
		img.Type = nullStr(typ)
		img.Size = nullInt(size)
		stop.Images = append(stop.Images, img)
	}
	return rows.Err()
}
