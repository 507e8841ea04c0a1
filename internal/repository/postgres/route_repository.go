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

const routeSelect = `
	SELECT r.id, r.route_number, r.direction, r.color, r.is_active, r.service_id, r.created_at, r.updated_at,
	       n.id, n.en, n.ar, n.ckb,
	       d.id, d.en, d.ar, d.ckb
	FROM bus_routes r
	LEFT JOIN localized_texts n ON n.id = r.name_id
	LEFT JOIN localized_texts d ON d.id = r.description_id`

const routeCount = `
	SELECT COUNT(*)
	FROM bus_routes r
	LEFT JOIN localized_texts n ON n.id = r.name_id`

func scanRoute(row rowScanner) (*domain.BusRoute, error) {
	var (
		route       domain.BusRoute
		routeNumber sql.NullString
		color       sql.NullString
		serviceID   sql.NullString
		name        localizedColumns
		desc        localizedColumns
	)

	dest := []interface{}{
		&route.ID, &routeNumber, &route.Direction, &color, &route.IsActive,
		&serviceID, &route.CreatedAt, &route.UpdatedAt,
	}
	dest = append(dest, name.dest()...)
	dest = append(dest, desc.dest()...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	route.RouteNumber = nullStr(routeNumber)
	route.Color = nullStr(color)
	route.ServiceID = nullStr(serviceID)
	route.Name = name.toDomain()
	route.Description = desc.toDomain()
	return &route, nil
}

type routeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *routeRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.BusRoute, int, error) {
	query, countQuery, args, countArgs := newListBuilder(routeSelect, routeCount).
		Where("r.deleted_at IS NULL").
		ActiveColumn("r.is_active").
		Sortable("r.created_at", map[string]string{
			"createdAt":   "r.created_at",
			"updatedAt":   "r.updated_at",
			"routeNumber": "r.route_number",
			"name":        "n.en",
		}).
		Searchable("n.en", "n.ar", "n.ckb", "r.route_number").
		Build(params)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		r.logger.Error("Failed to count routes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list routes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	var routes []*domain.BusRoute
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			r.logger.Error("Failed to scan route", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate routes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return routes, total, nil
}

func (r *routeRepository) GetByID(ctx context.Context, id string) (*domain.BusRoute, error) {
	row := r.db.QueryRowContext(ctx, routeSelect+" WHERE r.id = $1 AND r.deleted_at IS NULL", id)

	route, err := scanRoute(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return route, nil
}

func (r *routeRepository) Create(ctx context.Context, route *domain.BusRoute) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsertLocalizedText(ctx, tx, route.Name); err != nil {
			return err
		}
		if err := upsertLocalizedText(ctx, tx, route.Description); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO bus_routes (id, name_id, description_id, route_number, direction, color, service_id, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, route.ID, localizedID(route.Name), localizedID(route.Description),
			route.RouteNumber, route.Direction, route.Color, route.ServiceID,
			route.IsActive, route.CreatedAt, route.UpdatedAt)
		return err
	})
}

func (r *routeRepository) Update(ctx context.Context, route *domain.BusRoute) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsertLocalizedText(ctx, tx, route.Name); err != nil {
			return err
		}
		if err := upsertLocalizedText(ctx, tx, route.Description); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE bus_routes
			SET name_id = $2, description_id = $3, route_number = $4, direction = $5,
			    color = $6, service_id = $7, is_active = $8, updated_at = $9
			WHERE id = $1 AND deleted_at IS NULL
		`, route.ID, localizedID(route.Name), localizedID(route.Description),
			route.RouteNumber, route.Direction, route.Color, route.ServiceID,
			route.IsActive, route.UpdatedAt)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

func (r *routeRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bus_routes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		r.logger.Error("Failed to delete route", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return requireRow(res)
}

func (r *routeRepository) SetLanes(ctx context.Context, routeID string, laneIDs []string) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM route_lanes WHERE route_id = $1`, routeID); err != nil {
			return err
		}
		for i, laneID := range laneIDs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO route_lanes (route_id, lane_id, position) VALUES ($1, $2, $3)
				ON CONFLICT DO NOTHING
			`, routeID, laneID, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *routeRepository) SetStops(ctx context.Context, routeID string, stopIDs []string) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM route_stops WHERE route_id = $1`, routeID); err != nil {
			return err
		}
		for i, stopID := range stopIDs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO route_stops (route_id, stop_id, position) VALUES ($1, $2, $3)
				ON CONFLICT DO NOTHING
			`, routeID, stopID, i); err != nil {
				return err
			}
		}
		return nil
	})
}
