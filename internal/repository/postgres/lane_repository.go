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

const laneSelect = `
	SELECT l.id, l.color, l.weight, l.opacity, l.is_active, l.path, l.service_id, l.created_at, l.updated_at,
	       n.id, n.en, n.ar, n.ckb,
	       d.id, d.en, d.ar, d.ckb
	FROM bus_lanes l
	LEFT JOIN localized_texts n ON n.id = l.name_id
	LEFT JOIN localized_texts d ON d.id = l.description_id`

const laneCount = `
	SELECT COUNT(*)
	FROM bus_lanes l
	LEFT JOIN localized_texts n ON n.id = l.name_id`

func scanLane(row rowScanner) (*domain.BusLane, error) {
	var (
		lane      domain.BusLane
		path      []byte
		serviceID sql.NullString
		name      localizedColumns
		desc      localizedColumns
	)

	dest := []interface{}{
		&lane.ID, &lane.Color, &lane.Weight, &lane.Opacity, &lane.IsActive,
		&path, &serviceID, &lane.CreatedAt, &lane.UpdatedAt,
	}
	dest = append(dest, name.dest()...)
	dest = append(dest, desc.dest()...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	lane.Path = path
	lane.ServiceID = nullStr(serviceID)
	lane.Name = name.toDomain()
	lane.Description = desc.toDomain()
	return &lane, nil
}

type laneRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewLaneRepository(db *DB) repository.LaneRepository {
	return &laneRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *laneRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.BusLane, int, error) {
	query, countQuery, args, countArgs := newListBuilder(laneSelect, laneCount).
		Where("l.deleted_at IS NULL").
		ActiveColumn("l.is_active").
		Sortable("l.created_at", map[string]string{
			"createdAt": "l.created_at",
			"updatedAt": "l.updated_at",
			"name":      "n.en",
		}).
		Searchable("n.en", "n.ar", "n.ckb").
		Build(params)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		r.logger.Error("Failed to count lanes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list lanes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	var lanes []*domain.BusLane
	for rows.Next() {
		lane, err := scanLane(rows)
		if err != nil {
			r.logger.Error("Failed to scan lane", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		lanes = append(lanes, lane)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate lanes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return lanes, total, nil
}

func (r *laneRepository) GetByID(ctx context.Context, id string) (*domain.BusLane, error) {
	row := r.db.QueryRowContext(ctx, laneSelect+" WHERE l.id = $1 AND l.deleted_at IS NULL", id)

	lane, err := scanLane(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get lane by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return lane, nil
}

func (r *laneRepository) Create(ctx context.Context, lane *domain.BusLane) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsertLocalizedText(ctx, tx, lane.Name); err != nil {
			return err
		}
		if err := upsertLocalizedText(ctx, tx, lane.Description); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO bus_lanes (id, name_id, description_id, color, weight, opacity, path, service_id, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, lane.ID, localizedID(lane.Name), localizedID(lane.Description),
			lane.Color, lane.Weight, lane.Opacity, []byte(lane.Path),
			lane.ServiceID, lane.IsActive, lane.CreatedAt, lane.UpdatedAt)
		return err
	})
}

func (r *laneRepository) Update(ctx context.Context, lane *domain.BusLane) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsertLocalizedText(ctx, tx, lane.Name); err != nil {
			return err
		}
		if err := upsertLocalizedText(ctx, tx, lane.Description); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE bus_lanes
			SET name_id = $2, description_id = $3, color = $4, weight = $5, opacity = $6,
			    path = $7, service_id = $8, is_active = $9, updated_at = $10
			WHERE id = $1 AND deleted_at IS NULL
		`, lane.ID, localizedID(lane.Name), localizedID(lane.Description),
			lane.Color, lane.Weight, lane.Opacity, []byte(lane.Path),
			lane.ServiceID, lane.IsActive, lane.UpdatedAt)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

func (r *laneRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bus_lanes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		r.logger.Error("Failed to delete lane", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return requireRow(res)
}
