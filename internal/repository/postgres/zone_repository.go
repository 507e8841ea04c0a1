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

const zoneSelect = `
	SELECT z.id, z.color, z.is_active, z.created_at, z.updated_at,
	       n.id, n.en, n.ar, n.ckb
	FROM zones z
	LEFT JOIN localized_texts n ON n.id = z.name_id`

const zoneCount = `
	SELECT COUNT(*)
	FROM zones z
	LEFT JOIN localized_texts n ON n.id = z.name_id`

func scanZone(row rowScanner) (*domain.Zone, error) {
	var (
		zone  domain.Zone
		color sql.NullString
		name  localizedColumns
	)

	dest := []interface{}{&zone.ID, &color, &zone.IsActive, &zone.CreatedAt, &zone.UpdatedAt}
	dest = append(dest, name.dest()...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	zone.Color = nullStr(color)
	zone.Name = name.toDomain()
	return &zone, nil
}

type zoneRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewZoneRepository(db *DB) repository.ZoneRepository {
	return &zoneRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *zoneRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.Zone, int, error) {
	query, countQuery, args, countArgs := newListBuilder(zoneSelect, zoneCount).
		Where("z.deleted_at IS NULL").
		ActiveColumn("z.is_active").
		Sortable("z.created_at", map[string]string{
			"createdAt": "z.created_at",
			"updatedAt": "z.updated_at",
			"name":      "n.en",
		}).
		Searchable("n.en", "n.ar", "n.ckb").
		Build(params)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		r.logger.Error("Failed to count zones", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list zones", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	var zones []*domain.Zone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			r.logger.Error("Failed to scan zone", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate zones", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return zones, total, nil
}

func (r *zoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	row := r.db.QueryRowContext(ctx, zoneSelect+" WHERE z.id = $1 AND z.deleted_at IS NULL", id)

	zone, err := scanZone(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get zone by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return zone, nil
}

func (r *zoneRepository) Create(ctx context.Context, zone *domain.Zone) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsertLocalizedText(ctx, tx, zone.Name); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO zones (id, name_id, color, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, zone.ID, localizedID(zone.Name), zone.Color, zone.IsActive, zone.CreatedAt, zone.UpdatedAt)
		return err
	})
}

func (r *zoneRepository) Update(ctx context.Context, zone *domain.Zone) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsertLocalizedText(ctx, tx, zone.Name); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE zones
			SET name_id = $2, color = $3, is_active = $4, updated_at = $5
			WHERE id = $1 AND deleted_at IS NULL
		`, zone.ID, localizedID(zone.Name), zone.Color, zone.IsActive, zone.UpdatedAt)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

func (r *zoneRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE zones SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		r.logger.Error("Failed to delete zone", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return requireRow(res)
}
