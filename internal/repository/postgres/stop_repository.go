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

const stopSelect = `
	SELECT st.id, st.latitude, st.longitude, st.icon_id, st.zone_id,
	       st.has_shelter, st.has_bench, st.has_lighting, st.is_accessible, st.has_real_time_info,
	       st.is_active, st.created_at, st.updated_at,
	       n.id, n.en, n.ar, n.ckb,
	       d.id, d.en, d.ar, d.ckb,
	       i.id, i.icon_size, i.icon_anchor_x, i.icon_anchor_y, i.popup_anchor_x, i.popup_anchor_y,
	       f.id, f.url, f.name, f.type, f.size
	FROM bus_stops st
	LEFT JOIN localized_texts n ON n.id = st.name_id
	LEFT JOIN localized_texts d ON d.id = st.description_id
	LEFT JOIN map_icons i ON i.id = st.icon_id AND i.deleted_at IS NULL
	LEFT JOIN uploaded_files f ON f.id = i.file_id`

const stopCount = `
	SELECT COUNT(*)
	FROM bus_stops st
	LEFT JOIN localized_texts n ON n.id = st.name_id`

func scanStop(row rowScanner) (*domain.BusStop, error) {
	var (
		stop     domain.BusStop
		iconID   sql.NullString
		zoneID   sql.NullString
		isActive sql.NullBool
		name     localizedColumns
		desc     localizedColumns
		icon     iconColumns
	)

	dest := []interface{}{
		&stop.ID, &stop.Latitude, &stop.Longitude, &iconID, &zoneID,
		&stop.HasShelter, &stop.HasBench, &stop.HasLighting, &stop.IsAccessible, &stop.HasRealTimeInfo,
		&isActive, &stop.CreatedAt, &stop.UpdatedAt,
	}
	dest = append(dest, name.dest()...)
	dest = append(dest, desc.dest()...)
	dest = append(dest, icon.dest()...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	stop.IconID = nullStr(iconID)
	stop.ZoneID = nullStr(zoneID)
	if isActive.Valid {
		v := isActive.Bool
		stop.IsActive = &v
	}
	stop.Name = name.toDomain()
	stop.Description = desc.toDomain()
	stop.Icon = icon.toDomain()
	return &stop, nil
}

type stopRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStopRepository(db *DB) repository.StopRepository {
	return &stopRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *stopRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.BusStop, int, error) {
	query, countQuery, args, countArgs := newListBuilder(stopSelect, stopCount).
		Where("st.deleted_at IS NULL").
		ActiveColumn("st.is_active").
		Sortable("st.created_at", map[string]string{
			"createdAt": "st.created_at",
			"updatedAt": "st.updated_at",
			"name":      "n.en",
		}).
		Searchable("n.en", "n.ar", "n.ckb").
		Build(params)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		r.logger.Error("Failed to count stops", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list stops", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	var stops []*domain.BusStop
	for rows.Next() {
		stop, err := scanStop(rows)
		if err != nil {
			r.logger.Error("Failed to scan stop", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		stops = append(stops, stop)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate stops", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return stops, total, nil
}

func (r *stopRepository) GetByID(ctx context.Context, id string) (*domain.BusStop, error) {
	row := r.db.QueryRowContext(ctx, stopSelect+" WHERE st.id = $1 AND st.deleted_at IS NULL", id)

	stop, err := scanStop(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get stop by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.loadImages(ctx, stop); err != nil {
		return nil, err
	}

	return stop, nil
}

func (r *stopRepository) loadImages(ctx context.Context, stop *domain.BusStop) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT f.id, f.url, f.name, f.type, f.size
		FROM stop_images si
		JOIN uploaded_files f ON f.id = si.file_id
		WHERE si.stop_id = $1
		ORDER BY si.position
	`, stop.ID)
	if err != nil {
		r.logger.Error("Failed to load stop images", zap.String("id", stop.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var (
			img       domain.UploadedFile
			name, typ sql.NullString
			size      sql.NullInt64
		)
		if err := rows.Scan(&img.ID, &img.URL, &name, &typ, &size); err != nil {
			r.logger.Error("Failed to scan stop image", zap.Error(err))
			return errors.ErrDatabaseError
		}
		img.Name = nullStr(name)
		img.Type = nullStr(typ)
		img.Size = nullInt(size)
		stop.Images = append(stop.Images, img)
	}
	return rows.Err()
}

func (r *stopRepository) Create(ctx context.Context, stop *domain.BusStop) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsertLocalizedText(ctx, tx, stop.Name); err != nil {
			return err
		}
		if err := upsertLocalizedText(ctx, tx, stop.Description); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO bus_stops (id, latitude, longitude, name_id, description_id, icon_id, zone_id,
			                       has_shelter, has_bench, has_lighting, is_accessible, has_real_time_info,
			                       is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`, stop.ID, stop.Latitude, stop.Longitude,
			localizedID(stop.Name), localizedID(stop.Description), stop.IconID, stop.ZoneID,
			stop.HasShelter, stop.HasBench, stop.HasLighting, stop.IsAccessible, stop.HasRealTimeInfo,
			stop.IsActive, stop.CreatedAt, stop.UpdatedAt)
		return err
	})
}

func (r *stopRepository) Update(ctx context.Context, stop *domain.BusStop) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsertLocalizedText(ctx, tx, stop.Name); err != nil {
			return err
		}
		if err := upsertLocalizedText(ctx, tx, stop.Description); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE bus_stops
			SET latitude = $2, longitude = $3, name_id = $4, description_id = $5, icon_id = $6, zone_id = $7,
			    has_shelter = $8, has_bench = $9, has_lighting = $10, is_accessible = $11, has_real_time_info = $12,
			    is_active = $13, updated_at = $14
			WHERE id = $1 AND deleted_at IS NULL
		`, stop.ID, stop.Latitude, stop.Longitude,
			localizedID(stop.Name), localizedID(stop.Description), stop.IconID, stop.ZoneID,
			stop.HasShelter, stop.HasBench, stop.HasLighting, stop.IsAccessible, stop.HasRealTimeInfo,
			stop.IsActive, stop.UpdatedAt)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

func (r *stopRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bus_stops SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		r.logger.Error("Failed to delete stop", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return requireRow(res)
}

func (r *stopRepository) SetLanes(ctx context.Context, stopID string, laneIDs []string) error {
	return r.db.writeTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM lane_stops WHERE stop_id = $1`, stopID); err != nil {
			return err
		}
		for _, laneID := range laneIDs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO lane_stops (lane_id, stop_id) VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, laneID, stopID); err != nil {
				return err
			}
		}
		return nil
	})
}
