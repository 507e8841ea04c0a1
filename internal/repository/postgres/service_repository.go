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

const serviceSelect = `
	SELECT s.id, s.type, s.color, s.is_active, s.icon_id, s.created_at, s.updated_at,
	       n.id, n.en, n.ar, n.ckb,
	       d.id, d.en, d.ar, d.ckb,
	       i.id, i.icon_size, i.icon_anchor_x, i.icon_anchor_y, i.popup_anchor_x, i.popup_anchor_y,
	       f.id, f.url, f.name, f.type, f.size
	FROM transport_services s
	LEFT JOIN localized_texts n ON n.id = s.name_id
	LEFT JOIN localized_texts d ON d.id = s.description_id
	LEFT JOIN map_icons i ON i.id = s.icon_id AND i.deleted_at IS NULL
	LEFT JOIN uploaded_files f ON f.id = i.file_id`

const serviceCount = `
	SELECT COUNT(*)
	FROM transport_services s
	LEFT JOIN localized_texts n ON n.id = s.name_id`

func scanService(row rowScanner) (*domain.TransportService, error) {
	var (
		svc    domain.TransportService
		iconID sql.NullString
		name   localizedColumns
		desc   localizedColumns
		icon   iconColumns
	)

	dest := []interface{}{&svc.ID, &svc.Type, &svc.Color, &svc.IsActive, &iconID, &svc.CreatedAt, &svc.UpdatedAt}
	dest = append(dest, name.dest()...)
	dest = append(dest, desc.dest()...)
	dest = append(dest, icon.dest()...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	svc.IconID = nullStr(iconID)
	svc.Name = name.toDomain()
	svc.Description = desc.toDomain()
	svc.Icon = icon.toDomain()
	return &svc, nil
}

type serviceRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewServiceRepository(db *DB) repository.ServiceRepository {
	return &serviceRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *serviceRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.TransportService, int, error) {
	query, countQuery, args, countArgs := newListBuilder(serviceSelect, serviceCount).
		Where("s.deleted_at IS NULL").
		ActiveColumn("s.is_active").
		Sortable("s.created_at", map[string]string{
			"createdAt": "s.created_at",
			"updatedAt": "s.updated_at",
			"type":      "s.type",
			"name":      "n.en",
		}).
		Searchable("n.en", "n.ar", "n.ckb").
		Build(params)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		r.logger.Error("Failed to count services", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list services", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	var services []*domain.TransportService
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			r.logger.Error("Failed to scan service", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate services", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return services, total, nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.TransportService, error) {
	row := r.db.QueryRowContext(ctx, serviceSelect+" WHERE s.id = $1 AND s.deleted_at IS NULL", id)

	svc, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get service by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return svc, nil
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.TransportService) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsertLocalizedText(ctx, tx, svc.Name); err != nil {
			return err
		}
		if err := upsertLocalizedText(ctx, tx, svc.Description); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO transport_services (id, type, color, is_active, name_id, description_id, icon_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, svc.ID, svc.Type, svc.Color, svc.IsActive,
			localizedID(svc.Name), localizedID(svc.Description), svc.IconID,
			svc.CreatedAt, svc.UpdatedAt)
		return err
	})
}

func (r *serviceRepository) Update(ctx context.Context, svc *domain.TransportService) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsertLocalizedText(ctx, tx, svc.Name); err != nil {
			return err
		}
		if err := upsertLocalizedText(ctx, tx, svc.Description); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE transport_services
			SET type = $2, color = $3, is_active = $4, name_id = $5, description_id = $6, icon_id = $7, updated_at = $8
			WHERE id = $1 AND deleted_at IS NULL
		`, svc.ID, svc.Type, svc.Color, svc.IsActive,
			localizedID(svc.Name), localizedID(svc.Description), svc.IconID, svc.UpdatedAt)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

func (r *serviceRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE transport_services SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		r.logger.Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return requireRow(res)
}

func (r *serviceRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return r.db.writeTx(ctx, fn)
}
