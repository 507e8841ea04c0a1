package postgres

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/domain/repository"
	"github.com/transit-backoffice/internal/pkg/errors"
)

const iconSelect = `
	SELECT i.created_at, i.updated_at,
	       i.id, i.icon_size, i.icon_anchor_x, i.icon_anchor_y, i.popup_anchor_x, i.popup_anchor_y,
	       f.id, f.url, f.name, f.type, f.size
	FROM map_icons i
	LEFT JOIN uploaded_files f ON f.id = i.file_id`

const iconCount = `
	SELECT COUNT(*)
	FROM map_icons i`

func scanIcon(row rowScanner) (*domain.MapIcon, error) {
	var (
		createdAt, updatedAt sql.NullTime
		cols                 iconColumns
	)

	dest := []interface{}{&createdAt, &updatedAt}
	dest = append(dest, cols.dest()...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	icon := cols.toDomain()
	if icon == nil {
		return nil, sql.ErrNoRows
	}
	if createdAt.Valid {
		icon.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		icon.UpdatedAt = updatedAt.Time
	}
	return icon, nil
}

type iconRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewIconRepository(db *DB) repository.IconRepository {
	return &iconRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *iconRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.MapIcon, int, error) {
	query, countQuery, args, countArgs := newListBuilder(iconSelect, iconCount).
		Where("i.deleted_at IS NULL").
		Sortable("i.created_at", map[string]string{
			"createdAt": "i.created_at",
			"updatedAt": "i.updated_at",
		}).
		Build(params)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		r.logger.Error("Failed to count icons", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list icons", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	var icons []*domain.MapIcon
	for rows.Next() {
		icon, err := scanIcon(rows)
		if err != nil {
			r.logger.Error("Failed to scan icon", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		icons = append(icons, icon)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate icons", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return icons, total, nil
}

func (r *iconRepository) GetByID(ctx context.Context, id string) (*domain.MapIcon, error) {
	row := r.db.QueryRowContext(ctx, iconSelect+" WHERE i.id = $1 AND i.deleted_at IS NULL", id)

	icon, err := scanIcon(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get icon by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return icon, nil
}

func (r *iconRepository) Create(ctx context.Context, icon *domain.MapIcon) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO map_icons (id, file_id, icon_size, icon_anchor_x, icon_anchor_y, popup_anchor_x, popup_anchor_y, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, icon.ID, icon.FileID, icon.IconSize, icon.IconAnchorX, icon.IconAnchorY,
		icon.PopupAnchorX, icon.PopupAnchorY, icon.CreatedAt, icon.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create icon", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *iconRepository) Update(ctx context.Context, icon *domain.MapIcon) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE map_icons
		SET file_id = $2, icon_size = $3, icon_anchor_x = $4, icon_anchor_y = $5,
		    popup_anchor_x = $6, popup_anchor_y = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`, icon.ID, icon.FileID, icon.IconSize, icon.IconAnchorX, icon.IconAnchorY,
		icon.PopupAnchorX, icon.PopupAnchorY, icon.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to update icon", zap.String("id", icon.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return requireRow(res)
}

func (r *iconRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE map_icons SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		r.logger.Error("Failed to delete icon", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return requireRow(res)
}
