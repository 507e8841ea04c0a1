package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/pkg/errors"
)

func nullStr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func nullInt(i sql.NullInt64) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}

// localizedColumns scans a LEFT JOINed localized_texts row. A NULL id
// means the whole record is absent, which is distinct from present
// slots being NULL.
type localizedColumns struct {
	id, en, ar, ckb sql.NullString
}

func (c *localizedColumns) dest() []interface{} {
	return []interface{}{&c.id, &c.en, &c.ar, &c.ckb}
}

func (c *localizedColumns) toDomain() *domain.LocalizedText {
	if !c.id.Valid {
		return nil
	}
	return &domain.LocalizedText{
		ID:  c.id.String,
		En:  nullStr(c.en),
		Ar:  nullStr(c.ar),
		Ckb: nullStr(c.ckb),
	}
}

// iconColumns scans a LEFT JOINed map_icons + uploaded_files pair.
type iconColumns struct {
	id                                         sql.NullString
	iconSize, anchorX, anchorY, popupX, popupY sql.NullFloat64
	fileID, fileURL, fileName, fileType        sql.NullString
	fileSize                                   sql.NullInt64
}

func (c *iconColumns) dest() []interface{} {
	return []interface{}{
		&c.id, &c.iconSize, &c.anchorX, &c.anchorY, &c.popupX, &c.popupY,
		&c.fileID, &c.fileURL, &c.fileName, &c.fileType, &c.fileSize,
	}
}

func (c *iconColumns) toDomain() *domain.MapIcon {
	if !c.id.Valid {
		return nil
	}
	icon := &domain.MapIcon{
		ID:           c.id.String,
		IconSize:     nullFloat(c.iconSize),
		IconAnchorX:  nullFloat(c.anchorX),
		IconAnchorY:  nullFloat(c.anchorY),
		PopupAnchorX: nullFloat(c.popupX),
		PopupAnchorY: nullFloat(c.popupY),
		FileID:       nullStr(c.fileID),
	}
	if c.fileID.Valid {
		icon.File = &domain.UploadedFile{
			ID:   c.fileID.String,
			URL:  c.fileURL.String,
			Name: nullStr(c.fileName),
			Type: nullStr(c.fileType),
			Size: nullInt(c.fileSize),
		}
	}
	return icon
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// localizedID returns the record id or nil for an absent relation.
func localizedID(t *domain.LocalizedText) *string {
	if t == nil {
		return nil
	}
	return &t.ID
}

// requireRow maps zero affected rows to a not-found error.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if n == 0 {
		return errors.ErrNotFound
	}
	return nil
}

// upsertLocalizedText writes one localized record inside a transaction.
func upsertLocalizedText(ctx context.Context, tx *sqlx.Tx, t *domain.LocalizedText) error {
	if t == nil {
		return nil
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO localized_texts (id, en, ar, ckb)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET en = EXCLUDED.en, ar = EXCLUDED.ar, ckb = EXCLUDED.ckb
	`, t.ID, t.En, t.Ar, t.Ckb)
	return err
}
