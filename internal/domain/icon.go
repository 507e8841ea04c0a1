package domain

import "time"

// UploadedFile is a row from the upload storage. Stop images and icon
// files share this shape.
type UploadedFile struct {
	ID   string  `json:"id" db:"id"`
	URL  string  `json:"url" db:"url"`
	Name *string `json:"name,omitempty" db:"name"`
	Type *string `json:"type,omitempty" db:"type"`
	Size *int64  `json:"size,omitempty" db:"size"`
}

// MapIcon describes how an entity is drawn on the map. The linked file
// carries the actual image; an icon whose file is gone is unusable.
type MapIcon struct {
	ID           string        `json:"id" db:"id"`
	IconSize     *float64      `json:"icon_size,omitempty" db:"icon_size"`
	IconAnchorX  *float64      `json:"icon_anchor_x,omitempty" db:"icon_anchor_x"`
	IconAnchorY  *float64      `json:"icon_anchor_y,omitempty" db:"icon_anchor_y"`
	PopupAnchorX *float64      `json:"popup_anchor_x,omitempty" db:"popup_anchor_x"`
	PopupAnchorY *float64      `json:"popup_anchor_y,omitempty" db:"popup_anchor_y"`
	FileID       *string       `json:"file_id,omitempty" db:"file_id"`
	File         *UploadedFile `json:"file,omitempty"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time    `json:"-" db:"deleted_at"`
}
