package model

import (
	"time"

	"gorm.io/datatypes"
)

// Asset records every object written to the bucket during a listing
// upload. The unit insert happens after the uploads, so if it fails the
// rows here are the cleanup trail for the orphaned objects.
type Asset struct {
	ID     int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Bucket string `gorm:"type:text;not null" json:"bucket"`
	Key    string `gorm:"column:object_key;type:text;not null;uniqueIndex" json:"key"`
	URL    string `gorm:"type:text;not null" json:"url"`
	ETag   string `gorm:"column:etag;type:text" json:"etag"`
	MIME   string `gorm:"column:mime;type:text" json:"mime"`
	SizeB  int64  `gorm:"column:size_bigint;not null" json:"sizeB"`

	// Free-form upload context: original filename, form field, etc.
	Meta datatypes.JSONMap `gorm:"type:json" json:"meta"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Asset) TableName() string { return "assets" }
