package model

import "time"

// Project is a real-estate development grouping units. The four
// "appears in" flags drive which public listing pages show it.
type Project struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`
	Slug string `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	City string `gorm:"type:text;not null" json:"city"`

	AppearsInResaleProjects     bool `gorm:"not null;default:false" json:"appearsInResaleProjects"`
	AppearsInProjects           bool `gorm:"not null;default:false" json:"appearsInProjects"`
	AppearsInAlexandriaProjects bool `gorm:"not null;default:false" json:"appearsInAlexandriaProjects"`
	AppearsInAlexandriaResale   bool `gorm:"not null;default:false" json:"appearsInAlexandriaResale"`

	LogoURL          *string `gorm:"column:logo_url;type:text" json:"logoUrl"`
	ShortDescription *string `gorm:"type:text" json:"shortDescription"`
	// Newline-delimited amenity lines.
	Amenities *string `gorm:"type:text" json:"amenities"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Units  []Unit         `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"units,omitempty"`
	Images []ProjectImage `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }
