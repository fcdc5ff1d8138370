package model

// UnitImage is one gallery entry for a unit. Ordering is insertion
// order, there is no position column.
type UnitImage struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	UnitID   int    `gorm:"not null;index" json:"unitId"`
	ImageURL string `gorm:"column:image_url;type:text;not null" json:"imageUrl"`

	Unit *Unit `gorm:"foreignKey:UnitID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (UnitImage) TableName() string { return "unit_images" }

// ProjectImage belongs to a project and doubles as the fallback image
// pool for units that have no images of their own.
type ProjectImage struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID int    `gorm:"not null;index" json:"projectId"`
	ImageURL  string `gorm:"column:image_url;type:text;not null" json:"imageUrl"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (ProjectImage) TableName() string { return "project_images" }
