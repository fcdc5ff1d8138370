package model

import "time"

// Lead is a customer inquiry. Immutable once created except for
// deletion; project/unit references go NULL when their target is
// deleted so the inquiry itself survives.
type Lead struct {
	ID        int  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID *int `gorm:"index" json:"projectId"`
	UnitID    *int `gorm:"index" json:"unitId"`

	FullName string  `gorm:"type:text;not null" json:"fullName"`
	Phone    string  `gorm:"type:text;not null" json:"phone"`
	Email    *string `gorm:"type:text" json:"email"`
	Message  *string `gorm:"type:text" json:"message"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
	Unit    *Unit    `gorm:"foreignKey:UnitID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Lead) TableName() string { return "leads" }
