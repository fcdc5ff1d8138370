package model

import "time"

// Unit listing type and sale status enums. Stored as plain text, the
// validation layer is the gatekeeper.
const (
	UnitTypePrimary = "primary"
	UnitTypeResale  = "resale"

	UnitStatusAvailable = "available"
	UnitStatusSold      = "sold"
)

// Unit is a sellable listing belonging to exactly one project. Prices
// are integers in the smallest currency unit.
type Unit struct {
	ID        int `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID int `gorm:"not null;index" json:"projectId"`

	Title        string  `gorm:"type:text;not null" json:"title"`
	UnitCode     *string `gorm:"type:text;index" json:"unitCode"`
	PropertyType *string `gorm:"type:text" json:"propertyType"`
	Type         string  `gorm:"type:text;not null" json:"type"`

	Price              int  `gorm:"not null" json:"price"`
	OverPrice          *int `json:"overPrice"`
	TotalPaid          *int `json:"totalPaid"`
	TotalPaidWithOver  *int `json:"totalPaidWithOver"`
	InstallmentValue   *int `json:"installmentValue"`
	MaintenanceDeposit *int `json:"maintenanceDeposit"`
	RepaymentYears     *int `json:"repaymentYears"`

	Area      int `gorm:"not null" json:"area"`
	Bedrooms  int `gorm:"not null" json:"bedrooms"`
	Bathrooms int `gorm:"not null" json:"bathrooms"`

	Location string `gorm:"type:text;not null" json:"location"`
	Status   string `gorm:"type:text;not null" json:"status"`

	MainImageURL   *string `gorm:"column:main_image_url;type:text" json:"mainImageUrl"`
	Description    *string `gorm:"type:text" json:"description"`
	PaymentPlanPdf *string `gorm:"column:payment_plan_pdf;type:text" json:"paymentPlanPdf"`

	IsFeaturedOnHomepage bool `gorm:"not null;default:false" json:"isFeaturedOnHomepage"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Project *Project    `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
	Images  []UnitImage `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Unit) TableName() string { return "units" }
