package model

// Settings is a logical singleton. The read path creates the row with
// these defaults when none exists yet.
type Settings struct {
	ID             int    `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyPhone   string `gorm:"type:text;not null;default:'+20 1234567890'" json:"companyPhone"`
	WhatsappNumber string `gorm:"type:text;not null;default:'+20 1234567890'" json:"whatsappNumber"`
	HeroTitle      string `gorm:"type:text;not null" json:"heroTitle"`
	HeroSubtitle   string `gorm:"type:text;not null" json:"heroSubtitle"`
}

func (Settings) TableName() string { return "settings" }

// DefaultSettings returns the row inserted on first read.
func DefaultSettings() Settings {
	return Settings{
		CompanyPhone:   "+20 1234567890",
		WhatsappNumber: "+20 1234567890",
		HeroTitle:      "اكتشف منزل أحلامك مع Mars Realestates",
		HeroSubtitle:   "نقدم لك أفضل العقارات والمشروعات السكنية في مصر",
	}
}
