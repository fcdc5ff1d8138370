package model

// AdminUser is a back-office account. There is no self-service signup,
// rows are provisioned with the `admin create` command.
type AdminUser struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"type:text;not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`
}

func (AdminUser) TableName() string { return "admin_users" }
