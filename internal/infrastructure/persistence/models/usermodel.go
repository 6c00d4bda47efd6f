package models

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:100;not null"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	Role      string `gorm:"size:20;not null;index"`
	CompanyID string `gorm:"size:50;not null;index"`
	BranchID  string `gorm:"size:50;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
