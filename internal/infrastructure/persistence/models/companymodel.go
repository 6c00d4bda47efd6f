package models

type CompanyModel struct {
	ID                string  `gorm:"primaryKey;size:50"`
	Name              string  `gorm:"size:255;not null"`
	Logo              *string `gorm:"type:longtext"`
	LineToken         *string `gorm:"size:255"`
	TelegramToken     *string `gorm:"size:255"`
	NotificationEmail *string `gorm:"size:255"`
	ExpiryDate        *int64
	CreatedAt         int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CompanyModel) TableName() string {
	return "companies"
}

type BranchModel struct {
	ID              string  `gorm:"primaryKey;size:50"`
	Name            string  `gorm:"size:255;not null"`
	CompanyID       string  `gorm:"size:50;not null;index"`
	TicketPrefix    *string `gorm:"size:20"`
	TechnicianEmail *string `gorm:"size:255"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (BranchModel) TableName() string {
	return "branches"
}
