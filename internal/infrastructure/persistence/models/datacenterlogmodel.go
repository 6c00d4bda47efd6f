package models

type DataCenterLogModel struct {
	ID               string  `gorm:"primaryKey;size:50"`
	VisitorName      string  `gorm:"size:255;not null"`
	VisitorCompany   *string `gorm:"size:255"`
	ContactNumber    string  `gorm:"size:50;not null"`
	EntryTime        int64   `gorm:"not null;index"`
	ExitTime         *int64
	Purpose          string  `gorm:"type:text;not null"`
	EquipmentBrought *string `gorm:"type:text"`
	AuthorizedBy     string  `gorm:"size:255;not null"`
	CompanyID        string  `gorm:"size:50;not null;index"`
	BranchID         string  `gorm:"size:50;not null;index"`
	CreatedBy        uint    `gorm:"not null"`
	Notes            *string `gorm:"type:text"`
	CreatedAt        int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (DataCenterLogModel) TableName() string {
	return "data_center_logs"
}
