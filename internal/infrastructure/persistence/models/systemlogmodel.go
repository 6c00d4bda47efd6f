package models

type SystemLogModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	UserName    string `gorm:"size:255"`
	CompanyID   string `gorm:"size:50;index"`
	CompanyName string `gorm:"size:255"`
	Action      string `gorm:"size:20;not null;index"`
	Module      string `gorm:"size:50;not null;index"`
	Description string `gorm:"type:text"`
	IPAddress   string `gorm:"size:100"`
	UserAgent   string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (SystemLogModel) TableName() string {
	return "system_logs"
}
