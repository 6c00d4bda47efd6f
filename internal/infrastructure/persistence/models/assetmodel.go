package models

type AssetModel struct {
	ID           string `gorm:"primaryKey;size:50"`
	AssetCode    string `gorm:"uniqueIndex;size:100;not null"`
	SerialNumber string `gorm:"size:255;not null;index"`
	Type         string `gorm:"size:100;not null;index"`
	Brand        string `gorm:"size:100"`
	Model        string `gorm:"size:100"`
	StartDate    int64
	Location     string  `gorm:"size:255"`
	Department   *string `gorm:"size:255"`
	IPAddress    *string `gorm:"size:100"`
	DiagramFile  *string `gorm:"size:255"`
	Images       string  `gorm:"type:json"`
	CompanyID    string  `gorm:"size:50;not null;index"`
	BranchID     string  `gorm:"size:50;not null;index"`
	Responsible  string  `gorm:"size:50"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (AssetModel) TableName() string {
	return "assets"
}
