package models

type TicketModel struct {
	ID          string  `gorm:"primaryKey;size:50"`
	Title       string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text;not null"`
	AssetID     *string `gorm:"size:50;index"`
	Priority    string  `gorm:"size:20;not null;index"`
	Status      string  `gorm:"size:20;not null;index"`
	CreatedBy   uint    `gorm:"not null;index"`
	AssignedTo  *uint   `gorm:"index"`
	ApprovedBy  *uint
	ClosedBy    *uint
	CompanyID   string  `gorm:"size:50;not null;index"`
	BranchID    string  `gorm:"size:50;not null;index"`
	Attachments string  `gorm:"type:json"`
	Resolution  *string `gorm:"type:text"`

	PhoneNumber    *string `gorm:"size:50"`
	DeviceLocation *string `gorm:"size:255"`
	IPAddress      *string `gorm:"size:100"`

	RepairCost               *float64
	ReplacedPartName         *string `gorm:"size:255"`
	ReplacedPartSerialNumber *string `gorm:"size:255"`
	ReplacedPartBrand        *string `gorm:"size:100"`
	ReplacedPartModel        *string `gorm:"size:100"`

	CustomDeviceType         *string `gorm:"size:100"`
	CustomDeviceSerialNumber *string `gorm:"size:255;index"`
	CustomDeviceAssetCode    *string `gorm:"size:100"`
	CustomDeviceBrand        *string `gorm:"size:100"`
	CustomDeviceModel        *string `gorm:"size:100"`

	Images    string `gorm:"type:json"`
	ClosedAt  *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketHistoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    string `gorm:"size:50;not null;index"`
	Action      string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	UserID      uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketHistoryModel) TableName() string {
	return "ticket_histories"
}
