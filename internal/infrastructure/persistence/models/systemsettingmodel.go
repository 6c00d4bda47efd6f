package models

type SystemSettingModel struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex;size:100;not null;column:setting_key"`
	Value     string `gorm:"type:text;column:setting_value"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SystemSettingModel) TableName() string {
	return "system_settings"
}
