package models

// IDSequenceModel is the per-namespace counter backing sequential
// human-readable identifiers. One row per namespace, locked FOR UPDATE
// during allocation.
type IDSequenceModel struct {
	Namespace string `gorm:"primaryKey;size:100"`
	LastValue int    `gorm:"not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (IDSequenceModel) TableName() string {
	return "id_sequences"
}
