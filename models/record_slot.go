package models

import (
	"time"

	"gorm.io/datatypes"
)

// RecordSlot is one key of the record store when it is backed by Postgres.
type RecordSlot struct {
	SlotKey   string         `gorm:"primaryKey;type:varchar(191)"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (RecordSlot) TableName() string {
	return "record_slots"
}
