package store

import (
	"context"
	"errors"
	"fmt"

	"oneearth/models"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStore keeps each slot as one row of record_slots.
type PostgresStore struct {
	DB *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// OpenPostgres connects and migrates the slot table.
func OpenPostgres(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.RecordSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return NewPostgresStore(db), nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var slot models.RecordSlot
	err := s.DB.WithContext(ctx).Where("slot_key = ?", key).Take(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot %s: %w", key, err)
	}
	return []byte(slot.Value), true, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, data []byte) error {
	slot := models.RecordSlot{SlotKey: key, Value: datatypes.JSON(data)}
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if err := s.DB.WithContext(ctx).Where("slot_key = ?", key).Delete(&models.RecordSlot{}).Error; err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}
