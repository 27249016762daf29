package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roster-manager/core/schema"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// batchSize bounds the rows per INSERT statement.
const batchSize = 200

// StoredRecord is the table model for one canonical record.
type StoredRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	BaseName  string    `gorm:"size:64;not null;uniqueIndex:idx_roster_records_key,priority:1"`
	RecordKey string    `gorm:"size:191;not null;uniqueIndex:idx_roster_records_key,priority:2"`
	Data      []byte    `gorm:"type:text;not null"`
	BatchID   string    `gorm:"size:36"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the default table name.
func (StoredRecord) TableName() string {
	return "roster_records"
}

// Store reads and writes records through GORM.
type Store struct {
	db *gorm.DB
}

// New creates a Store on db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the records table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&StoredRecord{}); err != nil {
		return fmt.Errorf("failed to migrate records table: %w", err)
	}
	return nil
}

// LoadRecords returns every stored record of baseName in insertion order.
func (s *Store) LoadRecords(ctx context.Context, baseName string) ([]schema.Record, error) {
	var rows []StoredRecord
	err := s.db.WithContext(ctx).
		Where("base_name = ?", baseName).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load %s records: %w", baseName, err)
	}

	records := make([]schema.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decode(row.Data)
		if err != nil {
			return nil, fmt.Errorf("corrupt %s record %s: %w", baseName, row.RecordKey, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// UpsertRecord inserts rec or replaces the stored record with the same key.
func (s *Store) UpsertRecord(ctx context.Context, baseName, key string, rec schema.Record) error {
	return s.UpsertBatch(ctx, baseName, []string{key}, []schema.Record{rec})
}

// UpsertBatch writes records in one transaction. keys[i] is the primary key of records[i].
func (s *Store) UpsertBatch(ctx context.Context, baseName string, keys []string, records []schema.Record) error {
	if len(keys) != len(records) {
		return fmt.Errorf("upsert %s: %d keys for %d records", baseName, len(keys), len(records))
	}
	if len(records) == 0 {
		return nil
	}

	batchID := uuid.NewString()
	rows := make([]StoredRecord, len(records))
	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode %s record %s: %w", baseName, keys[i], err)
		}
		rows[i] = StoredRecord{BaseName: baseName, RecordKey: keys[i], Data: data, BatchID: batchID}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "base_name"}, {Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "batch_id", "updated_at"}),
		}).CreateInBatches(&rows, batchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to write %s records: %w", baseName, err)
	}
	return nil
}

// DeleteRecord removes the stored record with the given key.
func (s *Store) DeleteRecord(ctx context.Context, baseName, key string) error {
	return s.DeleteBatch(ctx, baseName, []string{key})
}

// DeleteBatch removes the stored records with the given keys.
func (s *Store) DeleteBatch(ctx context.Context, baseName string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Where("base_name = ? AND record_key IN ?", baseName, keys).
		Delete(&StoredRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete %s records: %w", baseName, err)
	}
	return nil
}

// Count returns the number of stored records of baseName.
func (s *Store) Count(ctx context.Context, baseName string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&StoredRecord{}).Where("base_name = ?", baseName).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s records: %w", baseName, err)
	}
	return n, nil
}

func decode(data []byte) (schema.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec schema.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}
