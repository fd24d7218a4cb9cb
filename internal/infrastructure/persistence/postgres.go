package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreDocument is the row model of the postgres backend
type StoreDocument struct {
	Name      string         `gorm:"primaryKey;column:name"`
	Payload   datatypes.JSON `gorm:"column:payload;type:jsonb"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

// TableName pins the table name
func (StoreDocument) TableName() string {
	return "store_documents"
}

// PostgresBackend stores collections as jsonb rows through gorm
type PostgresBackend struct {
	db *gorm.DB
}

// NewPostgresBackend connects and migrates the store_documents table
func NewPostgresBackend(dsn string) (*PostgresBackend, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}
	if err := db.AutoMigrate(&StoreDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store_documents: %w", err)
	}
	return &PostgresBackend{db: db}, nil
}

// Get loads the row for name
func (b *PostgresBackend) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var doc StoreDocument
	err := b.db.WithContext(ctx).Where("name = ?", name).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(doc.Payload), true, nil
}

// Put upserts the row for name
func (b *PostgresBackend) Put(ctx context.Context, name string, payload []byte) error {
	doc := StoreDocument{
		Name:      name,
		Payload:   datatypes.JSON(payload),
		UpdatedAt: time.Now().UTC(),
	}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&doc).Error
}

// Close releases the underlying connection pool
func (b *PostgresBackend) Close(context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
