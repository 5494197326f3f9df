package repository

import (
	"context"
	"errors"
	"fmt"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RFIDCardRepository defines the interface for RFID card binding operations
type RFIDCardRepository interface {
	FindByCode(ctx context.Context, cardCode string) (*models.RFIDCard, error)
	Bind(ctx context.Context, card *models.RFIDCard) error
}

// rfidCardRepository implements RFIDCardRepository
type rfidCardRepository struct {
	db *gorm.DB
}

// NewRFIDCardRepository creates a new instance of RFIDCardRepository
func NewRFIDCardRepository(db *gorm.DB) RFIDCardRepository {
	return &rfidCardRepository{
		db: db,
	}
}

// FindByCode resolves a card code to its binding
func (r *rfidCardRepository) FindByCode(ctx context.Context, cardCode string) (*models.RFIDCard, error) {
	var card models.RFIDCard

	err := r.db.WithContext(ctx).Where("card_code = ?", cardCode).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", allocation.ErrCardNotFound, cardCode)
		}
		return nil, fmt.Errorf("failed to get rfid card: %w", err)
	}

	return &card, nil
}

// Bind creates the card or re-points an existing card code to another resident
func (r *rfidCardRepository) Bind(ctx context.Context, card *models.RFIDCard) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "card_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"resident_id", "active", "paired_at", "updated_at"}),
		}).
		Create(card).Error
	if err != nil {
		return fmt.Errorf("failed to bind rfid card: %w", err)
	}
	return nil
}
