package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/models"

	"gorm.io/gorm"
)

// ReceiptFilter narrows receipt listings
type ReceiptFilter struct {
	ResidentID string
	From       *time.Time
	To         *time.Time
}

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *models.Receipt) error
	GetByID(ctx context.Context, id string) (*models.Receipt, error)
	ListByResident(ctx context.Context, residentID string, page, limit int) ([]models.Receipt, int64, error)
	ListForExport(ctx context.Context, filter ReceiptFilter) ([]models.Receipt, error)
}

// receiptRepository implements ReceiptRepository
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new instance of ReceiptRepository
func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{
		db: db,
	}
}

// Create inserts the receipt together with its lines
func (r *receiptRepository) Create(ctx context.Context, receipt *models.Receipt) error {
	for i := range receipt.Lines {
		receipt.Lines[i].ReceiptID = receipt.ID
		receipt.Lines[i].Position = i + 1
	}

	if err := r.db.WithContext(ctx).Create(receipt).Error; err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}
	return nil
}

// GetByID retrieves a receipt with its lines in allocation order
func (r *receiptRepository) GetByID(ctx context.Context, id string) (*models.Receipt, error) {
	var receipt models.Receipt

	err := r.db.WithContext(ctx).
		Preload("Lines", orderLines).
		Where("id = ?", id).
		First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", allocation.ErrReceiptNotFound, id)
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	return &receipt, nil
}

// ListByResident returns one page of the resident's receipts, newest first
func (r *receiptRepository) ListByResident(ctx context.Context, residentID string, page, limit int) ([]models.Receipt, int64, error) {
	var receipts []models.Receipt
	var total int64

	err := r.db.WithContext(ctx).
		Model(&models.Receipt{}).
		Where("resident_id = ?", residentID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count receipts: %w", err)
	}

	offset := (page - 1) * limit
	err = r.db.WithContext(ctx).
		Preload("Lines", orderLines).
		Where("resident_id = ?", residentID).
		Order("recorded_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&receipts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list receipts: %w", err)
	}

	return receipts, total, nil
}

// ListForExport returns every receipt matching the filter, oldest first
func (r *receiptRepository) ListForExport(ctx context.Context, filter ReceiptFilter) ([]models.Receipt, error) {
	var receipts []models.Receipt

	query := r.db.WithContext(ctx).Preload("Lines", orderLines)
	if filter.ResidentID != "" {
		query = query.Where("resident_id = ?", filter.ResidentID)
	}
	if filter.From != nil {
		query = query.Where("recorded_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("recorded_at < ?", *filter.To)
	}

	if err := query.Order("recorded_at ASC").Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("failed to list receipts for export: %w", err)
	}

	return receipts, nil
}

func orderLines(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
