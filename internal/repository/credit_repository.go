package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreditOptions guards and annotates a credit mutation
type CreditOptions struct {
	// CheckVersion makes the mutation fail unless the account is still at ExpectedVersion.
	// ExpectedVersion 0 stands for an account that did not exist when it was read.
	CheckVersion    bool
	ExpectedVersion int64
	ReceiptID       string
}

// CreditRepository defines the interface for credit account data operations
type CreditRepository interface {
	GetAccount(ctx context.Context, residentID string) (*models.CreditAccount, error)
	GetBalance(ctx context.Context, residentID string) (int64, error)
	Debit(ctx context.Context, residentID string, amount int64, opts CreditOptions) (*models.CreditAccount, error)
	Credit(ctx context.Context, residentID string, amount int64, ceiling *int64, opts CreditOptions) (*models.CreditAccount, int64, error)
	ListTransactions(ctx context.Context, residentID string, limit int) ([]models.CreditTransaction, error)
}

// creditRepository implements CreditRepository
type creditRepository struct {
	db *gorm.DB
}

// NewCreditRepository creates a new instance of CreditRepository
func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &creditRepository{
		db: db,
	}
}

// GetAccount returns the resident's account; a resident without one gets an unsaved zero account
func (r *creditRepository) GetAccount(ctx context.Context, residentID string) (*models.CreditAccount, error) {
	account, err := r.find(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return &models.CreditAccount{ResidentID: residentID}, nil
	}
	return account, nil
}

// GetBalance returns the resident's balance, 0 when no account exists
func (r *creditRepository) GetBalance(ctx context.Context, residentID string) (int64, error) {
	account, err := r.GetAccount(ctx, residentID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Debit draws amount from the balance
func (r *creditRepository) Debit(ctx context.Context, residentID string, amount int64, opts CreditOptions) (*models.CreditAccount, error) {
	if amount <= 0 {
		return nil, &allocation.AmountError{Amount: amount, Reason: "debit must be positive"}
	}

	account, err := r.find(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		if opts.CheckVersion && opts.ExpectedVersion > 0 {
			return nil, &allocation.ConflictError{ResidentID: residentID, Resource: "credit account", Key: residentID}
		}
		return nil, &allocation.InsufficientCreditError{ResidentID: residentID, Available: 0, Requested: amount}
	}
	if err := checkVersion(account, opts); err != nil {
		return nil, err
	}
	if amount > account.Balance {
		return nil, &allocation.InsufficientCreditError{ResidentID: residentID, Available: account.Balance, Requested: amount}
	}

	before := account.Balance
	if err := r.swapBalance(ctx, account, before-amount); err != nil {
		return nil, err
	}
	if err := r.journal(ctx, account, models.CreditEntryDebit, amount, 0, before, opts.ReceiptID); err != nil {
		return nil, err
	}

	return account, nil
}

// Credit adds amount to the balance, creating the account on first use. With a ceiling the
// balance is raised to at most *ceiling and the part that did not fit is returned as discarded.
func (r *creditRepository) Credit(ctx context.Context, residentID string, amount int64, ceiling *int64, opts CreditOptions) (*models.CreditAccount, int64, error) {
	if amount <= 0 {
		return nil, 0, &allocation.AmountError{Amount: amount, Reason: "credit must be positive"}
	}
	if amount > models.MaxAmount {
		return nil, 0, &allocation.AmountError{Amount: amount, Reason: "credit exceeds the ledger maximum"}
	}
	if ceiling != nil && *ceiling < 0 {
		return nil, 0, &allocation.AmountError{Amount: *ceiling, Reason: "credit cap must not be negative"}
	}

	account, err := r.loadOrCreate(ctx, residentID)
	if err != nil {
		return nil, 0, err
	}
	if err := checkVersion(account, opts); err != nil {
		return nil, 0, err
	}

	added := amount
	var discarded int64
	if ceiling != nil {
		room := max(*ceiling-account.Balance, 0)
		if added > room {
			discarded = added - room
			added = room
		}
	}
	if added == 0 {
		return account, discarded, nil
	}

	before := account.Balance
	if err := r.swapBalance(ctx, account, before+added); err != nil {
		return nil, 0, err
	}
	if err := r.journal(ctx, account, models.CreditEntryCredit, added, discarded, before, opts.ReceiptID); err != nil {
		return nil, 0, err
	}

	return account, discarded, nil
}

// ListTransactions returns the latest journal rows of the resident, newest first
func (r *creditRepository) ListTransactions(ctx context.Context, residentID string, limit int) ([]models.CreditTransaction, error) {
	var transactions []models.CreditTransaction

	query := r.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list credit transactions: %w", err)
	}

	return transactions, nil
}

func (r *creditRepository) find(ctx context.Context, residentID string) (*models.CreditAccount, error) {
	var account models.CreditAccount

	err := r.db.WithContext(ctx).Where("resident_id = ?", residentID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credit account: %w", err)
	}

	return &account, nil
}

func (r *creditRepository) loadOrCreate(ctx context.Context, residentID string) (*models.CreditAccount, error) {
	fresh := &models.CreditAccount{ResidentID: residentID, Balance: 0, Version: 1}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "resident_id"}}, DoNothing: true}).
		Create(fresh).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create credit account: %w", err)
	}

	account, err := r.find(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("credit account for resident %s vanished after creation", residentID)
	}
	return account, nil
}

// swapBalance writes the new balance if nobody bumped the version since account was read
func (r *creditRepository) swapBalance(ctx context.Context, account *models.CreditAccount, newBalance int64) error {
	now := time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&models.CreditAccount{}).
		Where("id = ? AND version = ?", account.ID, account.Version).
		Updates(map[string]interface{}{
			"balance":    newBalance,
			"version":    account.Version + 1,
			"updated_at": now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update credit balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &allocation.ConflictError{ResidentID: account.ResidentID, Resource: "credit account", Key: account.ResidentID}
	}

	account.Balance = newBalance
	account.Version++
	account.UpdatedAt = now
	return nil
}

func (r *creditRepository) journal(ctx context.Context, account *models.CreditAccount, entryType models.CreditEntryType, amount, discarded, before int64, receiptID string) error {
	entry := &models.CreditTransaction{
		ResidentID:    account.ResidentID,
		EntryType:     entryType,
		Amount:        amount,
		Discarded:     discarded,
		BalanceBefore: before,
		BalanceAfter:  account.Balance,
	}
	if receiptID != "" {
		entry.ReceiptID = &receiptID
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to write credit journal: %w", err)
	}
	return nil
}

// checkVersion compares the stored account against the version the caller allocated from.
// An account created by this very call (version 1, zero balance) matches ExpectedVersion 0.
func checkVersion(account *models.CreditAccount, opts CreditOptions) error {
	if !opts.CheckVersion {
		return nil
	}
	if opts.ExpectedVersion == 0 {
		if account.Version == 1 && account.Balance == 0 {
			return nil
		}
	} else if account.Version == opts.ExpectedVersion {
		return nil
	}
	return &allocation.ConflictError{ResidentID: account.ResidentID, Resource: "credit account", Key: account.ResidentID}
}
