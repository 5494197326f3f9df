package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"
)

// CardService defines the interface for RFID card operations
type CardService interface {
	BindCard(ctx context.Context, cardCode, residentID string) (*models.RFIDCard, error)
}

// cardService implements CardService
type cardService struct {
	cardRepo repository.RFIDCardRepository
	logger   *logger.Logger
}

// NewCardService creates a new card service
func NewCardService(cardRepo repository.RFIDCardRepository, logger *logger.Logger) CardService {
	return &cardService{
		cardRepo: cardRepo,
		logger:   logger,
	}
}

// BindCard pairs a card code with a resident, replacing any previous pairing of that card
func (s *cardService) BindCard(ctx context.Context, cardCode, residentID string) (*models.RFIDCard, error) {
	cardCode = models.NormalizeCardCode(cardCode)
	residentID = strings.TrimSpace(residentID)
	if cardCode == "" || residentID == "" {
		return nil, fmt.Errorf("%w: card code and resident id are required", allocation.ErrInvalidRequest)
	}

	now := time.Now().UTC()
	card := &models.RFIDCard{
		CardCode:   cardCode,
		ResidentID: residentID,
		Active:     true,
		PairedAt:   now,
		UpdatedAt:  now,
	}
	if err := s.cardRepo.Bind(ctx, card); err != nil {
		s.logger.WithError(err).WithField("card_code", cardCode).Error("Failed to bind RFID card")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"card_code":   cardCode,
		"resident_id": residentID,
	}).Info("RFID card bound")

	return card, nil
}
