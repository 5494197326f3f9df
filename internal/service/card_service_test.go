package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/database/dbtest"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"
)

func TestCardService_BindCard(t *testing.T) {
	db := dbtest.New(t)
	cards := repository.NewRFIDCardRepository(db)
	svc := NewCardService(cards, logger.NewNopLogger())
	ctx := context.Background()

	card, err := svc.BindCard(ctx, " 04a2b9c1 ", "warga_001")
	require.NoError(t, err)
	assert.Equal(t, "04A2B9C1", card.CardCode)
	assert.True(t, card.Active)

	_, err = svc.BindCard(ctx, "04A2B9C1", "warga_002")
	require.NoError(t, err)

	stored, err := cards.FindByCode(ctx, "04A2B9C1")
	require.NoError(t, err)
	assert.Equal(t, "warga_002", stored.ResidentID)

	_, err = svc.BindCard(ctx, "  ", "warga_001")
	assert.True(t, errors.Is(err, allocation.ErrInvalidRequest))
	_, err = svc.BindCard(ctx, "04A2B9C1", "")
	assert.True(t, errors.Is(err, allocation.ErrInvalidRequest))
}
