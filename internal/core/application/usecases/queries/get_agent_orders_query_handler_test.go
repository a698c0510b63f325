package queries

import (
	"testing"

	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAgentOrder_ValidRow(t *testing.T) {
	id := uuid.New()

	entry, err := scanAgentOrder(id, int(tier.Express), 540, 720, int(order.Online), decimal.NewFromInt(76))

	require.NoError(t, err)
	assert.Equal(t, id.String(), entry.ID.String())
	assert.Equal(t, tier.Express, entry.Tier)
	assert.Equal(t, 540, entry.Window.StartMinute())
	assert.Equal(t, 720, entry.Window.EndMinute())
	assert.Equal(t, order.Online, entry.PaymentType)
}

func TestScanAgentOrder_InvalidTier(t *testing.T) {
	entry, err := scanAgentOrder(uuid.New(), 99, 540, 720, int(order.Online), decimal.NewFromInt(76))

	require.Error(t, err)
	var invalidErr *errs.ValueIsInvalidError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Zero(t, entry)
}

func TestScanAgentOrder_InvalidPaymentType(t *testing.T) {
	entry, err := scanAgentOrder(uuid.New(), int(tier.Normal), 540, 720, 99, decimal.NewFromInt(76))

	require.Error(t, err)
	var invalidErr *errs.ValueIsInvalidError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Zero(t, entry)
}

func TestScanAgentOrderStep_ValidRow(t *testing.T) {
	step, err := scanAgentOrderStep(int(order.StepPickedUp), true)

	require.NoError(t, err)
	assert.Equal(t, order.StepPickedUp, step.Name)
	assert.True(t, step.Completed)
}

func TestScanAgentOrderStep_InvalidName(t *testing.T) {
	step, err := scanAgentOrderStep(99, false)

	require.Error(t, err)
	var invalidErr *errs.ValueIsInvalidError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Zero(t, step)
}
