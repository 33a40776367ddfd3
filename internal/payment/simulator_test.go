package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSimulatorPay проверяет выдачу квитанции после задержки.
func TestSimulatorPay(t *testing.T) {
	simulator := NewSimulator(10*time.Millisecond, false)

	started := time.Now()
	receipt, err := simulator.Pay(context.Background(), Request{Reference: " venue-1 ", Amount: 1500})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(started), 10*time.Millisecond)
	assert.Equal(t, "venue-1", receipt.Reference)
	assert.Equal(t, 1500.0, receipt.Amount)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", receipt.ID.String())
}

// TestSimulatorDecline проверяет отказ в оплате.
func TestSimulatorDecline(t *testing.T) {
	simulator := NewSimulator(0, true)

	_, err := simulator.Pay(context.Background(), Request{Amount: 100})
	assert.ErrorIs(t, err, ErrDeclined)
}

// TestSimulatorRejectsAmount проверяет отказ для неположительной суммы.
func TestSimulatorRejectsAmount(t *testing.T) {
	simulator := NewSimulator(0, false)

	for _, amount := range []float64{0, -5} {
		_, err := simulator.Pay(context.Background(), Request{Amount: amount})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

// TestSimulatorHonorsContext проверяет прерывание ожидания по контексту.
func TestSimulatorHonorsContext(t *testing.T) {
	simulator := NewSimulator(time.Minute, false)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := simulator.Pay(ctx, Request{Amount: 100})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

// TestDeposit проверяет расчет депозита.
func TestDeposit(t *testing.T) {
	assert.Equal(t, 1500.0, Deposit(15000, 10))
	assert.Equal(t, 6000.0, Deposit(12000, 50))
}
