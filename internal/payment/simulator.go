// Package payment имитирует оплату депозита за площадку. Реальных списаний нет.
package payment

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultDelay          = 1500 * time.Millisecond
	DefaultDepositPercent = 10.0
)

var (
	ErrDeclined      = errors.New("payment declined")
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

type Request struct {
	Reference string
	Amount    float64
}

type Receipt struct {
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	PaidAt    time.Time `json:"paid_at"`
}

type Simulator struct {
	delay   time.Duration
	decline bool
	now     func() time.Time
}

// NewSimulator создает симулятор с фиксированной задержкой подтверждения.
func NewSimulator(delay time.Duration, decline bool) *Simulator {
	if delay < 0 {
		delay = 0
	}
	return &Simulator{delay: delay, decline: decline, now: time.Now}
}

// Pay ждет задержку и возвращает квитанцию. Отмена контекста прерывает ожидание.
func (s *Simulator) Pay(ctx context.Context, request Request) (Receipt, error) {
	if request.Amount <= 0 || math.IsNaN(request.Amount) || math.IsInf(request.Amount, 0) {
		return Receipt{}, ErrInvalidAmount
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	if s.decline {
		return Receipt{}, ErrDeclined
	}

	return Receipt{
		ID:        uuid.New(),
		Reference: strings.TrimSpace(request.Reference),
		Amount:    request.Amount,
		PaidAt:    s.now().UTC(),
	}, nil
}

// Deposit считает депозит как процент от цены.
func Deposit(price, percent float64) float64 {
	return price * percent / 100
}
