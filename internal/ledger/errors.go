package ledger

import (
	"errors"
	"fmt"
)

// ErrValidation помечает локальные ошибки ввода: состояние сессии при них не меняется.
var ErrValidation = errors.New("validation failed")

var (
	ErrAlreadyHired         = fmt.Errorf("%w: vendor already hired", ErrValidation)
	ErrNothingPending       = fmt.Errorf("%w: nothing pending", ErrValidation)
	ErrInvalidVendor        = fmt.Errorf("%w: invalid vendor", ErrValidation)
	ErrInvalidCategory      = fmt.Errorf("%w: category is required", ErrValidation)
	ErrInvalidAmount        = fmt.Errorf("%w: amount must be a finite number", ErrValidation)
	ErrExpertRequired       = fmt.Errorf("%w: expert is required", ErrValidation)
	ErrInvalidEstimateInput = fmt.Errorf("%w: total budget must be positive and event type non-empty", ErrValidation)
	ErrEmptyMessage         = fmt.Errorf("%w: message is empty", ErrValidation)
)

var (
	ErrStaleEstimate = errors.New("estimate superseded by a newer response")
	ErrStoreFull     = errors.New("session limit reached")
)

// EstimateError оборачивает сбой внешнего сервиса оценки. Ошибка восстановимая:
// предыдущая разбивка бюджета остается на месте.
type EstimateError struct {
	Err error
}

func (e *EstimateError) Error() string {
	if e.Err == nil {
		return "estimation failed"
	}
	return "estimation failed: " + e.Err.Error()
}

func (e *EstimateError) Unwrap() error {
	return e.Err
}
