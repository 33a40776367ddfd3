package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"example.com/event-planner/backend/internal/models"
	"example.com/event-planner/backend/internal/notifications"
)

const (
	greetingText       = "Hello! I'm EverAfter AI. I can help you architect your event budget, match you with the perfect venue, and manage your vendor contracts. What milestone are we celebrating?"
	estimateFailedText = "I encountered an error while calculating. Please try again."
	adviceFailedText   = "Error connecting to AI Assistant. Please check your internet connection."
	expertEndedText    = "Expert intervention ended. Returning to AI Architect mode."
)

var amountPrinter = message.NewPrinter(language.English)

type EstimateSource interface {
	EstimateBudget(ctx context.Context, totalBudget float64, eventType string) ([]models.BreakdownItem, error)
}

type Advisor interface {
	Advice(ctx context.Context, prompt string) (string, error)
}

type VenueMatcher interface {
	MatchVenues(guests int) []models.Venue
}

type Notifier interface {
	Publish(sessionID uuid.UUID, event notifications.Event)
}

type Dependencies struct {
	Estimates EstimateSource
	Advisor   Advisor
	Venues    VenueMatcher
	Notifier  Notifier
	Logger    *slog.Logger
}

type Options struct {
	EventType             string
	GuestCount            int
	EstimateTimeout       time.Duration
	DiscardStaleEstimates bool
}

// Session состояние одной сессии планирования. Каждая мутация выполняется целиком под
// мьютексом, после нее сводка пересчитывается и подписчики получают уведомление.
type Session struct {
	ID uuid.UUID

	mu         sync.Mutex
	eventType  string
	guestCount int
	breakdown  []models.BreakdownItem
	registry   *Registry
	expenses   *Expenses
	mode       *ModeMachine
	messages   []models.ChatMessage

	estimateSeq uint64
	appliedSeq  uint64

	deps            Dependencies
	estimateTimeout time.Duration
	discardStale    bool
	createdAt       time.Time
}

type Snapshot struct {
	ID         uuid.UUID               `json:"id"`
	EventType  string                  `json:"event_type"`
	GuestCount int                     `json:"guest_count"`
	Mode       models.SessionMode      `json:"mode"`
	Expert     *models.Expert          `json:"expert,omitempty"`
	Pending    *models.VendorProposal  `json:"pending_hire,omitempty"`
	Breakdown  []models.BreakdownItem  `json:"breakdown"`
	Contracts  []models.VendorContract `json:"contracts"`
	Expenses   []models.ManualExpense  `json:"expenses"`
	Ledger     View                    `json:"ledger"`
	Messages   []models.ChatMessage    `json:"messages"`
	CreatedAt  time.Time               `json:"created_at"`
}

// NewSession создает сессию в AI-режиме с приветственным сообщением ассистента.
func NewSession(id uuid.UUID, deps Dependencies, opts Options) *Session {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	return &Session{
		ID:              id,
		eventType:       strings.TrimSpace(opts.EventType),
		guestCount:      opts.GuestCount,
		registry:        NewRegistry(),
		expenses:        NewExpenses(),
		mode:            NewModeMachine(),
		messages:        []models.ChatMessage{{Role: models.RoleModel, Text: greetingText}},
		deps:            deps,
		estimateTimeout: opts.EstimateTimeout,
		discardStale:    opts.DiscardStaleEstimates,
		createdAt:       time.Now().UTC(),
	}
}

// RequestEstimate запрашивает разбивку бюджета. Во время внешнего вызова сессия не
// заблокирована; применяется ответ, завершившийся последним.
func (s *Session) RequestEstimate(ctx context.Context, totalBudget float64, eventType string) ([]models.BreakdownItem, error) {
	eventType = strings.TrimSpace(eventType)
	if totalBudget <= 0 || math.IsNaN(totalBudget) || math.IsInf(totalBudget, 0) || eventType == "" {
		return nil, ErrInvalidEstimateInput
	}

	s.mu.Lock()
	s.estimateSeq++
	seq := s.estimateSeq
	s.appendMessage(models.RoleUser, fmt.Sprintf("Architect a $%s budget for a %s with %d guests.", formatAmount(totalBudget), eventType, s.guestCount))
	guests := s.guestCount
	s.mu.Unlock()

	callCtx := ctx
	if s.estimateTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.estimateTimeout)
		defer cancel()
	}

	items, err := s.callEstimate(callCtx, totalBudget, eventType)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.appendMessage(models.RoleModel, estimateFailedText)
		s.deps.Logger.Warn("budget estimate failed", slog.String("session_id", s.ID.String()), slog.String("error", err.Error()))
		s.publish(notifications.EventEstimateFailed, map[string]interface{}{"retryable": true})
		return nil, &EstimateError{Err: err}
	}

	if s.discardStale && seq < s.appliedSeq {
		s.deps.Logger.Info("stale budget estimate discarded", slog.String("session_id", s.ID.String()), slog.Uint64("seq", seq), slog.Uint64("applied_seq", s.appliedSeq))
		return nil, ErrStaleEstimate
	}

	s.breakdown = cloneBreakdown(items)
	s.appliedSeq = seq
	s.eventType = eventType

	matched := 0
	if s.deps.Venues != nil {
		matched = len(s.deps.Venues.MatchVenues(guests))
	}
	s.appendMessage(models.RoleModel, fmt.Sprintf("I've architected a baseline budget for your %s. I've also matched %d venues and several elite service partners. If you require specialized human coordination, you can now connect with one of our expert planners.", eventType, matched))

	s.deps.Logger.Info("budget estimate applied", slog.String("session_id", s.ID.String()), slog.Int("categories", len(items)))
	s.publishLedger()
	return cloneBreakdown(items), nil
}

func (s *Session) callEstimate(ctx context.Context, totalBudget float64, eventType string) ([]models.BreakdownItem, error) {
	if s.deps.Estimates == nil {
		return nil, fmt.Errorf("estimate source is not configured")
	}

	items, err := s.deps.Estimates.EstimateBudget(ctx, totalBudget, eventType)
	if err != nil {
		return nil, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return items, nil
}

// SendMessage передает вопрос ассистенту. Сбой сервиса превращается в текст ответа.
func (s *Session) SendMessage(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}

	s.mu.Lock()
	s.appendMessage(models.RoleUser, text)
	s.mu.Unlock()

	callCtx := ctx
	if s.estimateTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.estimateTimeout)
		defer cancel()
	}

	reply := adviceFailedText
	if s.deps.Advisor != nil {
		answer, err := s.deps.Advisor.Advice(callCtx, text)
		if err != nil {
			s.deps.Logger.Warn("ai advice failed", slog.String("session_id", s.ID.String()), slog.String("error", err.Error()))
		} else {
			reply = answer
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendMessage(models.RoleModel, reply)
	return reply, nil
}

// ProposeHire ставит подрядчика в ожидание подтверждения найма.
func (s *Session) ProposeHire(proposal models.VendorProposal) (models.VendorProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.registry.Propose(proposal)
	if err != nil {
		return models.VendorProposal{}, err
	}

	s.publish(notifications.EventHirePending, pending)
	return pending, nil
}

// ConfirmHire подписывает контракт с ожидающим подрядчиком в текущем режиме сессии.
func (s *Session) ConfirmHire() (models.VendorContract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expert, _ := s.mode.Expert()
	contract, err := s.registry.Confirm(s.mode.Mode(), expert.Name)
	if err != nil {
		return models.VendorContract{}, err
	}

	text := fmt.Sprintf("I have integrated %s into your event architect. Your ledger has been updated.", contract.Name)
	if contract.SignedUnderExpertMode {
		text = fmt.Sprintf("[Verified by %s] %s", contract.VerifiedBy, text)
	}
	s.appendMessage(models.RoleModel, text)

	s.deps.Logger.Info("vendor contract signed",
		slog.String("session_id", s.ID.String()),
		slog.String("vendor_id", contract.ID),
		slog.Bool("expert_mode", contract.SignedUnderExpertMode),
	)
	s.publish(notifications.EventHirePending, nil)
	s.publishLedger()
	return contract, nil
}

func (s *Session) CancelHire() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registry.Pending(); !ok {
		return
	}
	s.registry.Cancel()
	s.publish(notifications.EventHirePending, nil)
}

func (s *Session) RemoveContract(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.registry.Remove(id)
	if removed {
		s.publishLedger()
	}
	return removed
}

func (s *Session) AddExpense(category, rawAmount string) (models.ManualExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense, err := s.expenses.Add(category, rawAmount)
	if err != nil {
		return models.ManualExpense{}, err
	}

	s.publishLedger()
	return expense, nil
}

func (s *Session) RemoveExpense(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.expenses.Remove(id)
	if removed {
		s.publishLedger()
	}
	return removed
}

// StartExpertSession подключает эксперта к сессии.
func (s *Session) StartExpertSession(expert *models.Expert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mode.Start(expert); err != nil {
		return err
	}

	s.appendMessage(models.RoleModel, fmt.Sprintf("Expert Concierge joined: Hello, I'm %s. I've reviewed your current budget and vendor selections. I'm now monitoring this session to provide professional intervention and vendor negotiation support.", expert.Name))
	s.deps.Logger.Info("expert session started", slog.String("session_id", s.ID.String()), slog.String("expert_id", expert.ID))
	s.publish(notifications.EventModeChanged, map[string]interface{}{"mode": s.mode.Mode(), "expert_id": expert.ID})
	return nil
}

// EndExpertSession возвращает сессию в AI-режим; без активного эксперта ничего не делает.
func (s *Session) EndExpertSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mode.End() {
		return
	}

	s.appendMessage(models.RoleModel, expertEndedText)
	s.deps.Logger.Info("expert session ended", slog.String("session_id", s.ID.String()))
	s.publish(notifications.EventModeChanged, map[string]interface{}{"mode": s.mode.Mode()})
}

func (s *Session) EventType() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.eventType
}

func (s *Session) GuestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.guestCount
}

func (s *Session) Mode() models.SessionMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode.Mode()
}

// Ledger пересчитывает сводку по текущему состоянию.
func (s *Session) Ledger() (Ledger, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.computeLedger()
}

func (s *Session) Contracts() []models.VendorContract {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registry.Contracts()
}

func (s *Session) Expenses() []models.ManualExpense {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.expenses.List()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Snapshot{
		ID:         s.ID,
		EventType:  s.eventType,
		GuestCount: s.guestCount,
		Mode:       s.mode.Mode(),
		Breakdown:  cloneBreakdown(s.breakdown),
		Contracts:  s.registry.Contracts(),
		Expenses:   s.expenses.List(),
		Messages:   append([]models.ChatMessage(nil), s.messages...),
		CreatedAt:  s.createdAt,
	}
	if expert, ok := s.mode.Expert(); ok {
		snapshot.Expert = &expert
	}
	if pending, ok := s.registry.Pending(); ok {
		snapshot.Pending = &pending
	}

	ledger, ok := s.computeLedger()
	snapshot.Ledger = ledger.View(ok)
	return snapshot
}

func (s *Session) computeLedger() (Ledger, bool) {
	return Compute(s.breakdown, s.registry.Contracts(), s.expenses.List())
}

func (s *Session) appendMessage(role models.ChatRole, text string) {
	msg := models.ChatMessage{Role: role, Text: text}
	s.messages = append(s.messages, msg)
	s.publish(notifications.EventChatMessage, msg)
}

func (s *Session) publishLedger() {
	ledger, ok := s.computeLedger()
	s.publish(notifications.EventLedgerUpdated, ledger.View(ok))
}

func (s *Session) publish(eventType string, data interface{}) {
	if s.deps.Notifier == nil {
		return
	}
	s.deps.Notifier.Publish(s.ID, notifications.Event{Type: eventType, Data: data})
}

// formatAmount печатает сумму с разделителями разрядов, как в интерфейсе планировщика.
func formatAmount(amount float64) string {
	if amount == math.Trunc(amount) && math.Abs(amount) < 1e15 {
		return amountPrinter.Sprintf("%d", int64(amount))
	}
	return amountPrinter.Sprintf("%.2f", amount)
}

func cloneBreakdown(items []models.BreakdownItem) []models.BreakdownItem {
	if items == nil {
		return nil
	}
	out := make([]models.BreakdownItem, len(items))
	copy(out, items)
	return out
}
