package ledger

import "example.com/event-planner/backend/internal/models"

// ModeMachine переключает сессию между AI-режимом и режимом эксперта.
type ModeMachine struct {
	mode   models.SessionMode
	expert *models.Expert
}

func NewModeMachine() *ModeMachine {
	return &ModeMachine{mode: models.ModeAIOnly}
}

// Start подключает эксперта. Повторный вызов в режиме эксперта меняет активного эксперта.
func (m *ModeMachine) Start(expert *models.Expert) error {
	if expert == nil || expert.ID == "" {
		return ErrExpertRequired
	}

	copied := *expert
	m.expert = &copied
	m.mode = models.ModeExpertIntervention
	return nil
}

// End возвращает сессию в AI-режим. Возвращает true, если режим действительно сменился.
func (m *ModeMachine) End() bool {
	changed := m.mode == models.ModeExpertIntervention
	m.mode = models.ModeAIOnly
	m.expert = nil
	return changed
}

func (m *ModeMachine) Mode() models.SessionMode {
	return m.mode
}

func (m *ModeMachine) Expert() (models.Expert, bool) {
	if m.expert == nil {
		return models.Expert{}, false
	}
	return *m.expert, true
}
