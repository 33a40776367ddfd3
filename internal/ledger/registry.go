package ledger

import (
	"math"
	"strings"
	"time"

	"example.com/event-planner/backend/internal/models"
)

// Registry хранит подписанные контракты с подрядчиками и единственный слот ожидающего найма.
type Registry struct {
	contracts []models.VendorContract
	ids       map[string]struct{}
	pending   *models.VendorProposal
	now       func() time.Time
}

// NewRegistry создает пустой реестр контрактов.
func NewRegistry() *Registry {
	return &Registry{
		ids: make(map[string]struct{}),
		now: time.Now,
	}
}

// Propose ставит подрядчика в ожидание подтверждения, заменяя прежнее предложение.
func (r *Registry) Propose(proposal models.VendorProposal) (models.VendorProposal, error) {
	proposal.ID = strings.TrimSpace(proposal.ID)
	proposal.Name = strings.TrimSpace(proposal.Name)
	proposal.Category = strings.TrimSpace(proposal.Category)

	if proposal.ID == "" || proposal.Name == "" {
		return models.VendorProposal{}, ErrInvalidVendor
	}
	if proposal.Price < 0 || math.IsNaN(proposal.Price) || math.IsInf(proposal.Price, 0) {
		return models.VendorProposal{}, ErrInvalidVendor
	}
	if r.Has(proposal.ID) {
		return models.VendorProposal{}, ErrAlreadyHired
	}

	r.pending = &proposal
	return proposal, nil
}

// Confirm превращает ожидающее предложение в контракт и очищает слот.
func (r *Registry) Confirm(mode models.SessionMode, verifiedBy string) (models.VendorContract, error) {
	if r.pending == nil {
		return models.VendorContract{}, ErrNothingPending
	}

	proposal := *r.pending
	r.pending = nil

	if r.Has(proposal.ID) {
		return models.VendorContract{}, ErrAlreadyHired
	}

	category := proposal.Category
	if category == "" {
		category = models.DefaultVendorCategory
	}

	contract := models.VendorContract{
		ID:                    proposal.ID,
		Name:                  proposal.Name,
		Category:              category,
		Price:                 proposal.Price,
		SignedUnderExpertMode: mode == models.ModeExpertIntervention,
		Custom:                proposal.Custom,
		SignedAt:              r.now().UTC(),
	}
	if contract.SignedUnderExpertMode {
		contract.VerifiedBy = verifiedBy
	}

	r.contracts = append(r.contracts, contract)
	r.ids[contract.ID] = struct{}{}
	return contract, nil
}

// Cancel сбрасывает ожидающее предложение.
func (r *Registry) Cancel() {
	r.pending = nil
}

// Remove удаляет контракт; отсутствующий id не считается ошибкой.
func (r *Registry) Remove(id string) bool {
	if !r.Has(id) {
		return false
	}

	kept := r.contracts[:0]
	for _, contract := range r.contracts {
		if contract.ID != id {
			kept = append(kept, contract)
		}
	}
	r.contracts = kept
	delete(r.ids, id)
	return true
}

func (r *Registry) Has(id string) bool {
	_, ok := r.ids[id]
	return ok
}

// Pending возвращает копию ожидающего предложения.
func (r *Registry) Pending() (models.VendorProposal, bool) {
	if r.pending == nil {
		return models.VendorProposal{}, false
	}
	return *r.pending, true
}

// Contracts возвращает контракты в порядке подписания.
func (r *Registry) Contracts() []models.VendorContract {
	out := make([]models.VendorContract, len(r.contracts))
	copy(out, r.contracts)
	return out
}
