package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/catalog"
	"example.com/event-planner/backend/internal/ledger"
	"example.com/event-planner/backend/internal/models"
)

type ProposeHireRequest struct {
	VendorID string               `json:"vendor_id" validate:"omitempty,max=100"`
	VenueID  int                  `json:"venue_id" validate:"gte=0"`
	OptionID string               `json:"option_id" validate:"omitempty,max=100"`
	Custom   *CustomVendorRequest `json:"custom" validate:"omitempty"`
}

type CustomVendorRequest struct {
	ID       string  `json:"id" validate:"omitempty,max=100"`
	Name     string  `json:"name" validate:"required,notblank,max=200"`
	Category string  `json:"category" validate:"omitempty,max=100"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type PendingHireResponse struct {
	Pending models.VendorProposal `json:"pending"`
}

type ContractResponse struct {
	Contract models.VendorContract `json:"contract"`
	Ledger   ledger.View           `json:"ledger"`
}

// ProposeHire ставит подрядчика, площадку, опцию или свой вариант в ожидание подтверждения.
func (h *SessionHandler) ProposeHire(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	var req ProposeHireRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	proposal, err := h.resolveProposal(req, session.GuestCount())
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return notFound(c, "vendor not found")
		}
		return badRequest(c, err.Error())
	}

	pending, err := session.ProposeHire(proposal)
	if err != nil {
		return ledgerError(c, err)
	}

	return c.JSON(http.StatusOK, PendingHireResponse{Pending: pending})
}

// ConfirmHire подписывает контракт с ожидающим подрядчиком.
func (h *SessionHandler) ConfirmHire(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	contract, err := session.ConfirmHire()
	if err != nil {
		return ledgerError(c, err)
	}

	current, hasData := session.Ledger()
	return c.JSON(http.StatusCreated, ContractResponse{Contract: contract, Ledger: current.View(hasData)})
}

// CancelHire сбрасывает ожидающее предложение.
func (h *SessionHandler) CancelHire(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	session.CancelHire()
	return c.NoContent(http.StatusNoContent)
}

// RemoveContract удаляет контракт; отсутствие контракта не считается ошибкой.
func (h *SessionHandler) RemoveContract(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	session.RemoveContract(c.Param("vendorId"))
	return c.NoContent(http.StatusNoContent)
}

func (h *SessionHandler) resolveProposal(req ProposeHireRequest, guests int) (models.VendorProposal, error) {
	vendorID := strings.TrimSpace(req.VendorID)
	optionID := strings.TrimSpace(req.OptionID)

	sources := 0
	if vendorID != "" {
		sources++
	}
	if req.VenueID > 0 {
		sources++
	}
	if optionID != "" {
		sources++
	}
	if req.Custom != nil {
		sources++
	}
	if sources != 1 {
		return models.VendorProposal{}, errors.New("exactly one of vendor_id, venue_id, option_id or custom is required")
	}

	switch {
	case vendorID != "":
		vendor, err := h.Catalog.Vendor(vendorID)
		if err != nil {
			return models.VendorProposal{}, err
		}
		return catalog.VendorProposal(vendor), nil
	case req.VenueID > 0:
		venue, err := h.Catalog.Venue(req.VenueID)
		if err != nil {
			return models.VendorProposal{}, err
		}
		return catalog.VenueProposal(venue), nil
	case optionID != "":
		option, category, err := h.Catalog.Option(optionID)
		if err != nil {
			return models.VendorProposal{}, err
		}
		return catalog.OptionProposal(option, category, guests), nil
	default:
		id := strings.TrimSpace(req.Custom.ID)
		if id == "" {
			id = "custom-" + uuid.NewString()
		}
		return models.VendorProposal{
			ID:       id,
			Name:     req.Custom.Name,
			Category: req.Custom.Category,
			Price:    req.Custom.Price,
			Custom:   true,
		}, nil
	}
}
