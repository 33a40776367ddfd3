package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/catalog"
	"example.com/event-planner/backend/internal/models"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog

	now func() time.Time
}

// NewCatalogHandler создает обработчик справочных данных.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, now: time.Now}
}

type VenueListResponse struct {
	Venues []models.Venue `json:"venues"`
}

type AvailabilityResponse struct {
	VenueID   int    `json:"venue_id"`
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// Venues возвращает площадки; с параметром guests только подходящие по вместимости.
func (h *CatalogHandler) Venues(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("guests"))
	if raw == "" {
		return c.JSON(http.StatusOK, VenueListResponse{Venues: h.Catalog.Venues()})
	}

	guests, err := strconv.Atoi(raw)
	if err != nil || guests < 0 {
		return badRequest(c, "guests must be a non-negative integer")
	}

	return c.JSON(http.StatusOK, VenueListResponse{Venues: h.Catalog.MatchVenues(guests)})
}

// Availability сообщает, свободна ли площадка в указанную дату.
func (h *CatalogHandler) Availability(c echo.Context) error {
	venueID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid venue id")
	}

	date, err := time.Parse(catalog.DateLayout, strings.TrimSpace(c.QueryParam("date")))
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	_, err = h.Catalog.CheckAvailability(venueID, date, h.now())
	if errors.Is(err, catalog.ErrNotFound) {
		return notFound(c, "venue not found")
	}
	if err != nil && !errors.Is(err, catalog.ErrDateUnavailable) {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, AvailabilityResponse{
		VenueID:   venueID,
		Date:      date.Format(catalog.DateLayout),
		Available: err == nil,
	})
}

func (h *CatalogHandler) Vendors(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]models.Vendor{"vendors": h.Catalog.Vendors()})
}

func (h *CatalogHandler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Options())
}

func (h *CatalogHandler) Experts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]models.Expert{"experts": h.Catalog.Experts()})
}

func (h *CatalogHandler) Travel(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Travel())
}
