// Package catalog отдает справочные данные планировщика: площадки, подрядчиков, опции и экспертов.
package catalog

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"example.com/event-planner/backend/internal/models"
)

const DateLayout = "2006-01-02"

var (
	ErrNotFound        = errors.New("not found")
	ErrDateUnavailable = errors.New("date unavailable")
)

type Options struct {
	Catering      []models.EventOption `json:"catering"`
	Entertainment []models.EventOption `json:"entertainment"`
	Addons        []models.EventOption `json:"addons"`
}

type Travel struct {
	Hotels []models.Hotel     `json:"hotels"`
	Tips   []models.TravelTip `json:"tips"`
}

// Catalog неизменяемый набор справочных данных. Наружу отдаются только копии.
type Catalog struct {
	venues  []models.Venue
	vendors []models.Vendor
	options Options
	experts []models.Expert
	travel  Travel
}

// New собирает справочник; занятые даты площадок считаются относительно now.
func New(now time.Time) *Catalog {
	return &Catalog{
		venues:  seedVenues(now.UTC()),
		vendors: seedVendors(),
		options: seedOptions(),
		experts: seedExperts(),
		travel:  seedTravel(),
	}
}

func (c *Catalog) Venues() []models.Venue {
	out := make([]models.Venue, 0, len(c.venues))
	for _, venue := range c.venues {
		out = append(out, copyVenue(venue))
	}
	return out
}

func (c *Catalog) Venue(id int) (models.Venue, error) {
	for _, venue := range c.venues {
		if venue.ID == id {
			return copyVenue(venue), nil
		}
	}
	return models.Venue{}, ErrNotFound
}

// MatchVenues возвращает площадки, вмещающие гостей, от меньшей вместимости к большей.
func (c *Catalog) MatchVenues(guests int) []models.Venue {
	matched := make([]models.Venue, 0, len(c.venues))
	for _, venue := range c.venues {
		if venue.Capacity >= guests {
			matched = append(matched, copyVenue(venue))
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Capacity < matched[j].Capacity
	})
	return matched
}

// CheckAvailability проверяет дату по списку занятых дат. Сегодня и прошедшие дни заняты.
func (c *Catalog) CheckAvailability(venueID int, date, now time.Time) (models.Venue, error) {
	venue, err := c.Venue(venueID)
	if err != nil {
		return models.Venue{}, err
	}

	day := date.UTC().Format(DateLayout)
	today := now.UTC().Format(DateLayout)
	if day <= today {
		return venue, ErrDateUnavailable
	}

	for _, unavailable := range venue.UnavailableDates {
		if unavailable == day {
			return venue, ErrDateUnavailable
		}
	}
	return venue, nil
}

func (c *Catalog) Vendors() []models.Vendor {
	out := make([]models.Vendor, len(c.vendors))
	copy(out, c.vendors)
	return out
}

func (c *Catalog) Vendor(id string) (models.Vendor, error) {
	for _, vendor := range c.vendors {
		if vendor.ID == id {
			return vendor, nil
		}
	}
	return models.Vendor{}, ErrNotFound
}

func (c *Catalog) Experts() []models.Expert {
	out := make([]models.Expert, len(c.experts))
	copy(out, c.experts)
	return out
}

func (c *Catalog) Expert(id string) (models.Expert, error) {
	for _, expert := range c.experts {
		if expert.ID == id {
			return expert, nil
		}
	}
	return models.Expert{}, ErrNotFound
}

func (c *Catalog) Options() Options {
	return Options{
		Catering:      append([]models.EventOption(nil), c.options.Catering...),
		Entertainment: append([]models.EventOption(nil), c.options.Entertainment...),
		Addons:        append([]models.EventOption(nil), c.options.Addons...),
	}
}

// Option ищет опцию по id во всех группах и возвращает ее вместе с названием группы.
func (c *Catalog) Option(id string) (models.EventOption, string, error) {
	groups := []struct {
		category string
		options  []models.EventOption
	}{
		{"Catering", c.options.Catering},
		{"Entertainment", c.options.Entertainment},
		{"Add-ons", c.options.Addons},
	}

	for _, group := range groups {
		for _, option := range group.options {
			if option.ID == id {
				return option, group.category, nil
			}
		}
	}
	return models.EventOption{}, "", ErrNotFound
}

func (c *Catalog) Travel() Travel {
	return Travel{
		Hotels: append([]models.Hotel(nil), c.travel.Hotels...),
		Tips:   append([]models.TravelTip(nil), c.travel.Tips...),
	}
}

// VendorProposal готовит предложение найма для подрядчика из справочника.
func VendorProposal(vendor models.Vendor) models.VendorProposal {
	return models.VendorProposal{
		ID:       vendor.ID,
		Name:     vendor.Name,
		Category: vendor.Category,
		Price:    vendor.Price,
	}
}

// VenueProposal готовит предложение найма площадки; категорию подставит реестр.
func VenueProposal(venue models.Venue) models.VendorProposal {
	return models.VendorProposal{
		ID:    strconv.Itoa(venue.ID),
		Name:  venue.Name,
		Price: venue.Price,
	}
}

// OptionProposal готовит предложение найма для опции с ценой на заданное число гостей.
func OptionProposal(option models.EventOption, category string, guests int) models.VendorProposal {
	return models.VendorProposal{
		ID:       option.ID,
		Name:     option.Name,
		Category: category,
		Price:    OptionCost(option, guests),
	}
}

// OptionCost считает стоимость опции с учетом типа цены.
func OptionCost(option models.EventOption, guests int) float64 {
	if option.PriceType == models.PriceTypePerPerson {
		return option.Price * float64(guests)
	}
	return option.Price
}

func copyVenue(venue models.Venue) models.Venue {
	venue.UnavailableDates = append([]string{}, venue.UnavailableDates...)
	venue.Amenities = append([]string{}, venue.Amenities...)
	return venue
}
