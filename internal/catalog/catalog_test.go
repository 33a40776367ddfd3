package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/event-planner/backend/internal/models"
)

var referenceNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

// TestMatchVenues проверяет подбор площадок по вместимости.
func TestMatchVenues(t *testing.T) {
	c := New(referenceNow)

	matched := c.MatchVenues(150)
	require.Len(t, matched, 3)
	assert.Equal(t, []int{2, 1, 3}, []int{matched[0].ID, matched[1].ID, matched[2].ID})

	matched = c.MatchVenues(300)
	require.Len(t, matched, 1)
	assert.Equal(t, "The Grand Atrium", matched[0].Name)

	assert.Empty(t, c.MatchVenues(1000))
}

// TestUnavailableDatesRelativeToNow проверяет расчет занятых дат.
func TestUnavailableDatesRelativeToNow(t *testing.T) {
	c := New(referenceNow)

	golden, err := c.Venue(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-11-15", "2026-11-20"}, golden.UnavailableDates)

	azure, err := c.Venue(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-25"}, azure.UnavailableDates)

	december := New(time.Date(2026, time.December, 3, 0, 0, 0, 0, time.UTC))
	golden, err = december.Venue(1)
	require.NoError(t, err)
	assert.Equal(t, "2027-01-15", golden.UnavailableDates[0])
}

// TestCheckAvailability проверяет доступность дат площадки.
func TestCheckAvailability(t *testing.T) {
	c := New(referenceNow)
	date := func(value string) time.Time {
		parsed, err := time.Parse(DateLayout, value)
		require.NoError(t, err)
		return parsed
	}

	_, err := c.CheckAvailability(1, date("2026-11-16"), referenceNow)
	assert.NoError(t, err)

	_, err = c.CheckAvailability(1, date("2026-11-15"), referenceNow)
	assert.ErrorIs(t, err, ErrDateUnavailable)

	_, err = c.CheckAvailability(3, date("2026-10-14"), referenceNow)
	assert.ErrorIs(t, err, ErrDateUnavailable, "today is not bookable")

	_, err = c.CheckAvailability(3, date("2026-01-01"), referenceNow)
	assert.ErrorIs(t, err, ErrDateUnavailable)

	_, err = c.CheckAvailability(99, date("2026-12-01"), referenceNow)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestLookups проверяет поиск по идентификаторам.
func TestLookups(t *testing.T) {
	c := New(referenceNow)

	vendor, err := c.Vendor("v3")
	require.NoError(t, err)
	assert.Equal(t, "Bloom & Petal", vendor.Name)

	_, err = c.Vendor("v42")
	assert.ErrorIs(t, err, ErrNotFound)

	expert, err := c.Expert("exp2")
	require.NoError(t, err)
	assert.Equal(t, "Marcus Thorne", expert.Name)

	assert.Len(t, c.Vendors(), 6)
	assert.Len(t, c.Experts(), 3)
	assert.Len(t, c.Options().Catering, 2)
	assert.Len(t, c.Travel().Hotels, 1)
}

// TestCatalogReturnsCopies проверяет, что изменения копий не влияют на справочник.
func TestCatalogReturnsCopies(t *testing.T) {
	c := New(referenceNow)

	venues := c.Venues()
	venues[0].Name = "Changed"
	venues[0].Amenities[0] = "Changed"

	venue, err := c.Venue(1)
	require.NoError(t, err)
	assert.Equal(t, "Golden Oak Estate", venue.Name)
	assert.Equal(t, "Valet Parking", venue.Amenities[0])
}

// TestProposals проверяет преобразование записей справочника в предложения найма.
func TestProposals(t *testing.T) {
	c := New(referenceNow)

	vendor, _ := c.Vendor("v1")
	proposal := VendorProposal(vendor)
	assert.Equal(t, models.VendorProposal{ID: "v1", Name: "Elite Catering Co.", Category: "Catering", Price: 4500}, proposal)

	venue, _ := c.Venue(3)
	proposal = VenueProposal(venue)
	assert.Equal(t, "3", proposal.ID)
	assert.Empty(t, proposal.Category)
	assert.Equal(t, 20000.0, proposal.Price)
}

// TestOptionCost проверяет расчет стоимости опций.
func TestOptionCost(t *testing.T) {
	c := New(referenceNow)
	options := c.Options()

	assert.Equal(t, 85.0*120, OptionCost(options.Catering[0], 120))
	assert.Equal(t, 1200.0, OptionCost(options.Entertainment[0], 120))
}

// TestOptionProposal проверяет поиск опции и цену предложения на гостей.
func TestOptionProposal(t *testing.T) {
	c := New(referenceNow)

	option, category, err := c.Option("c1")
	require.NoError(t, err)
	assert.Equal(t, "Catering", category)

	proposal := OptionProposal(option, category, 120)
	assert.Equal(t, "c1", proposal.ID)
	assert.Equal(t, "Gourmet Garden Buffet", proposal.Name)
	assert.Equal(t, 85.0*120, proposal.Price)
	assert.False(t, proposal.Custom)

	_, category, err = c.Option("a1")
	require.NoError(t, err)
	assert.Equal(t, "Add-ons", category)

	_, _, err = c.Option("zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}
