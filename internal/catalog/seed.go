package catalog

import (
	"time"

	"example.com/event-planner/backend/internal/models"
)

func seedVenues(now time.Time) []models.Venue {
	year, month, _ := now.Date()
	day := func(monthOffset, dayOfMonth int) string {
		return time.Date(year, month+time.Month(monthOffset), dayOfMonth, 0, 0, 0, 0, time.UTC).Format(DateLayout)
	}

	return []models.Venue{
		{
			ID:               1,
			Name:             "Golden Oak Estate",
			Location:         "Napa Valley, CA",
			Capacity:         250,
			Price:            15000,
			Description:      "A stunning historic manor surrounded by lush vineyards and century-old oak trees. Perfect for elegant weddings or dignified memorial services.",
			UnavailableDates: []string{day(1, 15), day(1, 20)},
			Amenities:        []string{"Valet Parking", "Catering Kitchen", "Outdoor Garden", "Bridal/Host Suite", "WiFi"},
			ContactEmail:     "events@goldenoak.com",
			Phone:            "+1 (555) 123-4567",
			WebsiteURL:       "https://example.com/goldenoak",
		},
		{
			ID:               2,
			Name:             "Azure Coast Resort",
			Location:         "Malibu, CA",
			Capacity:         150,
			Price:            12000,
			Description:      "Breathtaking oceanfront views with a modern, glass-walled reception hall. Ideal for graduations and naming ceremonies.",
			UnavailableDates: []string{day(0, 25)},
			Amenities:        []string{"Oceanfront View", "Sound System", "Handicap Accessible", "Private Beach Access"},
			ContactEmail:     "booking@azurecoast.resort",
			Phone:            "+1 (555) 987-6543",
			WebsiteURL:       "https://example.com/azurecoast",
		},
		{
			ID:               3,
			Name:             "The Grand Atrium",
			Location:         "Chicago, IL",
			Capacity:         500,
			Price:            20000,
			Description:      "An architectural masterpiece in the heart of the city, featuring high ceilings and marble floors.",
			UnavailableDates: []string{},
			Amenities:        []string{"Ballroom", "Central AC", "Professional Stage", "Built-in Bar"},
			ContactEmail:     "info@grandatrium.com",
			Phone:            "+1 (555) 555-0199",
			WebsiteURL:       "https://example.com/grandatrium",
		},
	}
}

func seedVendors() []models.Vendor {
	return []models.Vendor{
		{ID: "v1", Name: "Elite Catering Co.", Category: "Catering", Price: 4500, Rating: 4.9, Reviews: 128, EstimatedTime: "6-8 Hours Service", Description: "Award-winning farm-to-table menus for grand galas and intimate gatherings."},
		{ID: "v2", Name: "SnapMagic Photos", Category: "Photography", Price: 2800, Rating: 4.8, Reviews: 94, EstimatedTime: "10 Hours Coverage", Description: "Capturing timeless moments with a blend of journalistic and fine-art styles."},
		{ID: "v3", Name: "Bloom & Petal", Category: "Florist", Price: 1500, Rating: 4.7, Reviews: 56, EstimatedTime: "4 Hours Setup", Description: "Bespoke floral arrangements that transform spaces into botanical wonderlands."},
		{ID: "v4", Name: "BeatDrop Entertainment", Category: "Music/DJ", Price: 1200, Rating: 5.0, Reviews: 210, EstimatedTime: "5 Hours Live Play", Description: "High-energy performers and curators for the ultimate event atmosphere."},
		{ID: "v5", Name: "Velvet Decor", Category: "Decor", Price: 3200, Rating: 4.6, Reviews: 42, EstimatedTime: "Full Day Installation", Description: "Luxury rentals and spatial design for sophisticated milestones."},
		{ID: "v6", Name: "Crystal Patisserie", Category: "Catering", Price: 950, Rating: 4.9, Reviews: 88, EstimatedTime: "Delivery & Setup", Description: "Exquisite cakes and dessert tables crafted by master pastry chefs."},
	}
}

func seedOptions() Options {
	return Options{
		Catering: []models.EventOption{
			{ID: "c1", Name: "Gourmet Garden Buffet", Price: 85, PriceType: models.PriceTypePerPerson, Description: "A relaxed but elegant selection of seasonal farm-to-table dishes."},
			{ID: "c2", Name: "Royal Signature Dining", Price: 150, PriceType: models.PriceTypePerPerson, Description: "Multi-course plated dinner with premium wine pairings and dedicated servers."},
		},
		Entertainment: []models.EventOption{
			{ID: "e1", Name: "Acoustic String Quartet", Price: 1200, PriceType: models.PriceTypeFixed, Description: "Perfect for romantic ceremonies or somber memorial services."},
			{ID: "e2", Name: "Elite Party DJ & Lights", Price: 2500, PriceType: models.PriceTypeFixed, Description: "Full sound system, professional lighting, and an MC to keep the dance floor packed."},
		},
		Addons: []models.EventOption{
			{ID: "a1", Name: "Full Day Photography", Price: 3200, PriceType: models.PriceTypeFixed, Description: "10 hours of coverage with 2 photographers and a digital gallery."},
		},
	}
}

func seedExperts() []models.Expert {
	return []models.Expert{
		{ID: "exp1", Name: "Elena Vance", Specialty: "Luxury Weddings", Experience: "12 Years", Rating: 5.0, Bio: "Expert in high-end coordination and international destination logistics."},
		{ID: "exp2", Name: "Marcus Thorne", Specialty: "Memorials & Galas", Experience: "15 Years", Rating: 4.9, Bio: "Specialist in dignified burial services and corporate naming ceremonies."},
		{ID: "exp3", Name: "Sarah Jenkins", Specialty: "Design & Decor", Experience: "8 Years", Rating: 4.8, Bio: "Award-winning visual designer focused on aesthetic cohesion."},
	}
}

func seedTravel() Travel {
	return Travel{
		Hotels: []models.Hotel{
			{ID: "h1", Name: "The Grand Napa Resort", PriceRange: "$$$", Distance: "2 miles from venue", Link: "#", Description: "Our primary block of rooms. Mention 'EverAfter' for a discount."},
		},
		Tips: []models.TravelTip{
			{ID: "t1", Title: "Complimentary Shuttle", Type: "transport", Content: "We provide shuttle services for all major event types hosted through our platform."},
		},
	}
}
