package models

import "time"

type EntrySource string

type SessionMode string

type PriceType string

type ChatRole string

const (
	SourceAIEstimate     EntrySource = "AI Estimate"
	SourceVendorContract EntrySource = "Partner Contract"
	SourceManualExpense  EntrySource = "Manual Expense"

	ModeAIOnly             SessionMode = "ai_only"
	ModeExpertIntervention SessionMode = "expert_intervention"

	PriceTypeFixed     PriceType = "fixed"
	PriceTypePerPerson PriceType = "per_person"

	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// DefaultVendorCategory подставляется для предложений без категории (площадки).
const DefaultVendorCategory = "Venue"

// CostEntry одна строка сводного бюджета.
type CostEntry struct {
	Category string      `json:"category"`
	Amount   float64     `json:"amount"`
	Source   EntrySource `json:"type"`
}

type BreakdownItem struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type VendorProposal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Custom   bool    `json:"is_custom"`
}

type VendorContract struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Category              string    `json:"category"`
	Price                 float64   `json:"price"`
	SignedUnderExpertMode bool      `json:"signed_under_expert_mode"`
	VerifiedBy            string    `json:"verified_by,omitempty"`
	Custom                bool      `json:"is_custom"`
	SignedAt              time.Time `json:"signed_at"`
}

type ManualExpense struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

type Expert struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Experience string  `json:"experience"`
	Rating     float64 `json:"rating"`
	Bio        string  `json:"bio"`
}

type Venue struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Location         string   `json:"location"`
	Capacity         int      `json:"capacity"`
	Price            float64  `json:"price"`
	Description      string   `json:"description"`
	UnavailableDates []string `json:"unavailable_dates"`
	Amenities        []string `json:"amenities"`
	ContactEmail     string   `json:"contact_email"`
	Phone            string   `json:"phone"`
	WebsiteURL       string   `json:"website_url"`
}

type Vendor struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Description   string  `json:"description"`
	EstimatedTime string  `json:"estimated_time"`
}

type EventOption struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	PriceType   PriceType `json:"price_type"`
}

type Hotel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"price_range"`
	Link        string `json:"link"`
	Distance    string `json:"distance"`
}

type TravelTip struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}
