package domain

import "time"

type EventType string

const (
	EventConcert    EventType = "concert"
	EventConference EventType = "conference"
	EventSports     EventType = "sports"
	EventFestival   EventType = "festival"
	EventBusiness   EventType = "business"
	EventCultural   EventType = "cultural"
	EventOther      EventType = "other"
)

type SocialBuzz string

const (
	BuzzLow    SocialBuzz = "low"
	BuzzMedium SocialBuzz = "medium"
	BuzzHigh   SocialBuzz = "high"
	BuzzViral  SocialBuzz = "viral"
)

// DemandLevel is shared by an event's demand forecast and the aggregate
// market demand.
type DemandLevel string

const (
	DemandLow     DemandLevel = "low"
	DemandMedium  DemandLevel = "medium"
	DemandHigh    DemandLevel = "high"
	DemandExtreme DemandLevel = "extreme"
)

type SupplyLevel string

const (
	SupplyAbundant SupplyLevel = "abundant"
	SupplyModerate SupplyLevel = "moderate"
	SupplyLimited  SupplyLevel = "limited"
	SupplyScarce   SupplyLevel = "scarce"
)

type PriceTrend string

const (
	TrendIncreasing PriceTrend = "increasing"
	TrendDecreasing PriceTrend = "decreasing"
	TrendStable     PriceTrend = "stable"
	// TrendVolatile only appears in market aggregates.
	TrendVolatile PriceTrend = "volatile"
)

type CompetitiveLevel string

const (
	CompetitiveDirect   CompetitiveLevel = "direct"
	CompetitiveIndirect CompetitiveLevel = "indirect"
	CompetitiveDistant  CompetitiveLevel = "distant"
)

type PricingStrategy string

const (
	StrategyPremium     PricingStrategy = "premium"
	StrategyCompetitive PricingStrategy = "competitive"
	StrategyBudget      PricingStrategy = "budget"
	StrategyDynamic     PricingStrategy = "dynamic"
)

type ThreatLevel string

const (
	ThreatLow    ThreatLevel = "low"
	ThreatMedium ThreatLevel = "medium"
	ThreatHigh   ThreatLevel = "high"
)

type MarketPosition string

const (
	PositionLeader      MarketPosition = "leader"
	PositionPremium     MarketPosition = "premium"
	PositionCompetitive MarketPosition = "competitive"
	PositionBudget      MarketPosition = "budget"
)

type OutcomeDirection string

const (
	OutcomeIncrease OutcomeDirection = "increase"
	OutcomeDecrease OutcomeDirection = "decrease"
	OutcomeNeutral  OutcomeDirection = "neutral"
)

type CompetitivenessChange string

const (
	CompetitivenessImprove CompetitivenessChange = "improve"
	CompetitivenessWorsen  CompetitivenessChange = "worsen"
	CompetitivenessNeutral CompetitivenessChange = "neutral"
)

type PriceScenario string

const (
	ScenarioConservative PriceScenario = "conservative"
	ScenarioAggressive   PriceScenario = "aggressive"
	ScenarioCompetitive  PriceScenario = "competitive"
)

type TicketPriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type EventIntelligence struct {
	EventID               uint64           `json:"event_id"`
	Name                  string           `json:"name"`
	Date                  time.Time        `json:"date"`
	Venue                 string           `json:"venue"`
	EventType             EventType        `json:"event_type"`
	ExpectedAttendance    int              `json:"expected_attendance"`
	TargetAudience        []string         `json:"target_audience"`
	VenueCapacity         int              `json:"venue_capacity"`
	TicketPriceRange      TicketPriceRange `json:"ticket_price_range"`
	SocialBuzz            SocialBuzz       `json:"social_buzz"`
	DemandForecast        DemandLevel      `json:"demand_forecast"`
	PriceImpactMultiplier float64          `json:"price_impact_multiplier"`
	Confidence            float64          `json:"confidence"`
	HistoricalData        []EventHistory   `json:"historical_data,omitempty"`
}

type CompetitorIntelligence struct {
	HotelID          uint64           `json:"hotel_id"`
	Name             string           `json:"name"`
	City             string           `json:"city"`
	StarRating       float64          `json:"star_rating"`
	DistanceKm       float64          `json:"distance_km"`
	CurrentPrice     float64          `json:"current_price"`
	HasPriceData     bool             `json:"has_price_data"`
	PriceTrend       PriceTrend       `json:"price_trend"`
	OccupancyRate    float64          `json:"occupancy_rate"`
	CompetitiveLevel CompetitiveLevel `json:"competitive_level"`
	PricingStrategy  PricingStrategy  `json:"pricing_strategy"`
	ThreatLevel      ThreatLevel      `json:"threat_level"`
	SimilarityScore  float64          `json:"similarity_score"`
	IsMainCompetitor bool             `json:"is_main_competitor"`
	MarketPosition   MarketPosition   `json:"market_position"`
}

type MarketIntelligence struct {
	MarketDemand            DemandLevel `json:"market_demand"`
	SupplyAvailability      SupplyLevel `json:"supply_availability"`
	PriceTrends             PriceTrend  `json:"price_trends"`
	MarketOpportunity       float64     `json:"market_opportunity"`
	TotalExpectedAttendance int         `json:"total_expected_attendance"`
	CompetitorCount         int         `json:"competitor_count"`
}

type ExpectedOutcomes struct {
	Revenue         OutcomeDirection      `json:"revenue"`
	Occupancy       OutcomeDirection      `json:"occupancy"`
	Competitiveness CompetitivenessChange `json:"competitiveness"`
	ImpactPercent   float64               `json:"impact_percent"`
}

type AlternativePrice struct {
	Price       float64       `json:"price"`
	Scenario    PriceScenario `json:"scenario"`
	Probability float64       `json:"probability"`
}

type CompetitorAnalysis struct {
	MainCompetitors   []string       `json:"main_competitors"`
	CompetitorAverage float64        `json:"competitor_average"`
	MarketPosition    MarketPosition `json:"market_position"`
	PriceGap          float64        `json:"price_gap"`
	Opportunity       float64        `json:"opportunity"`
}

type PricingRecommendation struct {
	HotelID            uint64             `json:"hotel_id"`
	TargetDate         time.Time          `json:"target_date"`
	RoomType           string             `json:"room_type"`
	CurrentPrice       float64            `json:"current_price"`
	RecommendedPrice   float64            `json:"recommended_price"`
	PriceChange        float64            `json:"price_change"`
	PriceChangePercent float64            `json:"price_change_percent"`
	Confidence         float64            `json:"confidence"`
	Reasoning          []string           `json:"reasoning"`
	ExpectedOutcomes   ExpectedOutcomes   `json:"expected_outcomes"`
	RiskFactors        []string           `json:"risk_factors"`
	AlternativePrices  []AlternativePrice `json:"alternative_prices"`
	CompetitorAnalysis CompetitorAnalysis `json:"competitor_analysis"`
}

// RoomTypeFailure records a room type whose analysis was dropped.
type RoomTypeFailure struct {
	RoomType string `json:"room_type"`
	Message  string `json:"message"`
}

// AnalysisResult is the outcome of one (hotel, date) analysis run.
type AnalysisResult struct {
	TraceID             string                  `json:"trace_id"`
	HotelID             uint64                  `json:"hotel_id"`
	HotelName           string                  `json:"hotel_name"`
	TargetDate          time.Time               `json:"target_date"`
	GeneratedAt         time.Time               `json:"generated_at"`
	Recommendations     []PricingRecommendation `json:"recommendations"`
	Failures            []RoomTypeFailure       `json:"failures,omitempty"`
	Market              MarketIntelligence      `json:"market"`
	EventCount          int                     `json:"event_count"`
	CompetitorCount     int                     `json:"competitor_count"`
	MainCompetitorCount int                     `json:"main_competitor_count"`
}

// DateFailure records a date skipped by a multi-day analysis.
type DateFailure struct {
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

type BatchResult struct {
	HotelID         uint64                  `json:"hotel_id"`
	StartDate       time.Time               `json:"start_date"`
	EndDate         time.Time               `json:"end_date"`
	Recommendations []PricingRecommendation `json:"recommendations"`
	FailedDates     []DateFailure           `json:"failed_dates,omitempty"`
}
