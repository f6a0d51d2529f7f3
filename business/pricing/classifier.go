package pricing

import (
	"context"
	"errors"
	"fmt"
	"hotelPricing/domain"
	"math"
	"strings"
	"unicode"
)

var ErrMalformedEvent = errors.New("malformed event")

// categoryRule lists the name keywords of one category. Rules are checked in
// order and the first with at least one match wins. A keyword matches whole
// words only; multi-word keywords match consecutive words.
type categoryRule struct {
	eventType domain.EventType
	keywords  []string
}

var categoryRules = []categoryRule{
	{domain.EventConcert, []string{"concert", "live", "world tour", "music", "band", "orchestra", "symphony"}},
	{domain.EventConference, []string{"conference", "summit", "forum", "symposium", "congress", "seminar", "workshop"}},
	{domain.EventSports, []string{"match", "marathon", "tournament", "championship", "league", "sports", "game", "games"}},
	{domain.EventFestival, []string{"festival", "fest", "carnival", "celebration", "parade", "lantern"}},
	{domain.EventBusiness, []string{"expo", "exhibition", "trade show", "business", "convention", "fair"}},
	{domain.EventCultural, []string{"museum", "theatre", "theater", "opera", "ballet", "gallery", "heritage", "cultural"}},
}

// eventTemplate is the fixed metrics profile of a category.
type eventTemplate struct {
	attendance    int
	audience      []string
	venueCapacity int
	ticketMin     float64
	ticketMax     float64
	buzz          domain.SocialBuzz
}

var eventTemplates = map[domain.EventType]eventTemplate{
	domain.EventConcert: {
		attendance: 25000, audience: []string{"young_adults", "music_fans", "tourists"},
		venueCapacity: 30000, ticketMin: 800, ticketMax: 6000, buzz: domain.BuzzViral,
	},
	domain.EventSports: {
		attendance: 18000, audience: []string{"sports_fans", "families", "tourists"},
		venueCapacity: 20000, ticketMin: 300, ticketMax: 3000, buzz: domain.BuzzHigh,
	},
	domain.EventFestival: {
		attendance: 12000, audience: []string{"families", "tourists", "locals"},
		venueCapacity: 15000, ticketMin: 0, ticketMax: 1500, buzz: domain.BuzzHigh,
	},
	domain.EventConference: {
		attendance: 3000, audience: []string{"professionals", "business_travelers"},
		venueCapacity: 5000, ticketMin: 1500, ticketMax: 8000, buzz: domain.BuzzMedium,
	},
	domain.EventBusiness: {
		attendance: 1500, audience: []string{"business_travelers", "exhibitors"},
		venueCapacity: 3000, ticketMin: 2000, ticketMax: 10000, buzz: domain.BuzzLow,
	},
	domain.EventCultural: {
		attendance: 2500, audience: []string{"culture_enthusiasts", "tourists", "seniors"},
		venueCapacity: 3000, ticketMin: 200, ticketMax: 1500, buzz: domain.BuzzMedium,
	},
	domain.EventOther: {
		attendance: 1000, audience: []string{"general_public"},
		venueCapacity: 2000, ticketMin: 0, ticketMax: 1000, buzz: domain.BuzzLow,
	},
}

// categoryMultiplier is the base price impact of a category.
func categoryMultiplier(t domain.EventType) float64 {
	switch t {
	case domain.EventConcert:
		return 1.4
	case domain.EventSports:
		return 1.3
	case domain.EventFestival, domain.EventBusiness:
		return 1.2
	case domain.EventConference:
		return 1.1
	case domain.EventCultural, domain.EventOther:
		return 1.0
	default:
		return 1.0
	}
}

func forecastDemand(attendance int) domain.DemandLevel {
	switch {
	case attendance > 20000:
		return domain.DemandExtreme
	case attendance > 10000:
		return domain.DemandHigh
	case attendance > 2000:
		return domain.DemandMedium
	default:
		return domain.DemandLow
	}
}

func demandMultiplier(d domain.DemandLevel) float64 {
	switch d {
	case domain.DemandExtreme:
		return 1.5
	case domain.DemandHigh:
		return 1.3
	case domain.DemandMedium:
		return 1.1
	case domain.DemandLow:
		return 0.9
	default:
		return 1.0
	}
}

// EventClassifier infers the category and demand impact of an event from its
// name. It is a pure lookup; no I/O.
type EventClassifier struct {
	cfg Config
}

func NewEventClassifier(cfg Config) *EventClassifier {
	return &EventClassifier{cfg: cfg}
}

// matchCategory returns the first category with a keyword hit and the
// number of that category's keywords found in name.
func matchCategory(name string) (domain.EventType, int) {
	words := nameWords(name)
	for _, rule := range categoryRules {
		matches := 0
		for _, kw := range rule.keywords {
			if hasKeyword(words, kw) {
				matches++
			}
		}
		if matches > 0 {
			return rule.eventType, matches
		}
	}
	return domain.EventOther, 0
}

func nameWords(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// hasKeyword reports whether the words of kw appear consecutively in words.
// A trailing plural "s" on a name word is accepted.
func hasKeyword(words []string, kw string) bool {
	parts := strings.Fields(kw)
	for i := 0; i+len(parts) <= len(words); i++ {
		hit := true
		for j, p := range parts {
			if w := words[i+j]; w != p && w != p+"s" {
				hit = false
				break
			}
		}
		if hit {
			return true
		}
	}
	return false
}

func (c *EventClassifier) Classify(event domain.Event) (domain.EventIntelligence, error) {
	if strings.TrimSpace(event.Name) == "" {
		return domain.EventIntelligence{}, fmt.Errorf("%w: event %d has no name", ErrMalformedEvent, event.ID)
	}
	if event.Date.IsZero() {
		return domain.EventIntelligence{}, fmt.Errorf("%w: event %d has no date", ErrMalformedEvent, event.ID)
	}

	eventType, matches := matchCategory(event.Name)

	confidence := 0.5
	if matches > 0 {
		confidence = math.Min(0.9, 0.5+0.1*float64(matches))
	}

	tpl, ok := eventTemplates[eventType]
	if !ok {
		tpl = eventTemplates[domain.EventOther]
	}

	demand := forecastDemand(tpl.attendance)
	multiplier := clamp(
		categoryMultiplier(eventType)*demandMultiplier(demand),
		c.cfg.MinImpactMultiplier,
		c.cfg.MaxImpactMultiplier,
	)

	audience := make([]string, len(tpl.audience))
	copy(audience, tpl.audience)

	return domain.EventIntelligence{
		EventID:            event.ID,
		Name:               event.Name,
		Date:               event.Date,
		Venue:              event.Venue,
		EventType:          eventType,
		ExpectedAttendance: tpl.attendance,
		TargetAudience:     audience,
		VenueCapacity:      tpl.venueCapacity,
		TicketPriceRange: domain.TicketPriceRange{
			Min:      tpl.ticketMin,
			Max:      tpl.ticketMax,
			Currency: c.cfg.Currency,
		},
		SocialBuzz:            tpl.buzz,
		DemandForecast:        demand,
		PriceImpactMultiplier: round2(multiplier),
		Confidence:            round2(confidence * 100),
	}, nil
}

// ClassifyAll classifies each event, skipping and logging malformed ones.
func (c *EventClassifier) ClassifyAll(ctx context.Context, events []domain.Event) []domain.EventIntelligence {
	out := make([]domain.EventIntelligence, 0, len(events))
	for _, ev := range events {
		intel, err := c.Classify(ev)
		if err != nil {
			logWarn(ctx, "pricing_event_skipped", "event_id", ev.ID, "error", err)
			continue
		}
		out = append(out, intel)
	}
	return out
}
