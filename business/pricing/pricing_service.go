package pricing

import (
	"context"
	"errors"
	"fmt"
	"hotelPricing/domain"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// AnalysisError is returned when an analysis cannot start at all. Message is
// meant for the person who asked for the analysis.
type AnalysisError struct {
	HotelID uint64
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// ---- Repository interfaces ----

type HotelRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Hotel, error)
}

type HotelRoomRepository interface {
	// FindRooms filters by date and room type when they are set.
	FindRooms(ctx context.Context, hotelID uint64, date *time.Time, roomType string) ([]domain.HotelRoom, error)
	ListRoomTypes(ctx context.Context, hotelID uint64) ([]string, error)
}

type CompetitorRepository interface {
	List(ctx context.Context, limit int) ([]domain.CompetitorHotel, error)
}

type EventRepository interface {
	FindByDate(ctx context.Context, date time.Time) ([]domain.Event, error)
}

type RecommendationCache interface {
	Get(ctx context.Context, hotelID uint64, date time.Time) (*domain.AnalysisResult, bool, error)
	Set(ctx context.Context, hotelID uint64, date time.Time, result *domain.AnalysisResult, ttl time.Duration) error
	// InvalidateHotel drops every cached date of a hotel.
	InvalidateHotel(ctx context.Context, hotelID uint64) error
}

// ---- Service ----

type PricingService struct {
	hotelRepo      HotelRepository
	roomRepo       HotelRoomRepository
	competitorRepo CompetitorRepository
	eventRepo      EventRepository
	historyRepo    EventHistoryRepository
	cfgRepo        ConfigRepository
	cache          RecommendationCache
	distance       DistanceCalculator
	defaultCfg     Config
	now            func() time.Time
}

func NewPricingService(
	hotelRepo HotelRepository,
	roomRepo HotelRoomRepository,
	competitorRepo CompetitorRepository,
	eventRepo EventRepository,
	historyRepo EventHistoryRepository,
	cfgRepo ConfigRepository,
	cache RecommendationCache,
	distance DistanceCalculator,
	defaultCfg Config,
) *PricingService {
	if distance == nil {
		distance = HaversineDistance{}
	}
	return &PricingService{
		hotelRepo:      hotelRepo,
		roomRepo:       roomRepo,
		competitorRepo: competitorRepo,
		eventRepo:      eventRepo,
		historyRepo:    historyRepo,
		cfgRepo:        cfgRepo,
		cache:          cache,
		distance:       distance,
		defaultCfg:     defaultCfg,
		now:            time.Now,
	}
}

// SetClock replaces the clock used for "today" and timestamps.
func (s *PricingService) SetClock(now func() time.Time) {
	s.now = now
}

// AnalyzeAndRecommendPricing produces one recommendation per room type of
// the hotel for targetDate. Store failures fall back to defaults; only an
// unresolvable hotel fails the whole run (as *AnalysisError).
func (s *PricingService) AnalyzeAndRecommendPricing(
	ctx context.Context,
	targetDate time.Time,
	hotelID uint64,
) (*domain.AnalysisResult, error) {
	started := time.Now()

	ctx, tid := ensureTraceID(ctx)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	day := truncateDay(targetDate)
	cfg := s.loadConfig(ctx, hotelID)

	// 1) resolve the hotel; nothing else is fatal
	hotel, err := s.resolveHotel(ctx, cfg, hotelID)
	if err != nil {
		logError(ctx, "pricing_hotel_unresolved", "hotel_id", hotelID, "error", err)
		return nil, err
	}

	if cached := s.cachedResult(ctx, hotel.ID, day, tid); cached != nil {
		return cached, nil
	}

	// 2) events and competitors are independent
	events, competitors := s.loadSignals(ctx, cfg, hotel, day)

	// 3) market view over both
	market := NewMarketAggregator().Aggregate(events, competitors)

	// 4) one independent analysis per room type
	roomTypes := s.roomTypes(ctx, cfg, hotel.ID)
	recs, failures := s.analyzeRoomTypes(ctx, cfg, hotel, day, roomTypes, events, competitors, market)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	mainCount := 0
	for _, c := range competitors {
		if c.IsMainCompetitor {
			mainCount++
		}
	}

	result := &domain.AnalysisResult{
		TraceID:             tid,
		HotelID:             hotel.ID,
		HotelName:           hotel.Name,
		TargetDate:          day,
		GeneratedAt:         s.now(),
		Recommendations:     recs,
		Failures:            failures,
		Market:              market,
		EventCount:          len(events),
		CompetitorCount:     len(competitors),
		MainCompetitorCount: mainCount,
	}

	s.storeResult(ctx, cfg, result)
	AnalysisDuration.Observe(time.Since(started).Seconds())

	logInfo(ctx, "pricing_analyze",
		"hotel_id", hotel.ID,
		"target_date", day.Format(domain.CompetitorDateLayout),
		"room_types", len(roomTypes),
		"recommendations", len(recs),
		"failures", len(failures),
		"events", len(events),
		"competitors", len(competitors),
		"main_competitors", mainCount,
		"market_opportunity", market.MarketOpportunity,
	)

	return result, nil
}

func (s *PricingService) resolveHotel(ctx context.Context, cfg Config, hotelID uint64) (domain.Hotel, error) {
	if hotelID == 0 {
		return domain.Hotel{}, &AnalysisError{
			HotelID: hotelID,
			Message: "analysis failed: a hotel id is required",
			Err:     domain.ErrHotelNotFound,
		}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	hotel, err := s.hotelRepo.FindByID(lookupCtx, hotelID)
	if err != nil {
		reason := "the hotel store is unavailable"
		if errors.Is(err, domain.ErrHotelNotFound) {
			reason = "no such hotel"
		}
		return domain.Hotel{}, &AnalysisError{
			HotelID: hotelID,
			Message: fmt.Sprintf("analysis failed: hotel %d could not be resolved (%s)", hotelID, reason),
			Err:     err,
		}
	}

	return hotel, nil
}

func (s *PricingService) loadSignals(
	ctx context.Context,
	cfg Config,
	hotel domain.Hotel,
	day time.Time,
) ([]domain.EventIntelligence, []domain.CompetitorIntelligence) {
	var (
		g           errgroup.Group
		events      []domain.EventIntelligence
		competitors []domain.CompetitorIntelligence
	)

	g.Go(func() error {
		events = s.loadEvents(ctx, cfg, day)
		return nil
	})
	g.Go(func() error {
		competitors = s.loadCompetitors(ctx, cfg, hotel)
		return nil
	})
	_ = g.Wait()

	return events, competitors
}

func (s *PricingService) loadEvents(ctx context.Context, cfg Config, day time.Time) []domain.EventIntelligence {
	queryCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	rows, err := s.eventRepo.FindByDate(queryCtx, day)
	if err != nil {
		StoreFallbacksTotal.WithLabelValues("events").Inc()
		logWarn(ctx, "pricing_events_unavailable", "date", day.Format(domain.CompetitorDateLayout), "error", err)
		return []domain.EventIntelligence{}
	}

	events := NewEventClassifier(cfg).ClassifyAll(ctx, rows)
	for i := range events {
		events[i].HistoricalData = s.similarEvents(ctx, cfg, events[i].EventType)
	}

	return events
}

// loadCompetitors scores every listed candidate against today's price table.
// A failed query yields no competitors rather than an error.
func (s *PricingService) loadCompetitors(ctx context.Context, cfg Config, hotel domain.Hotel) []domain.CompetitorIntelligence {
	queryCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	rows, err := s.competitorRepo.List(queryCtx, cfg.CompetitorPageSize)
	if err != nil {
		StoreFallbacksTotal.WithLabelValues("competitors").Inc()
		logWarn(ctx, "pricing_competitors_unavailable", "hotel_id", hotel.ID, "error", err)
		return []domain.CompetitorIntelligence{}
	}

	today := truncateDay(s.now())
	scorer := NewCompetitorScorer(cfg, s.distance)

	out := make([]domain.CompetitorIntelligence, 0, len(rows))
	for _, row := range rows {
		if isSelfListing(row, hotel) {
			continue
		}
		out = append(out, scorer.Score(row, hotel, today))
	}

	return out
}

// isSelfListing reports whether a competitor row is the target hotel's own
// listing. The competitor table has its own ids, so name and city decide.
func isSelfListing(row domain.CompetitorHotel, hotel domain.Hotel) bool {
	return strings.EqualFold(strings.TrimSpace(row.Name), strings.TrimSpace(hotel.Name)) &&
		strings.EqualFold(strings.TrimSpace(row.City), strings.TrimSpace(hotel.City))
}

func (s *PricingService) roomTypes(ctx context.Context, cfg Config, hotelID uint64) []string {
	queryCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	types, err := s.roomRepo.ListRoomTypes(queryCtx, hotelID)
	if err != nil {
		StoreFallbacksTotal.WithLabelValues("room_types").Inc()
		logWarn(ctx, "pricing_room_types_unavailable", "hotel_id", hotelID, "error", err)
		return cfg.DefaultRoomTypes
	}
	if len(types) == 0 {
		return cfg.DefaultRoomTypes
	}
	return types
}

func (s *PricingService) analyzeRoomTypes(
	ctx context.Context,
	cfg Config,
	hotel domain.Hotel,
	day time.Time,
	roomTypes []string,
	events []domain.EventIntelligence,
	competitors []domain.CompetitorIntelligence,
	market domain.MarketIntelligence,
) ([]domain.PricingRecommendation, []domain.RoomTypeFailure) {
	results := make([]*domain.PricingRecommendation, len(roomTypes))
	errs := make([]error, len(roomTypes))

	var g errgroup.Group
	for i, roomType := range roomTypes {
		g.Go(func() error {
			results[i], errs[i] = s.analyzeRoomType(ctx, cfg, hotel, day, roomType, events, competitors, market)
			return nil
		})
	}
	_ = g.Wait()

	recs := make([]domain.PricingRecommendation, 0, len(roomTypes))
	var failures []domain.RoomTypeFailure
	for i, roomType := range roomTypes {
		if errs[i] != nil {
			RoomTypeFailuresTotal.Inc()
			logError(ctx, "pricing_room_type_failed", "hotel_id", hotel.ID, "room_type", roomType, "error", errs[i])
			failures = append(failures, domain.RoomTypeFailure{RoomType: roomType, Message: errs[i].Error()})
			continue
		}
		recs = append(recs, *results[i])
	}

	return recs, failures
}

func (s *PricingService) analyzeRoomType(
	ctx context.Context,
	cfg Config,
	hotel domain.Hotel,
	day time.Time,
	roomType string,
	events []domain.EventIntelligence,
	competitors []domain.CompetitorIntelligence,
	market domain.MarketIntelligence,
) (rec *domain.PricingRecommendation, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = fmt.Errorf("room type %q analysis panicked: %v", roomType, r)
		}
	}()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("context error: %w", ctxErr)
	}

	current := s.currentPrice(ctx, cfg, hotel.ID, day, roomType)

	opt := NewPriceOptimizer(cfg).Optimize(current, events, competitors, market, roomType)
	out := NewRecommendationComposer(cfg).Compose(events, competitors, market, opt)
	out.HotelID = hotel.ID
	out.TargetDate = day

	RecommendationsTotal.
		WithLabelValues(string(opt.MarketPosition), changeDirection(out.PriceChange)).
		Inc()

	logDebug(ctx, "pricing_room_type",
		"hotel_id", hotel.ID,
		"room_type", roomType,
		"current_price", current,
		"competitor_average", opt.CompetitorAverage,
		"market_position", string(opt.MarketPosition),
		"event_multiplier", opt.EventMultiplier,
		"recommended_price", out.RecommendedPrice,
		"confidence", out.Confidence,
	)

	return &out, nil
}

// currentPrice averages the stored prices for the room type on day, falling
// back to the configured default.
func (s *PricingService) currentPrice(ctx context.Context, cfg Config, hotelID uint64, day time.Time, roomType string) float64 {
	queryCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	rooms, err := s.roomRepo.FindRooms(queryCtx, hotelID, &day, roomType)
	if err != nil {
		StoreFallbacksTotal.WithLabelValues("hotel_rooms").Inc()
		logWarn(ctx, "pricing_room_price_unavailable", "hotel_id", hotelID, "room_type", roomType, "error", err)
		return cfg.DefaultRoomPrice
	}

	prices := make([]float64, 0, len(rooms))
	for _, r := range rooms {
		if r.Price != nil && *r.Price > 0 {
			prices = append(prices, *r.Price)
		}
	}
	if len(prices) == 0 {
		return cfg.DefaultRoomPrice
	}
	return mean(prices)
}

// cachedResult returns a copy of the cached analysis stamped with the
// current request's trace id.
func (s *PricingService) cachedResult(ctx context.Context, hotelID uint64, day time.Time, traceID string) *domain.AnalysisResult {
	if s.cache == nil {
		return nil
	}
	res, ok, err := s.cache.Get(ctx, hotelID, day)
	if err != nil {
		logWarn(ctx, "pricing_cache_read_failed", "hotel_id", hotelID, "error", err)
		return nil
	}
	if !ok || res == nil {
		return nil
	}
	hit := *res
	hit.TraceID = traceID
	return &hit
}

func (s *PricingService) storeResult(ctx context.Context, cfg Config, result *domain.AnalysisResult) {
	if s.cache == nil || len(result.Failures) > 0 {
		return
	}
	if err := s.cache.Set(ctx, result.HotelID, result.TargetDate, result, cfg.CacheTTL); err != nil {
		logWarn(ctx, "pricing_cache_write_failed", "hotel_id", result.HotelID, "error", err)
	}
}

func changeDirection(change float64) string {
	switch {
	case change > 0:
		return "increase"
	case change < 0:
		return "decrease"
	default:
		return "unchanged"
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
