package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotelPricing/domain"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"
)

var errStoreDown = errors.New("store down")

func day(s string) time.Time {
	t, err := time.Parse(domain.CompetitorDateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(v float64) *float64 { return &v }

// roomsByDate builds the jsonb price table of a competitor.
func roomsByDate(byDate map[string][]domain.CompetitorRoom) datatypes.JSON {
	raw, err := json.Marshal(byDate)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(raw)
}

func taipeiHotel() domain.Hotel {
	return domain.Hotel{
		ID:         1,
		Name:       "Harbor View",
		City:       "Taipei",
		StarRating: 4,
		Latitude:   ptr(25.0330),
		Longitude:  ptr(121.5654),
	}
}

// mainCompetitor passes every main competitor gate against taipeiHotel when
// scored with a distance under 5 km.
func mainCompetitor(id uint64, name string, date string, prices ...float64) domain.CompetitorHotel {
	rooms := make([]domain.CompetitorRoom, 0, len(prices))
	for _, p := range prices {
		rooms = append(rooms, domain.CompetitorRoom{RoomType: "Double", Price: p})
	}
	return domain.CompetitorHotel{
		ID:          id,
		Name:        name,
		City:        "Taipei",
		StarRating:  4,
		Latitude:    ptr(25.04),
		Longitude:   ptr(121.56),
		RoomsByDate: roomsByDate(map[string][]domain.CompetitorRoom{date: rooms}),
	}
}

// ---- fakes ----

type fakeHotelRepo struct {
	mu     sync.Mutex
	hotels map[uint64]domain.Hotel
	err    error
	// failCall makes only the n-th lookup fail, counting from 1.
	failCall int
	calls    int
}

func (f *fakeHotelRepo) FindByID(ctx context.Context, id uint64) (domain.Hotel, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()

	if f.err != nil {
		return domain.Hotel{}, f.err
	}
	if f.failCall > 0 && call == f.failCall {
		return domain.Hotel{}, errStoreDown
	}
	h, ok := f.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	return h, nil
}

type fakeRoomRepo struct {
	mu        sync.Mutex
	prices    map[string]float64
	types     []string
	typesErr  error
	panicType string
	panicDate time.Time
	calls     int
}

func (f *fakeRoomRepo) FindRooms(ctx context.Context, hotelID uint64, date *time.Time, roomType string) ([]domain.HotelRoom, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.panicType != "" && roomType == f.panicType {
		panic("corrupt room row")
	}
	if !f.panicDate.IsZero() && date != nil && date.Equal(f.panicDate) {
		panic("corrupt room row")
	}

	p, ok := f.prices[roomType]
	if !ok {
		return nil, nil
	}
	return []domain.HotelRoom{{HotelID: hotelID, RoomType: roomType, Price: ptr(p)}}, nil
}

func (f *fakeRoomRepo) ListRoomTypes(ctx context.Context, hotelID uint64) ([]string, error) {
	return f.types, f.typesErr
}

type fakeCompetitorRepo struct {
	rows []domain.CompetitorHotel
	err  error
}

func (f *fakeCompetitorRepo) List(ctx context.Context, limit int) ([]domain.CompetitorHotel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
	calls  int
}

func (f *fakeEventRepo) FindByDate(ctx context.Context, date time.Time) ([]domain.Event, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

type fakeHistoryRepo struct {
	rows []domain.EventHistory
	err  error
}

func (f *fakeHistoryRepo) FindSimilar(ctx context.Context, eventType domain.EventType, limit int) ([]domain.EventHistory, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.EventHistory, 0, len(f.rows))
	for _, r := range f.rows {
		if r.EventType == eventType && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeConfigRepo struct {
	rows map[uint64]domain.PricingConfig
	err  error
}

func (f *fakeConfigRepo) GetConfig(ctx context.Context, hotelID uint64) (domain.PricingConfig, bool, error) {
	if f.err != nil {
		return domain.PricingConfig{}, false, f.err
	}
	row, ok := f.rows[hotelID]
	return row, ok, nil
}

func (f *fakeConfigRepo) UpsertConfig(ctx context.Context, cfg domain.PricingConfig) error {
	if f.rows == nil {
		f.rows = map[uint64]domain.PricingConfig{}
	}
	f.rows[cfg.HotelID] = cfg
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]*domain.AnalysisResult
}

func cacheKey(hotelID uint64, date time.Time) string {
	return fmt.Sprintf("%d|%s", hotelID, date.Format(domain.CompetitorDateLayout))
}

func (f *fakeCache) Get(ctx context.Context, hotelID uint64, date time.Time) (*domain.AnalysisResult, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.entries[cacheKey(hotelID, date)]
	return res, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, hotelID uint64, date time.Time, result *domain.AnalysisResult, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.entries == nil {
		f.entries = map[string]*domain.AnalysisResult{}
	}
	f.entries[cacheKey(hotelID, date)] = result
	return nil
}

func (f *fakeCache) InvalidateHotel(ctx context.Context, hotelID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prefix := fmt.Sprintf("%d|", hotelID)
	for k := range f.entries {
		if strings.HasPrefix(k, prefix) {
			delete(f.entries, k)
		}
	}
	return nil
}

// serviceFixture wires a PricingService over in-memory stores.
type serviceFixture struct {
	hotels      *fakeHotelRepo
	rooms       *fakeRoomRepo
	competitors *fakeCompetitorRepo
	events      *fakeEventRepo
	history     *fakeHistoryRepo
	configs     *fakeConfigRepo
	cache       *fakeCache
	cfg         Config
	today       time.Time
}

func newFixture(today time.Time) *serviceFixture {
	cfg := DefaultConfig()
	cfg.BatchInterval = 0
	cfg.StoreTimeout = time.Second

	return &serviceFixture{
		hotels:      &fakeHotelRepo{hotels: map[uint64]domain.Hotel{1: taipeiHotel()}},
		rooms:       &fakeRoomRepo{prices: map[string]float64{}, types: []string{"standard"}},
		competitors: &fakeCompetitorRepo{},
		events:      &fakeEventRepo{},
		history:     &fakeHistoryRepo{},
		configs:     &fakeConfigRepo{},
		cfg:         cfg,
		today:       today,
	}
}

func (f *serviceFixture) service() *PricingService {
	var cache RecommendationCache
	if f.cache != nil {
		cache = f.cache
	}
	svc := NewPricingService(f.hotels, f.rooms, f.competitors, f.events, f.history, f.configs, cache, FixedDistance(1), f.cfg)
	svc.SetClock(func() time.Time { return f.today })
	return svc
}
