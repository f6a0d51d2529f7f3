package pricing

import (
	"context"
	"errors"
	"hotelPricing/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMultiDayAnalysis(t *testing.T) {
	f := newFixture(day("2026-10-15"))
	f.rooms.types = []string{"standard", "deluxe"}

	res, err := f.service().RunMultiDayAnalysis(context.Background(), day("2026-10-15"), day("2026-10-17"), 1)
	require.NoError(t, err)

	assert.Len(t, res.Recommendations, 6)
	assert.Empty(t, res.FailedDates)
	assert.Equal(t, day("2026-10-15"), res.Recommendations[0].TargetDate)
	assert.Equal(t, day("2026-10-17"), res.Recommendations[5].TargetDate)
}

func TestRunMultiDayAnalysis_SingleDay(t *testing.T) {
	f := newFixture(day("2026-10-15"))

	res, err := f.service().RunMultiDayAnalysis(context.Background(), day("2026-10-15"), day("2026-10-15"), 1)
	require.NoError(t, err)
	assert.Len(t, res.Recommendations, 1)
}

func TestRunMultiDayAnalysis_FailedDateIsSkipped(t *testing.T) {
	f := newFixture(day("2026-10-15"))
	f.rooms.panicDate = day("2026-10-16")

	res, err := f.service().RunMultiDayAnalysis(context.Background(), day("2026-10-15"), day("2026-10-17"), 1)
	require.NoError(t, err)

	assert.Len(t, res.Recommendations, 2)
	require.Len(t, res.FailedDates, 1)
	assert.Equal(t, day("2026-10-16"), res.FailedDates[0].Date)
}

func TestRunMultiDayAnalysis_InvalidRange(t *testing.T) {
	f := newFixture(day("2026-10-15"))
	svc := f.service()

	_, err := svc.RunMultiDayAnalysis(context.Background(), day("2026-10-17"), day("2026-10-15"), 1)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.RunMultiDayAnalysis(context.Background(), day("2026-10-01"), day("2026-11-15"), 1)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestRunMultiDayAnalysis_UnknownHotelAborts(t *testing.T) {
	f := newFixture(day("2026-10-15"))

	res, err := f.service().RunMultiDayAnalysis(context.Background(), day("2026-10-15"), day("2026-10-20"), 42)

	var aerr *AnalysisError
	require.True(t, errors.As(err, &aerr))
	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
	assert.Empty(t, res.Recommendations)
	assert.Empty(t, res.FailedDates)
	assert.Equal(t, 0, f.rooms.calls)
}

func TestRunMultiDayAnalysis_HotelStoreBlipSkipsOneDate(t *testing.T) {
	f := newFixture(day("2026-10-15"))
	f.hotels.failCall = 2

	res, err := f.service().RunMultiDayAnalysis(context.Background(), day("2026-10-15"), day("2026-10-19"), 1)
	require.NoError(t, err)

	assert.Len(t, res.Recommendations, 4)
	require.Len(t, res.FailedDates, 1)
	assert.Equal(t, day("2026-10-16"), res.FailedDates[0].Date)
	assert.Contains(t, res.FailedDates[0].Message, "hotel store is unavailable")
	assert.Equal(t, day("2026-10-19"), res.Recommendations[3].TargetDate)
}

func TestRunMultiDayAnalysis_StopsOnDeadline(t *testing.T) {
	f := newFixture(day("2026-10-15"))
	f.cfg.BatchInterval = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := f.service().RunMultiDayAnalysis(ctx, day("2026-10-15"), day("2026-10-20"), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, res)
	assert.Len(t, res.Recommendations, 1)
}

func TestRunMultiDayAnalysis_StopsOnCancel(t *testing.T) {
	f := newFixture(day("2026-10-15"))
	f.cfg.BatchInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	res, err := f.service().RunMultiDayAnalysis(ctx, day("2026-10-15"), day("2026-10-20"), 1)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Len(t, res.Recommendations, 1)
}
