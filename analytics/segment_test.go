package analytics

import (
	"testing"
	"time"

	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/stretchr/testify/assert"
)

var segmentRef = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func customerLastOrderedDaysAgo(days int, totalOrders int) models.Customer {
	last := segmentRef.AddDate(0, 0, -days)
	return models.Customer{
		TotalOrders:   totalOrders,
		LastOrderDate: &last,
		CreatedAt:     segmentRef.AddDate(-1, 0, 0),
	}
}

func TestClassifyZeroOrdersIsAlwaysNew(t *testing.T) {
	for _, days := range []int{0, 30, 90, 180, 1000} {
		c := customerLastOrderedDaysAgo(days, 0)
		assert.Equal(t, SegmentNew, Classify(c, segmentRef), "days=%d", days)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		days int
		want Segment
	}{
		{0, SegmentNew},
		{30, SegmentNew},
		{31, SegmentActive},
		{40, SegmentActive},
		{90, SegmentActive},
		{91, SegmentInactive},
		{180, SegmentInactive},
		{181, SegmentChurned},
		{200, SegmentChurned},
	}
	for _, tc := range cases {
		c := customerLastOrderedDaysAgo(tc.days, 3)
		assert.Equal(t, tc.want, Classify(c, segmentRef), "days=%d", tc.days)
	}
}

func TestClassifyFallsBackToSignupDate(t *testing.T) {
	c := models.Customer{
		TotalOrders: 2,
		CreatedAt:   segmentRef.AddDate(0, 0, -120),
	}
	assert.Equal(t, SegmentInactive, Classify(c, segmentRef))
}

func TestClassifyMissingTimestampsDefaultsToNew(t *testing.T) {
	// No last order date and no signup date: treated as zero elapsed days.
	c := models.Customer{TotalOrders: 5}
	assert.Equal(t, 0.0, DaysSince(c, segmentRef))
	assert.Equal(t, SegmentNew, Classify(c, segmentRef))
}

func TestDaysSinceClampedAtZero(t *testing.T) {
	future := segmentRef.Add(48 * time.Hour)
	c := models.Customer{TotalOrders: 1, LastOrderDate: &future}
	assert.Equal(t, 0.0, DaysSince(c, segmentRef))
}

func TestRecencyBoundariesMatchClassifier(t *testing.T) {
	// SQL recency windows reuse these constants; pin them to the
	// classification table above.
	assert.Equal(t, 30, NewBoundaryDays)
	assert.Equal(t, 90, ActiveBoundaryDays)
	assert.Equal(t, 180, InactiveBoundaryDays)

	inWindow := customerLastOrderedDaysAgo(ActiveBoundaryDays, 1)
	outOfWindow := customerLastOrderedDaysAgo(ActiveBoundaryDays+1, 1)
	assert.Contains(t, []Segment{SegmentNew, SegmentActive}, Classify(inWindow, segmentRef))
	assert.NotContains(t, []Segment{SegmentNew, SegmentActive}, Classify(outOfWindow, segmentRef))
}

func TestDaysSinceMonotonicAsTimeAdvances(t *testing.T) {
	c := customerLastOrderedDaysAgo(10, 1)

	prev := -1.0
	segmentRank := map[Segment]int{SegmentNew: 0, SegmentActive: 1, SegmentInactive: 2, SegmentChurned: 3}
	prevRank := 0
	for advance := 0; advance <= 400; advance += 7 {
		ref := segmentRef.AddDate(0, 0, advance)
		days := DaysSince(c, ref)
		assert.GreaterOrEqual(t, days, prev)
		prev = days

		rank := segmentRank[Classify(c, ref)]
		assert.GreaterOrEqual(t, rank, prevRank, "segment must never move backward without a new order")
		prevRank = rank
	}
}
