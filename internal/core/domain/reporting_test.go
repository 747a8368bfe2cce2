package domain_test

import (
	"testing"
	"time"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTrendGroupBy_BucketKey(t *testing.T) {
	// 2024-01-10 is a Wednesday; 2024-01-15 the following Monday.
	wednesday := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	nextMonday := time.Date(2024, 1, 15, 0, 0, 1, 0, time.UTC)
	sunday := time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name    string
		groupBy domain.TrendGroupBy
		at      time.Time
		want    string
	}{
		{name: "day key", groupBy: domain.TrendDaily, at: wednesday, want: "2024-01-10"},
		{name: "month key", groupBy: domain.TrendMonthly, at: wednesday, want: "2024-01"},
		{name: "week key is the monday of the week", groupBy: domain.TrendWeekly, at: wednesday, want: "2024-01-08"},
		{name: "sunday belongs to the preceding monday", groupBy: domain.TrendWeekly, at: sunday, want: "2024-01-08"},
		{name: "monday starts a new week bucket", groupBy: domain.TrendWeekly, at: nextMonday, want: "2024-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.groupBy.BucketKey(tt.at))
		})
	}
}

func TestTrendGroupBy_WeekBoundarySeparatesBuckets(t *testing.T) {
	wednesday := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	followingMonday := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	wedKey := domain.TrendWeekly.BucketKey(wednesday)
	monKey := domain.TrendWeekly.BucketKey(followingMonday)

	assert.NotEqual(t, wedKey, monKey)
	assert.Equal(t, "2024-01-08", wedKey)
	assert.Equal(t, "2024-01-15", monKey)
}

func TestItem_StockCapitalValue(t *testing.T) {
	assert.Equal(t, int64(2500), domain.Item{Stock: 25, CostPrice: 100}.StockCapitalValue())
	assert.Equal(t, int64(0), domain.Item{Stock: 0, CostPrice: 100}.StockCapitalValue())
}
