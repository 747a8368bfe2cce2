package pagination_test

import (
	"testing"

	"github.com/adiwira-dev/stockledger/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "valid values pass through", page: 3, limit: 50, wantPage: 3, wantLimit: 50},
		{name: "zero page defaults", page: 0, limit: 10, wantPage: 1, wantLimit: 10},
		{name: "negative page defaults", page: -4, limit: 10, wantPage: 1, wantLimit: 10},
		{name: "zero limit defaults", page: 2, limit: 0, wantPage: 2, wantLimit: 20},
		{name: "negative limit defaults", page: 2, limit: -1, wantPage: 2, wantLimit: 20},
		{name: "oversized limit capped", page: 1, limit: 10000, wantPage: 1, wantLimit: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := pagination.Clamp(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Offset(1, 20))
	assert.Equal(t, 40, pagination.Offset(3, 20))
}
