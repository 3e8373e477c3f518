package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/junseok-oh/cloudquote/internal/models"
)

func TestParseTierRange(t *testing.T) {
	tests := []struct {
		name        string
		description string
		beginGB     float64
		endGB       float64
		ok          bool
	}{
		{"first tier in TB", "first 10 TB / month data transfer out", 0, 10240, true},
		{"first tier in GB", "first 500 GB / month", 0, 500, true},
		{"over tier", "over 150 TB / month data transfer out", 153600, math.Inf(1), true},
		{"next tier is dropped", "next 40 TB / month data transfer out", 0, 0, false},
		{"no tier wording", "data transfer out to ap-northeast-2", 0, math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			begin, end, ok := parseTierRange(tt.description)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.beginGB, begin)
			assert.Equal(t, tt.endGB, end)
		})
	}
}

func TestTierPriceFor(t *testing.T) {
	tp := &models.TransferPricing{
		Tiers: []models.TransferTier{
			{BeginGB: 0, EndGB: 10240, PricePerGB: 0.09},
			{BeginGB: 153600, EndGB: math.Inf(1), PricePerGB: 0.05},
		},
	}

	price, ok := TierPriceFor(tp, 500)
	assert.True(t, ok)
	assert.Equal(t, 0.09, price)

	price, ok = TierPriceFor(tp, 200000)
	assert.True(t, ok)
	assert.Equal(t, 0.05, price)

	// The 10 TB - 150 TB gap belongs to a "next" tier the parser drops.
	_, ok = TierPriceFor(tp, 50000)
	assert.False(t, ok)
}
