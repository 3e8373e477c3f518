package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourlyRateMatchesUnitExactly(t *testing.T) {
	sp := &ServicePricing{
		OnDemand: []PriceOption{
			{Unit: "LCU-Hrs", Price: 0.008},
			{Unit: "Hrs", Price: 0.0225},
		},
	}

	rate, ok := sp.HourlyRate()
	assert.True(t, ok)
	assert.InDelta(t, 0.0225, rate, 1e-9)
}

func TestHourlyRateAbsent(t *testing.T) {
	sp := &ServicePricing{
		OnDemand: []PriceOption{{Unit: "GB-Mo", Price: 0.023}},
	}

	_, ok := sp.HourlyRate()
	assert.False(t, ok)
}

func TestRateForUnitSubstringMatch(t *testing.T) {
	sp := &ServicePricing{
		OnDemand: []PriceOption{
			{Unit: "Hrs", Price: 0.0225},
			{Unit: "LCU-Hrs", Price: 0.008},
		},
	}

	rate, ok := sp.RateForUnit("LCU")
	assert.True(t, ok)
	assert.InDelta(t, 0.008, rate, 1e-9)
}
