package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRegionDescriptiveName(t *testing.T) {
	assert.Equal(t, "Asia Pacific (Seoul)", GetRegionDescriptiveName("ap-northeast-2"))
	assert.Equal(t, "US East (N. Virginia)", GetRegionDescriptiveName("US-EAST-1"))
	assert.Equal(t, "US East (N. Virginia)", GetRegionDescriptiveName("mars-1"))
}

func TestIsValidRegion(t *testing.T) {
	assert.True(t, IsValidRegion("eu-west-1"))
	assert.True(t, IsValidRegion("EU-WEST-1"))
	assert.False(t, IsValidRegion("mars-1"))
	assert.False(t, IsValidRegion(""))
}

func TestNormalizeRegion(t *testing.T) {
	region, ok := NormalizeRegion("  US-WEST-2 ")
	assert.True(t, ok)
	assert.Equal(t, "us-west-2", region)

	_, ok = NormalizeRegion("atlantis-1")
	assert.False(t, ok)
}

func TestSortedRegionCodes(t *testing.T) {
	codes := SortedRegionCodes()
	assert.Len(t, codes, len(RegionDescriptiveNames))
	assert.True(t, sort.StringsAreSorted(codes))
	assert.Contains(t, codes, DefaultRegion)
}
