package pricing

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSDKFiltersMatchTypes(t *testing.T) {
	out := toSDKFilters([]Filter{
		TermFilter("instanceType", "t3.micro"),
		{Field: "usagetype", Value: "DataTransfer", Match: MatchContains},
	})

	require.Len(t, out, 2)
	assert.Equal(t, types.FilterTypeTermMatch, out[0].Type)
	assert.Equal(t, "instanceType", *out[0].Field)
	assert.Equal(t, types.FilterType("CONTAINS"), out[1].Type)
	assert.Equal(t, "DataTransfer", *out[1].Value)
}
