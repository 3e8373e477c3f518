package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junseok-oh/cloudquote/internal/models"
)

func sampleResult(service string) *models.PricingResult {
	return &models.PricingResult{
		Service: service,
		Region:  "us-east-1",
		Count:   1,
		Products: []models.ProductRecord{
			{SKU: "SKU1", Attributes: map[string]string{"instanceType": "t3.micro"}},
		},
	}
}

func TestCacheSetGet(t *testing.T) {
	c := NewCache(time.Hour)
	filters := []Filter{TermFilter("instanceType", "t3.micro")}

	_, ok := c.Get("AmazonEC2", filters, "us-east-1")
	assert.False(t, ok)

	c.Set("AmazonEC2", filters, "us-east-1", sampleResult("AmazonEC2"))

	got, ok := c.Get("AmazonEC2", filters, "us-east-1")
	require.True(t, ok)
	assert.Equal(t, "AmazonEC2", got.Service)
	assert.Equal(t, 1, c.Len())
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(time.Hour)
	filters := []Filter{TermFilter("instanceType", "t3.micro")}

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
	c.Set("AmazonEC2", filters, "us-east-1", sampleResult("AmazonEC2"))

	c.now = func() time.Time { return base.Add(59 * time.Minute) }
	_, ok := c.Get("AmazonEC2", filters, "us-east-1")
	assert.True(t, ok, "entry inside the TTL window must hit")

	c.now = func() time.Time { return base.Add(time.Hour) }
	_, ok = c.Get("AmazonEC2", filters, "us-east-1")
	assert.False(t, ok, "entry aged exactly to the TTL must miss")
}

func TestCacheKeyIgnoresFilterOrder(t *testing.T) {
	c := NewCache(time.Hour)

	a := []Filter{
		TermFilter("instanceType", "t3.micro"),
		TermFilter("location", "US East (N. Virginia)"),
		TermFilter("tenancy", "Shared"),
	}
	b := []Filter{
		TermFilter("tenancy", "Shared"),
		TermFilter("instanceType", "t3.micro"),
		TermFilter("location", "US East (N. Virginia)"),
	}

	assert.Equal(t, c.Key("AmazonEC2", a, "us-east-1"), c.Key("AmazonEC2", b, "us-east-1"))

	c.Set("AmazonEC2", a, "us-east-1", sampleResult("AmazonEC2"))
	_, ok := c.Get("AmazonEC2", b, "us-east-1")
	assert.True(t, ok)
}

func TestCacheKeySeparatesQueries(t *testing.T) {
	c := NewCache(time.Hour)
	filters := []Filter{TermFilter("instanceType", "t3.micro")}

	assert.NotEqual(t,
		c.Key("AmazonEC2", filters, "us-east-1"),
		c.Key("AmazonEC2", filters, "us-west-2"))
	assert.NotEqual(t,
		c.Key("AmazonEC2", filters, "us-east-1"),
		c.Key("AmazonRDS", filters, "us-east-1"))
}

func TestCacheReplacesEntryWholesale(t *testing.T) {
	c := NewCache(time.Hour)
	filters := []Filter{TermFilter("instanceType", "t3.micro")}

	c.Set("AmazonEC2", filters, "us-east-1", sampleResult("AmazonEC2"))
	replacement := sampleResult("AmazonEC2")
	replacement.Count = 99
	c.Set("AmazonEC2", filters, "us-east-1", replacement)

	got, ok := c.Get("AmazonEC2", filters, "us-east-1")
	require.True(t, ok)
	assert.Equal(t, 99, got.Count)
	assert.Equal(t, 1, c.Len())
}
