package pricing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/rs/zerolog"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/utils"
)

// The Pricing API is only served from us-east-1 and ap-south-1.
const pricingEndpointRegion = "us-east-1"

// maxResultsPerPage is the GetProducts page size.
const maxResultsPerPage = 100

// GetProductsAPI covers the single Pricing API operation this package
// uses. *pricing.Client satisfies it, and it matches the SDK's
// GetProductsAPIClient so the paginator accepts it; unit tests swap in
// a stub.
type GetProductsAPI interface {
	GetProducts(ctx context.Context, params *pricing.GetProductsInput, optFns ...func(*pricing.Options)) (*pricing.GetProductsOutput, error)
}

// DescribeInstanceTypesAPI covers the EC2 metadata operation used for
// the instance type catalogue.
type DescribeInstanceTypesAPI interface {
	DescribeInstanceTypes(ctx context.Context, params *ec2.DescribeInstanceTypesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstanceTypesOutput, error)
}

// Client answers semantic pricing queries ("t3.micro, Linux, Seoul")
// against the Price List catalogue, consulting the injected Cache
// before any live call.
type Client struct {
	pricing GetProductsAPI
	ec2     DescribeInstanceTypesAPI
	cache   *Cache
	stats   *Stats
	logger  zerolog.Logger

	// instance type catalogue, fetched once per TTL window
	catalogMu       sync.Mutex
	catalog         []models.InstanceTypeInfo
	catalogStoredAt time.Time
}

// NewClient builds a Client with live AWS SDK clients. The pricing
// endpoint is pinned to us-east-1 regardless of the queried region.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewClient(ctx context.Context, ttl time.Duration, logger zerolog.Logger) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(pricingEndpointRegion))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return NewClientWith(
		pricing.NewFromConfig(cfg),
		ec2.NewFromConfig(cfg),
		NewCache(ttl),
		logger,
	), nil
}

// NewClientWith wires a Client from its parts. Tests use it to inject
// stub APIs and a cache with a controllable clock.
func NewClientWith(p GetProductsAPI, e DescribeInstanceTypesAPI, cache *Cache, logger zerolog.Logger) *Client {
	if cache == nil {
		cache = NewCache(DefaultCacheTTL)
	}
	return &Client{
		pricing: p,
		ec2:     e,
		cache:   cache,
		stats:   NewStats(),
		logger:  logger,
	}
}

// Stats exposes the API call counters for reporting.
func (c *Client) Stats() *Stats {
	return c.stats
}

// ValidateRegion resolves region case-insensitively against the region
// table. Unknown input falls back to the default region with a logged
// warning; this never fails.
func (c *Client) ValidateRegion(region string) string {
	normalized, ok := utils.NormalizeRegion(region)
	if !ok {
		c.logger.Warn().
			Str("region", region).
			Str("fallback", utils.DefaultRegion).
			Msg("unknown region, using default")
		return utils.DefaultRegion
	}
	return normalized
}

// getProducts runs one cached, paginated Price List query and
// normalizes the result.
func (c *Client) getProducts(ctx context.Context, serviceCode string, filters []Filter, region string) (*models.PricingResult, error) {
	if cached, ok := c.cache.Get(serviceCode, filters, region); ok {
		c.stats.RecordCacheHit(serviceCode, region)
		return cached, nil
	}

	input := &pricing.GetProductsInput{
		ServiceCode: aws.String(serviceCode),
		Filters:     toSDKFilters(filters),
		MaxResults:  aws.Int32(maxResultsPerPage),
	}

	var products []models.ProductRecord
	paginator := pricing.NewGetProductsPaginator(c.pricing, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			c.stats.RecordFailure(serviceCode, region)
			return nil, fmt.Errorf("error calling AWS Pricing API for %s: %w", serviceCode, err)
		}
		for _, raw := range page.PriceList {
			record, err := parseProduct(raw)
			if err != nil {
				// One malformed record should not poison the page.
				c.logger.Warn().Err(err).Str("service", serviceCode).Msg("skipping malformed price record")
				continue
			}
			products = append(products, record)
		}
	}

	result := &models.PricingResult{
		Service:  serviceCode,
		Region:   region,
		Products: products,
		Count:    len(products),
	}

	c.stats.RecordSuccess(serviceCode, region)
	c.cache.Set(serviceCode, filters, region, result)
	return result, nil
}

// quote runs getProducts and reduces the matches to a ServicePricing:
// defensively re-filtered on the requested attributes, with price
// dimensions split into on-demand and reserved buckets.
func (c *Client) quote(ctx context.Context, serviceCode string, filters []Filter, region string, want map[string]string) (*models.ServicePricing, error) {
	result, err := c.getProducts(ctx, serviceCode, filters, region)
	if err != nil {
		return nil, err
	}

	sp := &models.ServicePricing{
		Service: serviceCode,
		Region:  region,
	}
	for _, record := range result.Products {
		if !matchesAttributes(record, want) {
			continue
		}
		if sp.Attributes == nil {
			sp.Attributes = record.Attributes
		}
		sp.OnDemand = append(sp.OnDemand, record.OnDemand...)
		sp.Reserved = append(sp.Reserved, record.Reserved...)
	}
	return sp, nil
}
