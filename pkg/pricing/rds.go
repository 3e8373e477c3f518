package pricing

import (
	"context"
	"fmt"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/utils"
)

// validDBEngines maps accepted engine names to the Price List
// databaseEngine attribute values.
var validDBEngines = map[string]string{
	"mysql":             "MySQL",
	"postgresql":        "PostgreSQL",
	"mariadb":           "MariaDB",
	"oracle":            "Oracle",
	"sql server":        "SQL Server",
	"aurora mysql":      "Aurora MySQL",
	"aurora postgresql": "Aurora PostgreSQL",
}

// validDeploymentOptions are the accepted RDS deployment modes.
var validDeploymentOptions = map[string]string{
	"single-az": "Single-AZ",
	"multi-az":  "Multi-AZ",
}

func dbEngineOptions() []string {
	opts := make([]string, 0, len(validDBEngines))
	for _, v := range validDBEngines {
		opts = append(opts, v)
	}
	return opts
}

func deploymentOptions() []string {
	opts := make([]string, 0, len(validDeploymentOptions))
	for _, v := range validDeploymentOptions {
		opts = append(opts, v)
	}
	return opts
}

// RDSInstancePricing quotes on-demand and reserved rates for an RDS
// instance class running the given engine and deployment option.
func (c *Client) RDSInstancePricing(ctx context.Context, instanceClass, engine, deploymentOption, region string) (*models.ServicePricing, error) {
	engineValue, ok := validDBEngines[lower(engine)]
	if !ok {
		return nil, newValidationError("database engine", engine, dbEngineOptions())
	}
	if deploymentOption == "" {
		deploymentOption = "Single-AZ"
	}
	deployValue, ok := validDeploymentOptions[lower(deploymentOption)]
	if !ok {
		return nil, newValidationError("deployment option", deploymentOption, deploymentOptions())
	}
	region = c.ValidateRegion(region)

	filters := []Filter{
		TermFilter("instanceType", instanceClass),
		TermFilter("databaseEngine", engineValue),
		TermFilter("deploymentOption", deployValue),
		TermFilter("location", utils.GetRegionDescriptiveName(region)),
	}

	sp, err := c.quote(ctx, "AmazonRDS", filters, region, map[string]string{
		"instanceType":     instanceClass,
		"databaseEngine":   engineValue,
		"deploymentOption": deployValue,
	})
	if err != nil {
		return nil, err
	}
	if len(sp.OnDemand) == 0 && len(sp.Reserved) == 0 {
		return nil, fmt.Errorf("no pricing found for %s (%s, %s) in %s",
			instanceClass, engineValue, deployValue, region)
	}
	return sp, nil
}

// RDSStoragePricing quotes the per-GB-month rate for RDS storage of the
// given volume type, with an optional derived monthly estimate.
func (c *Client) RDSStoragePricing(ctx context.Context, volumeType, deploymentOption, region string, sizeGB int) (*models.ServicePricing, error) {
	if deploymentOption == "" {
		deploymentOption = "Single-AZ"
	}
	deployValue, ok := validDeploymentOptions[lower(deploymentOption)]
	if !ok {
		return nil, newValidationError("deployment option", deploymentOption, deploymentOptions())
	}
	region = c.ValidateRegion(region)

	filters := []Filter{
		TermFilter("productFamily", "Database Storage"),
		TermFilter("volumeType", volumeType),
		TermFilter("deploymentOption", deployValue),
		TermFilter("location", utils.GetRegionDescriptiveName(region)),
	}

	sp, err := c.quote(ctx, "AmazonRDS", filters, region, map[string]string{
		"volumeType":       volumeType,
		"deploymentOption": deployValue,
	})
	if err != nil {
		return nil, err
	}
	if len(sp.OnDemand) == 0 {
		return nil, fmt.Errorf("no RDS storage pricing found for %s in %s", volumeType, region)
	}

	if sizeGB > 0 {
		if rate, ok := sp.RateForUnit("GB-Mo"); ok {
			monthly := rate * float64(sizeGB)
			sp.EstimatedMonthly = &monthly
		}
	}
	return sp, nil
}
