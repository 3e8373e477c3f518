package tools

import (
	"context"

	json "github.com/goccy/go-json"

	"github.com/junseok-oh/cloudquote/internal/models"
)

func (t *Toolkit) getEC2Pricing(ctx context.Context, args map[string]any) string {
	instanceType, err := requiredString(args, "instance_type")
	if err != nil {
		return errorJSON(err.Error())
	}
	sp, err := t.pricing.EC2InstancePricing(ctx, instanceType, stringArg(args, "os"), stringArg(args, "region"))
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(sp)
}

func (t *Toolkit) getEBSPricing(ctx context.Context, args map[string]any) string {
	volumeType, err := requiredString(args, "volume_type")
	if err != nil {
		return errorJSON(err.Error())
	}
	sizeGB := intArg(args, "size_gb", 100)
	sp, err := t.pricing.EBSVolumePricing(ctx, volumeType, stringArg(args, "region"), sizeGB)
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(sp)
}

func (t *Toolkit) getS3Pricing(ctx context.Context, args map[string]any) string {
	storageClass := stringArg(args, "storage_class")
	if storageClass == "" {
		storageClass = "standard"
	}
	storageGB := intArg(args, "storage_gb", 100)
	sp, err := t.pricing.S3StoragePricing(ctx, storageClass, stringArg(args, "region"), storageGB)
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(sp)
}

func (t *Toolkit) getRDSPricing(ctx context.Context, args map[string]any) string {
	instanceClass, err := requiredString(args, "instance_class")
	if err != nil {
		return errorJSON(err.Error())
	}
	engine, err := requiredString(args, "engine")
	if err != nil {
		return errorJSON(err.Error())
	}
	sp, err := t.pricing.RDSInstancePricing(ctx, instanceClass, engine,
		stringArg(args, "deployment_option"), stringArg(args, "region"))
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(sp)
}

func (t *Toolkit) getElastiCachePricing(ctx context.Context, args map[string]any) string {
	nodeType, err := requiredString(args, "node_type")
	if err != nil {
		return errorJSON(err.Error())
	}
	sp, err := t.pricing.ElastiCachePricing(ctx, nodeType, stringArg(args, "engine"), stringArg(args, "region"))
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(sp)
}

func (t *Toolkit) getOpenSearchPricing(ctx context.Context, args map[string]any) string {
	instanceType, err := requiredString(args, "instance_type")
	if err != nil {
		return errorJSON(err.Error())
	}
	sp, err := t.pricing.OpenSearchPricing(ctx, instanceType, stringArg(args, "region"))
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(sp)
}

func (t *Toolkit) getLoadBalancerPricing(ctx context.Context, args map[string]any) string {
	sp, err := t.pricing.LoadBalancerPricing(ctx, stringArg(args, "lb_type"), stringArg(args, "region"))
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(sp)
}

func (t *Toolkit) getDataTransferPricing(ctx context.Context, args map[string]any) string {
	toRegion, err := requiredString(args, "to_region")
	if err != nil {
		return errorJSON(err.Error())
	}
	tp, err := t.pricing.DataTransferPricing(ctx, stringArg(args, "from_region"), toRegion)
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(tp)
}

func (t *Toolkit) getInstanceTypes(ctx context.Context, args map[string]any) string {
	catalog, err := t.pricing.InstanceTypeCatalog(ctx, stringArg(args, "region"))
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(map[string]any{
		"count":          len(catalog),
		"instance_types": catalog,
	})
}

func (t *Toolkit) calculateTotalCost(ctx context.Context, args map[string]any) string {
	raw, ok := args["resources"]
	if !ok {
		return errorJSON(`missing required argument "resources"`)
	}

	// Round-trip through JSON so both typed and map-shaped inputs work.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return errorJSON("invalid resources argument: " + err.Error())
	}
	var resources []models.ResourceSpec
	if err := json.Unmarshal(encoded, &resources); err != nil {
		return errorJSON("invalid resources argument: " + err.Error())
	}
	if len(resources) == 0 {
		return errorJSON("resources must be a non-empty list")
	}

	report := t.aggregator.CalculateTotalCost(ctx, resources, stringArg(args, "region"))
	return respond(report)
}
