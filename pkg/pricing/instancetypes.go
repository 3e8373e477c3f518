package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// InstanceTypeCatalog returns the EC2 instance type metadata catalogue:
// one row per current-generation type with vCPU, memory, architecture,
// network performance and instance storage. The catalogue is cached
// with the same TTL discipline as pricing queries; it is large and
// near-identical across regions, so one copy per client is kept.
func (c *Client) InstanceTypeCatalog(ctx context.Context, region string) ([]models.InstanceTypeInfo, error) {
	region = c.ValidateRegion(region)

	c.catalogMu.Lock()
	defer c.catalogMu.Unlock()

	if c.catalog != nil && time.Since(c.catalogStoredAt) < DefaultCacheTTL {
		c.stats.RecordCacheHit("EC2InstanceTypes", region)
		return c.catalog, nil
	}

	input := &ec2.DescribeInstanceTypesInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("current-generation"),
				Values: []string{"true"},
			},
		},
	}

	var out []models.InstanceTypeInfo
	paginator := ec2.NewDescribeInstanceTypesPaginator(c.ec2, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			c.stats.RecordFailure("EC2InstanceTypes", region)
			return nil, fmt.Errorf("error querying instance types: %w", err)
		}
		for _, t := range page.InstanceTypes {
			out = append(out, toInstanceTypeInfo(t))
		}
	}

	c.stats.RecordSuccess("EC2InstanceTypes", region)
	c.catalog = out
	c.catalogStoredAt = time.Now()
	return out, nil
}

func toInstanceTypeInfo(t ec2types.InstanceTypeInfo) models.InstanceTypeInfo {
	info := models.InstanceTypeInfo{
		InstanceType: string(t.InstanceType),
		Family:       InstanceFamily(string(t.InstanceType)),
	}
	if t.VCpuInfo != nil && t.VCpuInfo.DefaultVCpus != nil {
		info.VCPU = *t.VCpuInfo.DefaultVCpus
	}
	if t.MemoryInfo != nil && t.MemoryInfo.SizeInMiB != nil {
		info.MemoryGiB = float64(*t.MemoryInfo.SizeInMiB) / 1024.0
	}
	if t.ProcessorInfo != nil {
		for _, arch := range t.ProcessorInfo.SupportedArchitectures {
			info.Architectures = append(info.Architectures, string(arch))
		}
	}
	if t.NetworkInfo != nil && t.NetworkInfo.NetworkPerformance != nil {
		info.NetworkPerformance = *t.NetworkInfo.NetworkPerformance
	}
	if t.InstanceStorageSupported != nil && *t.InstanceStorageSupported &&
		t.InstanceStorageInfo != nil && t.InstanceStorageInfo.TotalSizeInGB != nil {
		info.Storage = fmt.Sprintf("%d GB instance storage", *t.InstanceStorageInfo.TotalSizeInGB)
	} else {
		info.Storage = "EBS only"
	}
	return info
}

// InstanceFamily extracts the family prefix of an instance type name,
// e.g. "m5" from "m5.xlarge".
func InstanceFamily(instanceType string) string {
	if i := strings.IndexByte(instanceType, '.'); i > 0 {
		return instanceType[:i]
	}
	return instanceType
}
