package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredPriceFlags(t *testing.T) {
	tests := []struct {
		name         string
		service      string
		instanceType string
		volumeType   string
		nodeType     string
		engine       string
		toRegion     string
		wantErr      string
	}{
		{name: "ec2 missing instance type", service: "ec2", wantErr: "--instance-type"},
		{name: "ec2 ok", service: "ec2", instanceType: "t3.micro"},
		{name: "rds missing engine", service: "rds", instanceType: "db.m5.large", wantErr: "--engine is required"},
		{name: "rds missing instance type", service: "rds", engine: "MySQL", wantErr: "--instance-type"},
		{name: "rds ok", service: "rds", instanceType: "db.m5.large", engine: "MySQL"},
		{name: "ebs missing volume type", service: "ebs", wantErr: "--volume-type"},
		{name: "elasticache missing node type", service: "elasticache", wantErr: "--node-type"},
		{name: "elasticache engine optional", service: "elasticache", nodeType: "cache.m5.large"},
		{name: "network missing to-region", service: "network", wantErr: "--to-region"},
		{name: "s3 needs nothing", service: "s3"},
		{name: "instance-types needs nothing", service: "instance-types"},
		{name: "unknown service", service: "dynamodb", wantErr: "unknown service"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requiredPriceFlags(tt.service, tt.instanceType, tt.volumeType, tt.nodeType, tt.engine, tt.toRegion)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
