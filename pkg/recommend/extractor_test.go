package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractChineseDescription(t *testing.T) {
	profile := Extract("我需要2个cpu核心，8gb内存的服务器，用于生产环境，位于us-west-2")

	require.NotNil(t, profile.CPUCores)
	assert.Equal(t, 2, *profile.CPUCores)
	require.NotNil(t, profile.MemoryGB)
	assert.Equal(t, 8.0, *profile.MemoryGB)
	assert.Equal(t, "us-west-2", profile.Region)
	assert.True(t, profile.IsProduction)
}

func TestExtractEnglishDescription(t *testing.T) {
	profile := Extract("4 vCPUs, 16 GB of RAM and 500 GB storage on gp3 in eu-west-1 for development")

	require.NotNil(t, profile.CPUCores)
	assert.Equal(t, 4, *profile.CPUCores)
	require.NotNil(t, profile.MemoryGB)
	assert.Equal(t, 16.0, *profile.MemoryGB)
	require.NotNil(t, profile.StorageSizeGB)
	assert.Equal(t, 500, *profile.StorageSizeGB)
	assert.Equal(t, "gp3", profile.StorageType)
	assert.Equal(t, "eu-west-1", profile.Region)
	assert.False(t, profile.IsProduction)
}

func TestExtractConvertsTerabytes(t *testing.T) {
	profile := Extract("we need 2 TB of storage for backups")

	require.NotNil(t, profile.StorageSizeGB)
	assert.Equal(t, 2048, *profile.StorageSizeGB)
	assert.Equal(t, "archive", profile.UseCase)
}

func TestExtractDatabaseEngine(t *testing.T) {
	tests := []struct {
		name        string
		description string
		engine      string
	}{
		{"aurora postgres", "an aurora postgresql database", "Aurora PostgreSQL"},
		{"plain aurora", "migrate to aurora", "Aurora MySQL"},
		{"postgres", "a postgres database with 16gb memory", "PostgreSQL"},
		{"mysql", "mysql, multi-az", "MySQL"},
		{"sql server", "SQL Server on Windows", "SQL Server"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Extract(tt.description)
			assert.Equal(t, tt.engine, profile.DBEngine)
		})
	}
}

func TestExtractCacheEngine(t *testing.T) {
	assert.Equal(t, "Memcached", Extract("a memcached cluster for sessions").CacheEngine)
	assert.Equal(t, "Redis", Extract("redis cache with 8gb memory").CacheEngine)

	// Cache mentions stay out of the relational engine field.
	profile := Extract("redis cache in front of mysql")
	assert.Equal(t, "Redis", profile.CacheEngine)
	assert.Equal(t, "MySQL", profile.DBEngine)
	assert.Empty(t, Extract("a redis cache").DBEngine)
}

func TestExtractDeploymentOption(t *testing.T) {
	assert.Equal(t, "Multi-AZ", Extract("mysql with multi-az failover").DeploymentOption)
	assert.Equal(t, "Single-AZ", Extract("single az is fine").DeploymentOption)
	assert.Equal(t, "Multi-AZ", Extract("需要高可用的mysql数据库").DeploymentOption)
}

func TestExtractBurstableMention(t *testing.T) {
	assert.True(t, Extract("a t3 instance is fine for production").AllowBurstable)
	assert.True(t, Extract("burstable instances are acceptable").AllowBurstable)
	assert.False(t, Extract("2 cpu production server").AllowBurstable)
}

func TestExtractDefaultsToProduction(t *testing.T) {
	profile := Extract("a server with 8 cores")
	assert.True(t, profile.IsProduction)
	assert.Nil(t, profile.MemoryGB)
	assert.Empty(t, profile.Region)
}

func TestExtractNonProductionKeywords(t *testing.T) {
	assert.False(t, Extract("a staging server").IsProduction)
	assert.False(t, Extract("测试环境的服务器").IsProduction)
	// An explicit production keyword wins over a mixed mention.
	assert.True(t, Extract("production environment with a test suite").IsProduction)
}

func TestExtractEmptyInput(t *testing.T) {
	profile := Extract("")
	assert.Nil(t, profile.CPUCores)
	assert.Nil(t, profile.MemoryGB)
	assert.Nil(t, profile.StorageSizeGB)
	assert.True(t, profile.IsProduction)
}
