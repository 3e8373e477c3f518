// Package recommend turns free-text requirement descriptions into
// structured profiles and ranks concrete resource configurations
// against them, attaching live prices where available.
package recommend

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// Pattern tables are ordered; the first match per field wins. English
// and Chinese keyword variants are intermixed. Extraction is best
// effort and non-authoritative: a miss leaves the field unset and
// consumers fall back to their own defaults.
var (
	cpuPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*个?\s*(?:v?cpus?|cores?|核心|核|处理器)`),
		regexp.MustCompile(`(?i)(?:cpu|处理器)[:：\s]*(\d+)`),
	}

	memoryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:gb|gib|g)\s*(?:of\s+)?(?:ram|memory|内存)`),
		regexp.MustCompile(`(?i)(?:memory|ram|内存)[:：\s]*(\d+(?:\.\d+)?)\s*(?:gb|gib|g)?`),
	}

	storagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(tb|gb)\s*(?:of\s+)?(?:storage|disk|ssd|存储|磁盘|硬盘|空间)`),
		regexp.MustCompile(`(?i)(?:storage|disk|存储|磁盘|硬盘)[:：\s]*(\d+(?:\.\d+)?)\s*(tb|gb)`),
	}

	storageTypePattern = regexp.MustCompile(`(?i)\b(gp2|gp3|io1|io2|st1|sc1)\b`)

	regionPattern = regexp.MustCompile(`(?i)\b((?:us|eu|ap|sa|ca|me|af|il)(?:-[a-z]+)+-\d)\b`)

	burstablePattern = regexp.MustCompile(`(?i)\b(?:t2|t3|t3a|t4g)\b|burstable|突发`)

	nonProductionPattern = regexp.MustCompile(`(?i)\b(?:dev|development|test|testing|staging|qa|sandbox|poc)\b|开发|测试|演示|沙箱`)
	productionPattern    = regexp.MustCompile(`(?i)\b(?:prod|production)\b|生产|正式`)
)

// dbEnginePatterns are ordered longest-name first so "aurora mysql"
// does not resolve to plain MySQL.
var dbEnginePatterns = []struct {
	pattern *regexp.Regexp
	engine  string
}{
	{regexp.MustCompile(`(?i)aurora[\s-]*postgres(?:ql)?`), "Aurora PostgreSQL"},
	{regexp.MustCompile(`(?i)aurora(?:[\s-]*mysql)?`), "Aurora MySQL"},
	{regexp.MustCompile(`(?i)postgres(?:ql)?`), "PostgreSQL"},
	{regexp.MustCompile(`(?i)mariadb`), "MariaDB"},
	{regexp.MustCompile(`(?i)mysql`), "MySQL"},
	{regexp.MustCompile(`(?i)oracle`), "Oracle"},
	{regexp.MustCompile(`(?i)sql\s*server`), "SQL Server"},
}

// cacheEnginePatterns are separate from the SQL engines so a cache
// mention never leaks into the relational engine field.
var cacheEnginePatterns = []struct {
	pattern *regexp.Regexp
	engine  string
}{
	{regexp.MustCompile(`(?i)memcached`), "Memcached"},
	{regexp.MustCompile(`(?i)redis`), "Redis"},
}

var deploymentPatterns = []struct {
	pattern *regexp.Regexp
	option  string
}{
	{regexp.MustCompile(`(?i)multi[\s-]*az|多可用区|高可用`), "Multi-AZ"},
	{regexp.MustCompile(`(?i)single[\s-]*az|单可用区`), "Single-AZ"},
}

var useCasePatterns = []struct {
	pattern *regexp.Regexp
	useCase string
}{
	{regexp.MustCompile(`(?i)web|website|网站|前端`), "web"},
	{regexp.MustCompile(`(?i)database|db\b|数据库`), "database"},
	{regexp.MustCompile(`(?i)cach(?:e|ing)|缓存`), "cache"},
	{regexp.MustCompile(`(?i)analytics|big\s*data|分析|大数据`), "analytics"},
	{regexp.MustCompile(`(?i)search|搜索`), "search"},
	{regexp.MustCompile(`(?i)archiv|backup|归档|备份`), "archive"},
	{regexp.MustCompile(`(?i)machine\s*learning|\bml\b|机器学习`), "ml"},
}

// Extract parses a free-text requirement description into a profile.
// It never errors; fields the patterns cannot find stay unset and
// is_production stays true unless a non-production keyword appears
// without a production keyword.
func Extract(description string) models.RequirementProfile {
	profile := models.RequirementProfile{IsProduction: true}

	for _, p := range cpuPatterns {
		if m := p.FindStringSubmatch(description); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				profile.CPUCores = &n
				break
			}
		}
	}

	for _, p := range memoryPatterns {
		if m := p.FindStringSubmatch(description); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
				profile.MemoryGB = &v
				break
			}
		}
	}

	for _, p := range storagePatterns {
		if m := p.FindStringSubmatch(description); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil || v <= 0 {
				continue
			}
			if strings.EqualFold(m[2], "tb") {
				v *= 1024
			}
			gb := int(v)
			profile.StorageSizeGB = &gb
			break
		}
	}

	if m := storageTypePattern.FindStringSubmatch(description); m != nil {
		profile.StorageType = strings.ToLower(m[1])
	}

	for _, e := range dbEnginePatterns {
		if e.pattern.MatchString(description) {
			profile.DBEngine = e.engine
			break
		}
	}

	for _, e := range cacheEnginePatterns {
		if e.pattern.MatchString(description) {
			profile.CacheEngine = e.engine
			break
		}
	}

	for _, d := range deploymentPatterns {
		if d.pattern.MatchString(description) {
			profile.DeploymentOption = d.option
			break
		}
	}

	if m := regionPattern.FindStringSubmatch(description); m != nil {
		profile.Region = strings.ToLower(m[1])
	}

	for _, u := range useCasePatterns {
		if u.pattern.MatchString(description) {
			profile.UseCase = u.useCase
			break
		}
	}

	profile.AllowBurstable = burstablePattern.MatchString(description)

	if nonProductionPattern.MatchString(description) && !productionPattern.MatchString(description) {
		profile.IsProduction = false
	}

	return profile
}
