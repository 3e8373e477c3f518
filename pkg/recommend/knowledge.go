package recommend

// catalogEntry is one row of a static knowledge table: a concrete
// identifier plus the characteristics the decision tables key on.
type catalogEntry struct {
	ID          string
	Description string
	UseCase     string
	Production  bool
}

// instanceFamilies characterizes EC2 families by their leading letters.
// The live instance-type catalogue supplies the concrete sizes; this
// table supplies descriptions and production suitability.
var instanceFamilies = map[string]catalogEntry{
	"t": {ID: "t", Description: "burstable general purpose", UseCase: "web", Production: false},
	"m": {ID: "m", Description: "general purpose, balanced compute and memory", UseCase: "web", Production: true},
	"c": {ID: "c", Description: "compute optimized", UseCase: "analytics", Production: true},
	"r": {ID: "r", Description: "memory optimized", UseCase: "database", Production: true},
	"x": {ID: "x", Description: "high memory", UseCase: "database", Production: true},
	"i": {ID: "i", Description: "storage optimized, local NVMe", UseCase: "database", Production: true},
	"d": {ID: "d", Description: "dense HDD storage", UseCase: "analytics", Production: true},
	"g": {ID: "g", Description: "GPU accelerated", UseCase: "ml", Production: true},
	"p": {ID: "p", Description: "GPU accelerated training", UseCase: "ml", Production: true},
}

var volumeTypeCatalog = []catalogEntry{
	{ID: "gp3", Description: "general purpose SSD, baseline 3000 IOPS", UseCase: "web", Production: true},
	{ID: "io2", Description: "provisioned IOPS SSD, highest durability", UseCase: "database", Production: true},
	{ID: "st1", Description: "throughput optimized HDD", UseCase: "analytics", Production: true},
	{ID: "gp2", Description: "previous generation general purpose SSD", UseCase: "web", Production: true},
	{ID: "io1", Description: "previous generation provisioned IOPS SSD", UseCase: "database", Production: true},
	{ID: "sc1", Description: "cold HDD, lowest cost per GB", UseCase: "archive", Production: false},
	{ID: "standard", Description: "previous generation magnetic", UseCase: "archive", Production: false},
}

var storageClassCatalog = []catalogEntry{
	{ID: "standard", Description: "frequently accessed data", UseCase: "web", Production: true},
	{ID: "intelligent_tiering", Description: "automatic tiering for unknown access patterns", UseCase: "analytics", Production: true},
	{ID: "standard_ia", Description: "infrequently accessed data", UseCase: "archive", Production: true},
	{ID: "onezone_ia", Description: "infrequent access, single AZ, non-critical data", UseCase: "archive", Production: false},
	{ID: "glacier", Description: "archival with minutes-to-hours retrieval", UseCase: "archive", Production: true},
	{ID: "glacier_deep_archive", Description: "lowest cost long-term archive", UseCase: "archive", Production: true},
}

// rdsClassForMemory maps a requested memory floor onto an instance
// class. Rows are ordered largest first; the first row whose MinGB the
// request meets wins.
var rdsClassCatalog = []struct {
	catalogEntry
	MinGB float64
}{
	{catalogEntry{ID: "db.r5.2xlarge", Description: "memory optimized, 8 vCPU / 64 GiB", UseCase: "database", Production: true}, 64},
	{catalogEntry{ID: "db.r5.xlarge", Description: "memory optimized, 4 vCPU / 32 GiB", UseCase: "database", Production: true}, 32},
	{catalogEntry{ID: "db.r5.large", Description: "memory optimized, 2 vCPU / 16 GiB", UseCase: "database", Production: true}, 16},
	{catalogEntry{ID: "db.m5.xlarge", Description: "general purpose, 4 vCPU / 16 GiB", UseCase: "database", Production: true}, 12},
	{catalogEntry{ID: "db.m5.large", Description: "general purpose, 2 vCPU / 8 GiB", UseCase: "database", Production: true}, 0},
}

var rdsNonProductionClass = catalogEntry{
	ID: "db.t3.medium", Description: "burstable, 2 vCPU / 4 GiB", UseCase: "database", Production: false,
}

var cacheNodeCatalog = []struct {
	catalogEntry
	MinGB float64
}{
	{catalogEntry{ID: "cache.r5.2xlarge", Description: "memory optimized, 52 GiB", UseCase: "cache", Production: true}, 32},
	{catalogEntry{ID: "cache.r5.xlarge", Description: "memory optimized, 26 GiB", UseCase: "cache", Production: true}, 16},
	{catalogEntry{ID: "cache.r5.large", Description: "memory optimized, 13 GiB", UseCase: "cache", Production: true}, 8},
	{catalogEntry{ID: "cache.m5.large", Description: "general purpose, 6.4 GiB", UseCase: "cache", Production: true}, 0},
}

var cacheNonProductionNode = catalogEntry{
	ID: "cache.t3.medium", Description: "burstable, 3.1 GiB", UseCase: "cache", Production: false,
}

var openSearchNodeCatalog = []struct {
	catalogEntry
	MinGB float64
}{
	{catalogEntry{ID: "r6g.xlarge.search", Description: "memory optimized, 4 vCPU / 32 GiB", UseCase: "search", Production: true}, 32},
	{catalogEntry{ID: "r6g.large.search", Description: "memory optimized, 2 vCPU / 16 GiB", UseCase: "search", Production: true}, 16},
	{catalogEntry{ID: "m6g.large.search", Description: "general purpose, 2 vCPU / 8 GiB", UseCase: "search", Production: true}, 0},
}

var openSearchNonProductionNode = catalogEntry{
	ID: "t3.small.search", Description: "burstable, 2 vCPU / 2 GiB", UseCase: "search", Production: false,
}

var lbTypeCatalog = []catalogEntry{
	{ID: "application", Description: "layer 7, HTTP/HTTPS routing", UseCase: "web", Production: true},
	{ID: "network", Description: "layer 4, high throughput TCP/UDP", UseCase: "database", Production: true},
	{ID: "gateway", Description: "third-party virtual appliances", UseCase: "web", Production: true},
}

var dbEngineCatalog = map[string]catalogEntry{
	"MySQL":             {ID: "MySQL", Description: "open-source relational database", UseCase: "database", Production: true},
	"PostgreSQL":        {ID: "PostgreSQL", Description: "open-source relational database with advanced SQL features", UseCase: "database", Production: true},
	"MariaDB":           {ID: "MariaDB", Description: "MySQL-compatible community fork", UseCase: "database", Production: true},
	"Aurora MySQL":      {ID: "Aurora MySQL", Description: "cloud-native MySQL-compatible engine", UseCase: "database", Production: true},
	"Aurora PostgreSQL": {ID: "Aurora PostgreSQL", Description: "cloud-native PostgreSQL-compatible engine", UseCase: "database", Production: true},
	"Oracle":            {ID: "Oracle", Description: "commercial enterprise database", UseCase: "database", Production: true},
	"SQL Server":        {ID: "SQL Server", Description: "commercial database for Windows workloads", UseCase: "database", Production: true},
}
