package pricing

import "sync"

// Stats tracks Pricing API call outcomes per service and region so the
// CLI can print a call summary after a run.
type Stats struct {
	mu     sync.RWMutex
	counts map[string]map[string]map[string]int // service -> region -> {success, failure, cache}
}

// NewStats creates an empty Stats tracker.
func NewStats() *Stats {
	return &Stats{counts: make(map[string]map[string]map[string]int)}
}

// RecordCacheHit counts a query answered from cache.
func (s *Stats) RecordCacheHit(service, region string) {
	s.record(service, region, "cache")
}

// RecordSuccess counts a live API call that succeeded.
func (s *Stats) RecordSuccess(service, region string) {
	s.record(service, region, "success")
}

// RecordFailure counts a live API call that failed.
func (s *Stats) RecordFailure(service, region string) {
	s.record(service, region, "failure")
}

func (s *Stats) record(service, region, statType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.counts[service]; !exists {
		s.counts[service] = make(map[string]map[string]int)
	}
	if _, exists := s.counts[service][region]; !exists {
		s.counts[service][region] = map[string]int{
			"success": 0,
			"failure": 0,
			"cache":   0,
		}
	}
	s.counts[service][region][statType]++
}

// Snapshot returns a deep copy of the counters.
func (s *Stats) Snapshot() map[string]map[string]map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]map[string]map[string]int, len(s.counts))
	for service, regions := range s.counts {
		out[service] = make(map[string]map[string]int, len(regions))
		for region, vals := range regions {
			cp := make(map[string]int, len(vals))
			for k, v := range vals {
				cp[k] = v
			}
			out[service][region] = cp
		}
	}
	return out
}
