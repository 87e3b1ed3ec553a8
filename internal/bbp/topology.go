package bbp

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
)

// MinThreads and MaxThreads bound the worker count, per §4.G/§6 of the
// spec: 1 <= T <= 65535.
const (
	MinThreads = 1
	MaxThreads = 65535
)

// RecommendThreads returns a non-authoritative default worker count
// derived from the detected logical core count, used to resolve a
// threads argument of 0. It never overrides an explicit value.
func RecommendThreads() int {
	n := cpuid.CPU.LogicalCores
	if n < MinThreads {
		n = MinThreads
	}
	if n > MaxThreads {
		n = MaxThreads
	}
	return n
}

// ValidateThreads enforces the hard bound from §4.H/§6 and returns
// soft warnings - analogous to the reference's QPP parameter checks -
// for configurations that are valid but likely to perform poorly:
// oversubscribing far past the detected core count dilutes the shard
// contention guarantee the spec relies on (N_SHARDS >= T for negligible
// contention).
func ValidateThreads(threads, shardCount int) ([]string, error) {
	if threads < MinThreads || threads > MaxThreads {
		return nil, fmt.Errorf("threads must satisfy %d <= threads <= %d, got %d", MinThreads, MaxThreads, threads)
	}

	var warnings []string
	if cores := cpuid.CPU.LogicalCores; cores > 0 && threads > cores*4 {
		warnings = append(warnings, fmt.Sprintf("threads %d is far beyond the %d detected logical cores; expect diminishing returns", threads, cores))
	}
	if threads > shardCount {
		warnings = append(warnings, fmt.Sprintf("threads %d exceeds accumulator count %d; shard contention will rise above the negligible threshold the design assumes", threads, shardCount))
	}
	return warnings, nil
}
