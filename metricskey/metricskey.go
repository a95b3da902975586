package metricskey

import "github.com/effective-security/metrics"

// Perf
var (
	// PerfTokenOperation is perf metric
	PerfTokenOperation = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_token",
		Help:         "perf_token provides the sample metrics of token codec operations",
		RequiredTags: []string{"action"},
	}

	// PerfClaimsLoad is perf metric
	PerfClaimsLoad = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_claims_load",
		Help:         "perf_claims_load provides the sample metrics of claims file loading",
		RequiredTags: []string{"format"},
	}
)
