// Package metrics holds shared metric definitions used across the service.
package metrics

// DefaultBuckets are latency histogram bucket boundaries in seconds. The upper
// buckets are generous because enumeration requests proxy a remote search API.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30} //nolint: gochecknoglobals
