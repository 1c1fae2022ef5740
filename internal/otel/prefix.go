package otel

// Metric name prefixes; each package defines its own metric names under one of these.
const (
	PrefixCache     = "cache"
	PrefixLives     = "lives"
	PrefixShowroom  = "showroom"
	PrefixDirectory = "directory"
)
