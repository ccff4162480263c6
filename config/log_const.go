package config

// Component names attached to every log entry so interleaved
// output can be traced back to its subsystem.
const (
	ComponentApp       = "APP"
	ComponentGenerator = "GENERATOR"
	ComponentAPI       = "API"
)
