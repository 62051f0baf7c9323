package common

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
// Used for log timestamps so entries sort lexicographically.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"
