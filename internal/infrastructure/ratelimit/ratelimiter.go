package ratelimit

import "time"

// SubmissionLimits bounds how often a single patient can submit triage
// requests. A zero limit disables that window.
type SubmissionLimits struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	Allow(key string, limits SubmissionLimits) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
