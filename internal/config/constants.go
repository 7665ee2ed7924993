package config

import "time"

const (
	// Places API request timeout
	SearchTimeout = 10 * time.Second

	// Google invalidates a next_page_token for roughly this long after
	// issuing it; calling earlier returns INVALID_REQUEST.
	NextPageDelay = 2 * time.Second

	// Telegram limits
	MaxTelegramMessageLen = 4000

	// Session cache janitor interval
	SessionCleanup = 10 * time.Minute

	// Rate limits (events per second per chat, with burst)
	RateLimitPerSecond = 1.0
	RateLimitBurst     = 5
)
