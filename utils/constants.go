package utils

import "time"

// DateLayout is the canonical calendar-date format used across the API.
const DateLayout = "2006-01-02"

// ClockLayout is the canonical "HH:MM" 24-hour time-of-day format.
const ClockLayout = "15:04"

// AuthSessionPrefix is the prefix used for Redis auth session keys.
const AuthSessionPrefix = "authSession:"

// AuthSessionTTL is the time-to-live for auth session entries.
const AuthSessionTTL = 72 * time.Hour
