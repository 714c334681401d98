package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration reads a config duration such as "5s" or "4h". An empty value
// means unset and yields fallback quietly; a malformed one is logged and
// also yields fallback, so a typo never stops the server from starting.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Err(err).Str("value", value).Dur("fallback", fallback).Msg("Invalid duration, using fallback")
		return fallback
	}
	return d
}
