package requestvalidator

import (
	"mime"
	"strings"
)

// Media type matching scores. An exact containment match short-circuits
// before scoring applies.
const (
	scoreSubtypeWildcard = 2 // "type/*" where the type matches
	scoreFullWildcard    = 1 // "*/*"
)

// matchMediaType picks the best-matching media type key for a raw
// Content-Type header value. Keys must be in deterministic order (Go
// maps are unordered; the compiler stores them sorted), so ties at
// equal score break toward the earlier key.
//
// A missing header yields no match; the caller decides required-body
// policy. A malformed header is logged and treated as no match.
func matchMediaType(contentType string, keys []string, logger Logger) (string, bool) {
	if contentType == "" {
		return "", false
	}

	parsed, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		logger.Warn("failed to parse content type", "contentType", contentType, "error", err)
		return "", false
	}

	best := ""
	bestScore := 0
	for _, key := range keys {
		if strings.Contains(key, parsed) {
			return key, true
		}
		score := 0
		switch {
		case key == "*/*":
			score = scoreFullWildcard
		case strings.HasSuffix(key, "/*") && strings.HasPrefix(parsed, strings.TrimSuffix(key, "*")):
			score = scoreSubtypeWildcard
		}
		if score > bestScore {
			best = key
			bestScore = score
		}
	}
	return best, bestScore > 0
}
