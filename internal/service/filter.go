package service

import (
	"regexp"
	"strings"
)

// Platform-generated notices that must never reach the classifier. Group
// membership notices carry a left-to-right mark (U+200E) prefix on the wire.
// Each pattern is matched case-insensitively against the original body; any
// match makes the message a system message.
var systemMessagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\x{200E}.*(joined|added|removed|left|created)`),
	regexp.MustCompile(`(?i)messages and calls are end-to-end encrypted`),
	regexp.MustCompile(`(?i)^waiting for this message`),
	regexp.MustCompile(`(?i)^this message was deleted$`),
	regexp.MustCompile(`(?i)^you deleted this message$`),
	regexp.MustCompile(`(?i)^null$`),
}

// IsSystemMessage reports whether body is platform noise rather than user
// content. Pure and deterministic; the blank check runs on the trimmed body,
// every pattern on the original.
func IsSystemMessage(body string) bool {
	if strings.TrimSpace(body) == "" {
		return true
	}

	for _, pattern := range systemMessagePatterns {
		if pattern.MatchString(body) {
			return true
		}
	}

	return false
}
