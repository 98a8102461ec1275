// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. This package helps prevent
// the accidental leakage of credentials, API keys, file paths, and other
// sensitive data that might be included in error messages.
package redact

import (
	"regexp"
	"strings"
	"sync"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedSecretPlaceholder     = "[REDACTED_SECRET]"
)

// Precompiled regex patterns
var (
	// Google API keys (Gemini, Maps, ...) have a fixed shape.
	googleAPIKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

	// JWT token pattern - matches the standard three-part base64url-encoded JWT token format
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
	bearerRegex   = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`)

	// Credentials and tokens
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)
	apiKeyRegex   = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Stack trace fragments
	stackTraceRegex = regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// File paths
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	)

	// All patterns in application order. Specific key shapes run before the
	// generic key=value rule, stack traces before paths, paths before hosts.
	patterns = []*regexp.Regexp{
		googleAPIKeyRegex, jwtTokenRegex, bearerRegex, passwordRegex, apiKeyRegex,
		stackTraceRegex, emailRegex, unixPathRegex, winPathRegex, hostPortRegex,
	}

	patternPlaceholders = map[*regexp.Regexp]string{
		googleAPIKeyRegex: RedactedKeyPlaceholder,
		jwtTokenRegex:     "[REDACTED_JWT]",
		bearerRegex:       "[REDACTED_TOKEN]",
		passwordRegex:     RedactedCredentialPlaceholder,
		apiKeyRegex:       RedactedKeyPlaceholder,
		stackTraceRegex:   "[STACK_TRACE_REDACTED]",
		emailRegex:        "[REDACTED_EMAIL]",
		unixPathRegex:     RedactedPathPlaceholder,
		winPathRegex:      RedactedPathPlaceholder,
		hostPortRegex:     "[REDACTED_HOST]",
	}

	// secrets are literal values registered at startup, such as the
	// configured upstream credential, scrubbed regardless of their shape.
	secrets []string

	mu sync.RWMutex
)

// MinSecretLength is the shortest literal RegisterSecret accepts. Shorter
// values would match inside ordinary words.
const MinSecretLength = 8

// RegisterSecret adds a literal value that String will always replace.
// Values shorter than MinSecretLength are ignored.
func RegisterSecret(secret string) {
	if len(secret) < MinSecretLength {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	for _, s := range secrets {
		if s == secret {
			return
		}
	}
	secrets = append(secrets, secret)
}

// ClearSecrets forgets every registered literal secret.
func ClearSecrets() {
	mu.Lock()
	defer mu.Unlock()
	secrets = nil
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	mu.RLock()
	defer mu.RUnlock()

	result := input
	for _, s := range secrets {
		result = strings.ReplaceAll(result, s, RedactedSecretPlaceholder)
	}

	for _, pattern := range patterns {
		placeholder := RedactionPlaceholder
		if ph, ok := patternPlaceholders[pattern]; ok {
			placeholder = ph
		}
		result = pattern.ReplaceAllString(result, placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
