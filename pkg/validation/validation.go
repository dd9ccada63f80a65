// Package validation checks untrusted input before it reaches the registry:
// JSON payloads, quantity expressions and catalog identifiers.
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Size limits for untrusted input.
const (
	MaxPayloadSize   = 64 * 1024 // 64KB max JSON payload
	MaxExpressionLen = 128
	MaxSymbolLen     = 16
	MaxIdentifierLen = 64
	MaxDocCommentLen = 200
)

var (
	// Letters, digits and symbol runes such as ☉. No spaces, no slash.
	validSymbolChars = regexp.MustCompile(`^[\p{L}\p{N}\p{So}_]+$`)

	// Exported Go identifiers, since unit names become type names.
	validIdentifier = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

	// Lower-case Go package names.
	validPackageName = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
)

// ValidatePayload validates a raw JSON payload against size and format
// constraints.
func ValidatePayload(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("payload cannot be empty")
	}

	if len(data) > MaxPayloadSize {
		return fmt.Errorf("payload too large: %d bytes (max %d)", len(data), MaxPayloadSize)
	}

	if !json.Valid(data) {
		return fmt.Errorf("invalid JSON format")
	}

	return nil
}

// ValidateExpression validates and trims a quantity expression such as
// "12.5 Km/sec".
func ValidateExpression(expr string) (string, error) {
	if expr == "" {
		return "", fmt.Errorf("expression cannot be empty")
	}

	// Check length
	if len(expr) > MaxExpressionLen {
		return "", fmt.Errorf("expression too long: %d characters (max %d)", len(expr), MaxExpressionLen)
	}

	// Check UTF-8 validity
	if !utf8.ValidString(expr) {
		return "", fmt.Errorf("expression contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return "", fmt.Errorf("expression cannot be only whitespace")
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("expression contains control characters")
		}
	}

	return trimmed, nil
}

// ValidateSymbol validates a unit symbol as displayed after a value.
func ValidateSymbol(sym string) error {
	if sym == "" {
		return fmt.Errorf("symbol cannot be empty")
	}

	if utf8.RuneCountInString(sym) > MaxSymbolLen {
		return fmt.Errorf("symbol too long: %q (max %d characters)", sym, MaxSymbolLen)
	}

	if !utf8.ValidString(sym) {
		return fmt.Errorf("symbol contains invalid UTF-8 characters")
	}

	if !validSymbolChars.MatchString(sym) {
		return fmt.Errorf("symbol %q contains invalid characters (only letters, digits, underscores and symbols allowed)", sym)
	}

	return nil
}

// ValidateIdentifier validates a unit, quantity or dimension name that will
// be emitted as an exported Go identifier.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if len(name) > MaxIdentifierLen {
		return fmt.Errorf("identifier too long: %d characters (max %d)", len(name), MaxIdentifierLen)
	}
	if !validIdentifier.MatchString(name) {
		return fmt.Errorf("identifier %q must be an exported Go name (A-Z followed by letters or digits)", name)
	}
	return nil
}

// ValidatePackageName validates the Go package a dimension is generated into.
func ValidatePackageName(name string) error {
	if !validPackageName.MatchString(name) {
		return fmt.Errorf("invalid package name %q (lower-case letters and digits only)", name)
	}
	return nil
}

// ValidateDocComment validates the free text that is spliced into a
// generated doc comment.
func ValidateDocComment(doc string) error {
	if strings.TrimSpace(doc) == "" {
		return fmt.Errorf("doc comment cannot be empty")
	}
	if len(doc) > MaxDocCommentLen {
		return fmt.Errorf("doc comment too long: %d characters (max %d)", len(doc), MaxDocCommentLen)
	}
	if strings.ContainsAny(doc, "\n\r") || strings.Contains(doc, "*/") {
		return fmt.Errorf("doc comment must be a single line of plain text")
	}
	return nil
}

// ValidateIDRange validates a [lo, hi] registry id range.
func ValidateIDRange(lo, hi uint32) error {
	if lo == 0 {
		return fmt.Errorf("id range cannot start at 0")
	}
	if hi < lo {
		return fmt.Errorf("invalid id range: [%d, %d]", lo, hi)
	}
	return nil
}
