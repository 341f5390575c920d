package domain

import "strings"

// NormalizeMnemonic trims and upper-cases a commodity mnemonic.
// Empty input stays empty.
func NormalizeMnemonic(mnemonic string) string {
	return strings.ToUpper(strings.TrimSpace(mnemonic))
}

// NormalizeNamespace trims and upper-cases a commodity namespace.
// Empty input stays empty.
func NormalizeNamespace(namespace string) string {
	return strings.ToUpper(strings.TrimSpace(namespace))
}
