// Package strutil provides small sequence and string utilities: in-place
// reversal, palindrome checking that ignores non-alphanumeric runes, and
// order-preserving de-duplication. All functions are pure linear scans.
package strutil
