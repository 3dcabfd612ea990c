// Package extract scans journal text for dates and secret codes.
package extract

import (
	"regexp"
	"strconv"
)

var (
	dateRe = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	codeRe = regexp.MustCompile(`AZMAR-\d{3}`)
)

// Dates returns every MM/DD/YYYY substring in text whose month is in [1,12]
// and day is in [1,31], in order of first appearance, duplicates preserved.
//
// The day bound is syntactic, not calendar-aware: "02/30/2024" is accepted.
// Extraction and validation are kept as separate stages so the bound check
// can be tightened later without touching the pattern.
func Dates(text string) []string {
	candidates := dateRe.FindAllString(text, -1)

	var valid []string
	for _, candidate := range candidates {
		if validDateBounds(candidate) {
			valid = append(valid, candidate)
		}
	}
	return valid
}

// validDateBounds interprets the first two digits as the month and the next
// two as the day, and checks both against their fixed bounds.
func validDateBounds(candidate string) bool {
	month, err := strconv.Atoi(candidate[0:2])
	if err != nil {
		return false
	}
	day, err := strconv.Atoi(candidate[3:5])
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// SecretCodes returns every AZMAR-XXX substring (XXX exactly three digits)
// in text, in order of first appearance, duplicates preserved. Like the
// shape match alone, a longer digit run still yields its first three digits:
// "AZMAR-1234" produces "AZMAR-123".
func SecretCodes(text string) []string {
	return codeRe.FindAllString(text, -1)
}
