package sniff

import (
	"strings"
	"unicode/utf8"

	"github.com/vibeshield/shield/sniff/matchers"
)

var placeholderTokens = []string{
	"YOUR_API_KEY",
	"API_KEY_HERE",
	"REPLACE_ME",
	"CHANGE_THIS",
	"PUT_YOUR_KEY_HERE",
	"INSERT_KEY_HERE",
	"ENTER_API_KEY",
}

var placeholderMatchers = func() []matchers.Matcher {
	ms := make([]matchers.Matcher, len(placeholderTokens))
	for i, token := range placeholderTokens {
		ms[i] = matchers.Upcased(matchers.Substring(token))
	}
	return ms
}()

const (
	minDistinctCharacters = 5
	maxCharacterShare     = 0.4
)

// IsPlaceholder reports whether text looks like a stand-in value rather than
// a real credential.
func IsPlaceholder(text string) bool {
	length := utf8.RuneCountInString(text)
	if length == 0 {
		return true
	}

	for _, matcher := range placeholderMatchers {
		matched, start, end := matcher.Match([]byte(text))
		if matched && float64(end-start)/float64(length) > 0.5 {
			return true
		}
	}

	distinct := make(map[rune]struct{})
	for _, r := range strings.ToLower(text) {
		distinct[r] = struct{}{}
	}
	if len(distinct) < minDistinctCharacters {
		return true
	}

	counts := make(map[rune]int)
	highest := 0
	for _, r := range text {
		counts[r]++
		if counts[r] > highest {
			highest = counts[r]
		}
	}

	return float64(highest)/float64(length) > maxCharacterShare
}
