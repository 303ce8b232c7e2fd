package entropy

import (
	"math"
	"unicode/utf8"
)

type Confidence string

const (
	High   Confidence = "high"
	Medium Confidence = "medium"
	Low    Confidence = "low"
)

const DefaultThreshold = 3.5

// strings shorter than this are never treated as secrets by IsHighEntropy
const minSecretLength = 8

// Shannon returns the Shannon entropy of text in bits per character.
func Shannon(text string) float64 {
	if text == "" {
		return 0
	}

	// summed in first-occurrence order so repeated calls agree to the bit
	counts := make(map[rune]int)
	var order []rune
	for _, r := range text {
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	length := float64(utf8.RuneCountInString(text))

	var entropy float64
	for _, r := range order {
		p := float64(counts[r]) / length
		entropy -= p * math.Log2(p)
	}

	return entropy
}

func Classify(entropy float64) Confidence {
	switch {
	case entropy > 4.0:
		return High
	case entropy > 3.5:
		return Medium
	default:
		return Low
	}
}

func IsHighEntropy(text string, threshold float64) bool {
	if utf8.RuneCountInString(text) < minSecretLength {
		return false
	}

	return Shannon(text) >= threshold
}

// Round rounds entropy to three decimal places for reporting.
func Round(entropy float64) float64 {
	return math.Round(entropy*1000) / 1000
}

type Analysis struct {
	Text           string     `json:"text"`
	Length         int        `json:"length"`
	Entropy        float64    `json:"entropy"`
	IsLikelySecret bool       `json:"is_likely_secret"`
	Confidence     Confidence `json:"confidence"`
}

func Analyze(text string) Analysis {
	e := Shannon(text)

	return Analysis{
		Text:           text,
		Length:         utf8.RuneCountInString(text),
		Entropy:        Round(e),
		IsLikelySecret: IsHighEntropy(text, DefaultThreshold),
		Confidence:     Classify(e),
	}
}
