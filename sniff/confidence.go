package sniff

import "github.com/vibeshield/shield/entropy"

var knownFormats = map[string]bool{
	OpenAI:        true,
	OpenAIProject: true,
	Brevo:         true,
	Google:        true,
	GitHubPAT:     true,
	GitHubOAuth:   true,
	AWSAccessKey:  true,
	StripeLive:    true,
	StripeTest:    true,
}

// ScoreConfidence rates a finding. Generic types can still score high when
// their entropy is large enough.
func ScoreConfidence(score float64, keyType string) entropy.Confidence {
	switch {
	case knownFormats[keyType] && score > 4.0:
		return entropy.High
	case score > 4.5:
		return entropy.High
	case score > 3.8:
		return entropy.Medium
	default:
		return entropy.Low
	}
}
