package sniff

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vibeshield/shield/sniff/matchers"
)

const (
	OpenAIProject = "openai_project"
	OpenAI        = "openai"
	Brevo         = "brevo"
	GitHubPAT     = "github_pat"
	GitHubOAuth   = "github_oauth"
	GitHubSecret  = "github_secret"
	Google        = "google"
	AWSAccessKey  = "aws_access_key"
	StripeLive    = "stripe_live"
	StripeTest    = "stripe_test"
	StripePubLive = "stripe_pub_live"
	StripePubTest = "stripe_pub_test"
	GenericAPIKey = "generic_api_key"
	GenericApikey = "generic_apikey"
	QuotedString  = "quoted_string"
	Custom        = "custom"
)

const openAIProjectPattern = `sk-proj-[A-Za-z0-9]{40,}`
const openAIPattern = `sk-[A-Za-z0-9]{40,}`
const brevoPattern = `xkeysib-[A-Za-z0-9]{60,}`
const gitHubPATPattern = `ghp_[A-Za-z0-9]{36,}`
const gitHubOAuthPattern = `gho_[A-Za-z0-9]{36,}`
const gitHubSecretPattern = `ghs_[A-Za-z0-9]{36,}`
const googlePattern = `AIza[0-9A-Za-z\-_]{35}`
const awsAccessKeyIDPattern = `AKIA[0-9A-Z]{16}`
const stripeLivePattern = `sk_live_[0-9a-zA-Z]{24,}`
const stripeTestPattern = `sk_test_[0-9a-zA-Z]{24,}`
const stripePubLivePattern = `pk_live_[0-9a-zA-Z]{24,}`
const stripePubTestPattern = `pk_test_[0-9a-zA-Z]{24,}`

// The assignment patterns capture only the quoted value. The quoted string
// rule also fires on long literals that are not secrets, such as paths or
// encoded data.
const apikeyAssignmentPattern = `apikey\s*[=:]\s*["']([A-Za-z0-9_\-]{25,})["']`
const apiKeyAssignmentPattern = `api[_-]?key\s*[=:]\s*["']([A-Za-z0-9_\-]{25,})["']`
const quotedStringPattern = `["']([A-Za-z0-9_\-]{30,})["']`

type Rule struct {
	KeyType string
	Matcher matchers.Matcher
}

func NewRule(keyType, pattern string) (Rule, error) {
	if keyType == "" {
		return Rule{}, errors.New("rule type must not be empty")
	}

	matcher, err := matchers.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid pattern for rule %q: %w", keyType, err)
	}

	return Rule{KeyType: keyType, Matcher: matcher}, nil
}

func prefixed(keyType, pattern, prefix string) Rule {
	return Rule{
		KeyType: keyType,
		Matcher: matchers.Filter(matchers.Format(pattern), prefix),
	}
}

// Vendor formats come first so that a token also matched by a generic rule
// keeps its vendor type.
var defaultRules = []Rule{
	prefixed(OpenAIProject, openAIProjectPattern, "sk-proj-"),
	prefixed(OpenAI, openAIPattern, "sk-"),
	prefixed(Brevo, brevoPattern, "xkeysib-"),
	prefixed(GitHubPAT, gitHubPATPattern, "ghp_"),
	prefixed(GitHubOAuth, gitHubOAuthPattern, "gho_"),
	prefixed(GitHubSecret, gitHubSecretPattern, "ghs_"),
	prefixed(Google, googlePattern, "AIza"),
	prefixed(AWSAccessKey, awsAccessKeyIDPattern, "AKIA"),
	prefixed(StripeLive, stripeLivePattern, "sk_live_"),
	prefixed(StripeTest, stripeTestPattern, "sk_test_"),
	prefixed(StripePubLive, stripePubLivePattern, "pk_live_"),
	prefixed(StripePubTest, stripePubTestPattern, "pk_test_"),
	{KeyType: GenericApikey, Matcher: matchers.Format(apikeyAssignmentPattern)},
	{KeyType: GenericAPIKey, Matcher: matchers.Format(apiKeyAssignmentPattern)},
	{KeyType: QuotedString, Matcher: matchers.Format(quotedStringPattern)},
}

// DefaultRules returns the built-in catalog in evaluation order.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

type rulesFile struct {
	Rules []struct {
		Type  string `yaml:"type"`
		Regex string `yaml:"regex"`
	} `yaml:"rules"`
}

// RulesFromYAML reads rules of the form
//
//   rules:
//     - type: internal_token
//       regex: 'itk_[A-Za-z0-9]{32}'
//
// keeping their order. A rule without a type is labelled "custom".
func RulesFromYAML(r io.Reader) ([]Rule, error) {
	var file rulesFile

	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return []Rule{}, nil
		}
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for i, entry := range file.Rules {
		keyType := entry.Type
		if keyType == "" {
			keyType = Custom
		}

		if entry.Regex == "" {
			return nil, fmt.Errorf("rule %d (%s) has no regex", i+1, keyType)
		}

		rule, err := NewRule(keyType, entry.Regex)
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	return rules, nil
}
