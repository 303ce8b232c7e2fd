package sniff

import (
	"sort"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/vibeshield/shield/entropy"
	"github.com/vibeshield/shield/scanners"
	"github.com/vibeshield/shield/sniff/matchers"
)

const (
	DefaultEntropyThreshold = entropy.DefaultThreshold
	DefaultMinLength        = 20
)

type Config struct {
	EntropyThreshold float64
	MinLength        int
}

func DefaultConfig() Config {
	return Config{
		EntropyThreshold: DefaultEntropyThreshold,
		MinLength:        DefaultMinLength,
	}
}

type Sniffer interface {
	Sniff(lager.Logger, []byte, FindingHandlerFunc) error
}

type FindingHandlerFunc func(lager.Logger, scanners.Finding) error

type sniffer struct {
	rules  []Rule
	config Config
}

// NewSniffer returns a Sniffer that evaluates rules in the given order. The
// rules are not copied and must not be modified afterwards.
func NewSniffer(rules []Rule, config Config) Sniffer {
	return &sniffer{
		rules:  rules,
		config: config,
	}
}

func NewDefaultSniffer() Sniffer {
	return NewSniffer(DefaultRules(), DefaultConfig())
}

// Sniff hands every accepted finding to handleFinding in catalog order. A
// span reported by an earlier rule is never reported again by a later one.
func (s *sniffer) Sniff(
	logger lager.Logger,
	content []byte,
	handleFinding FindingHandlerFunc,
) error {
	logger = logger.Session("sniff", lager.Data{"rules": len(s.rules), "bytes": len(content)})
	logger.Debug("starting")

	var result error

	lines := newLineIndex(content)
	seen := make(map[matchers.Span]struct{})

	for _, rule := range s.rules {
		for _, span := range rule.Matcher.MatchAll(content) {
			if _, found := seen[span]; found {
				continue
			}

			candidate := scanners.Candidate{
				KeyType: rule.KeyType,
				Content: content,
				Start:   span.Start,
				End:     span.End,
			}

			score, ok := s.accept(candidate)
			if !ok {
				continue
			}

			seen[span] = struct{}{}

			finding := lines.finding(candidate, score)
			logger.Debug("found", lager.Data{
				"type":       finding.KeyType,
				"line":       finding.LineNumber,
				"confidence": finding.Confidence,
			})

			if err := handleFinding(logger, finding); err != nil {
				logger.Error("failed", err)
				result = multierror.Append(result, err)
			}
		}
	}

	logger.Debug("done")
	return result
}

func (s *sniffer) accept(candidate scanners.Candidate) (float64, bool) {
	secret := candidate.Credential()

	if utf8.RuneCountInString(secret) < s.config.MinLength {
		return 0, false
	}

	if IsPlaceholder(secret) {
		return 0, false
	}

	score := entropy.Shannon(secret)
	if score < s.config.EntropyThreshold {
		return 0, false
	}

	return score, true
}

// Detect collects the findings of a single Sniff call.
func Detect(logger lager.Logger, sniffer Sniffer, content []byte) ([]scanners.Finding, error) {
	findings := []scanners.Finding{}

	err := sniffer.Sniff(logger, content, func(_ lager.Logger, finding scanners.Finding) error {
		findings = append(findings, finding)
		return nil
	})

	return findings, err
}

type lineIndex struct {
	content  []byte
	lines    []string
	newlines []int
}

func newLineIndex(content []byte) *lineIndex {
	var newlines []int
	for i, b := range content {
		if b == '\n' {
			newlines = append(newlines, i)
		}
	}

	return &lineIndex{
		content:  content,
		lines:    strings.Split(string(content), "\n"),
		newlines: newlines,
	}
}

// lineNumber is one more than the number of newlines before offset.
func (l *lineIndex) lineNumber(offset int) int {
	return sort.SearchInts(l.newlines, offset) + 1
}

func (l *lineIndex) finding(candidate scanners.Candidate, score float64) scanners.Finding {
	lineNumber := l.lineNumber(candidate.Start)

	var lineContent string
	if lineNumber <= len(l.lines) {
		lineContent = strings.TrimSpace(l.lines[lineNumber-1])
	}

	start := utf8.RuneCount(l.content[:candidate.Start])
	secret := candidate.Credential()

	return scanners.Finding{
		KeyType:      candidate.KeyType,
		Secret:       secret,
		LineNumber:   lineNumber,
		LineContent:  lineContent,
		VariableName: ExtractVariableName(lineContent),
		Entropy:      entropy.Round(score),
		Confidence:   string(ScoreConfidence(score, candidate.KeyType)),
		Start:        start,
		End:          start + utf8.RuneCountInString(secret),
	}
}
