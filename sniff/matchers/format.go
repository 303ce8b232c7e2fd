package matchers

import "regexp"

type formatMatcher struct {
	r *regexp.Regexp
}

// Format builds a Matcher from a regular expression. When the expression has
// a capture group, the first group's span is reported instead of the whole
// match. It panics if the expression does not compile.
func Format(format string) Matcher {
	return &formatMatcher{
		r: regexp.MustCompile(format),
	}
}

func Compile(format string) (Matcher, error) {
	r, err := regexp.Compile(format)
	if err != nil {
		return nil, err
	}

	return &formatMatcher{r: r}, nil
}

func (m *formatMatcher) Match(content []byte) (bool, int, int) {
	index := m.r.FindSubmatchIndex(content)
	if index == nil {
		return false, 0, 0
	}

	span, ok := m.span(index)
	if !ok {
		return false, 0, 0
	}

	return true, span.Start, span.End
}

func (m *formatMatcher) MatchAll(content []byte) []Span {
	var spans []Span

	for _, index := range m.r.FindAllSubmatchIndex(content, -1) {
		if span, ok := m.span(index); ok {
			spans = append(spans, span)
		}
	}

	return spans
}

func (m *formatMatcher) span(index []int) (Span, bool) {
	if m.r.NumSubexp() == 0 {
		return Span{Start: index[0], End: index[1]}, true
	}

	// group 1 did not participate in the match
	if index[2] < 0 {
		return Span{}, false
	}

	return Span{Start: index[2], End: index[3]}, true
}
