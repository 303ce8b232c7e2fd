package matchers

import "bytes"

// Filter only runs submatcher when the content contains at least one of the
// given literals.
func Filter(submatcher Matcher, filters ...string) Matcher {
	fs := make([][]byte, len(filters))

	for i := range filters {
		fs[i] = []byte(filters[i])
	}

	return &filter{
		matcher: submatcher,
		filters: fs,
	}
}

type filter struct {
	matcher Matcher
	filters [][]byte
}

func (f *filter) Match(content []byte) (bool, int, int) {
	if !f.found(content) {
		return false, 0, 0
	}

	return f.matcher.Match(content)
}

func (f *filter) MatchAll(content []byte) []Span {
	if !f.found(content) {
		return nil
	}

	return f.matcher.MatchAll(content)
}

func (f *filter) found(content []byte) bool {
	for i := range f.filters {
		if bytes.Contains(content, f.filters[i]) {
			return true
		}
	}

	return false
}
