package matchers

import "bytes"

type substringMatcher struct {
	s []byte
}

func Substring(s string) Matcher {
	return &substringMatcher{
		s: []byte(s),
	}
}

func (m *substringMatcher) Match(content []byte) (bool, int, int) {
	start := bytes.Index(content, m.s)
	if start == -1 {
		return false, 0, 0
	}

	end := start + len(m.s)

	return true, start, end
}

func (m *substringMatcher) MatchAll(content []byte) []Span {
	if len(m.s) == 0 {
		return nil
	}

	var spans []Span

	offset := 0
	for {
		start := bytes.Index(content[offset:], m.s)
		if start == -1 {
			return spans
		}

		start += offset
		end := start + len(m.s)
		spans = append(spans, Span{Start: start, End: end})
		offset = end
	}
}
