package matchers

import "bytes"

// Upcased matches submatcher against the upper-cased content. Offsets refer
// to the upper-cased content, which only equals the input's offsets for ASCII.
func Upcased(submatcher Matcher) Matcher {
	return &upcased{
		matcher: submatcher,
	}
}

type upcased struct {
	matcher Matcher
}

func (u *upcased) Match(content []byte) (bool, int, int) {
	return u.matcher.Match(bytes.ToUpper(content))
}

func (u *upcased) MatchAll(content []byte) []Span {
	return u.matcher.MatchAll(bytes.ToUpper(content))
}
