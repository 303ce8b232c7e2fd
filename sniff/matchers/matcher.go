package matchers

// Span is a half-open byte range [Start, End) into the matched content.
type Span struct {
	Start int
	End   int
}

type Matcher interface {
	Match([]byte) (bool, int, int)
	MatchAll([]byte) []Span
}
