package sniff

import "regexp"

var variablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:const|let|var)\s+([\p{L}\p{N}_]+)\s*=`),
	regexp.MustCompile(`([\p{L}\p{N}_]+)\s*[:=]\s*["']`),
	regexp.MustCompile(`([\p{L}\p{N}_]+)\s*=\s*["']`),
}

// ExtractVariableName makes a best-effort guess at the name a line assigns
// to. It returns "" when nothing looks like an assignment.
func ExtractVariableName(line string) string {
	for _, pattern := range variablePatterns {
		if match := pattern.FindStringSubmatch(line); match != nil {
			return match[1]
		}
	}

	return ""
}
