package language

import (
	"path/filepath"
	"strings"
)

const Unknown = "unknown"

var extensions = map[string]string{
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".py":   "python",
	".dart": "dart",
	".java": "java",
	".rb":   "ruby",
	".php":  "php",
}

// Infer guesses the language of a file from its extension. The result is
// informational only.
func Infer(filename string) string {
	if lang, ok := extensions[strings.ToLower(filepath.Ext(filename))]; ok {
		return lang
	}

	return Unknown
}
