package filescanner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"
	"github.com/h2non/filetype"

	"github.com/vibeshield/shield/language"
	"github.com/vibeshield/shield/scanners"
	"github.com/vibeshield/shield/sniff"
)

var (
	ErrNotFound   = errors.New("File not found")
	ErrUnreadable = errors.New("Error reading file")
)

var errNotText = errors.New("content is not valid UTF-8 text")

type FileScanner struct {
	sniffer sniff.Sniffer
}

func New(sniffer sniff.Sniffer) *FileScanner {
	return &FileScanner{
		sniffer: sniffer,
	}
}

// Scan never fails: read errors are reported through the result.
func (s *FileScanner) Scan(logger lager.Logger, path string) scanners.Result {
	logger = logger.Session("scan-file", lager.Data{"file": path})
	logger.Debug("starting")
	defer logger.Debug("done")

	content, err := ReadFile(path)
	if err != nil {
		logger.Error("failed-to-read", err)
		return scanners.Failed(err)
	}

	findings, err := sniff.Detect(logger, s.sniffer, content)
	if err != nil {
		logger.Error("failed-to-sniff", err)
		return scanners.Failed(err)
	}

	logger.Info("scanned", lager.Data{"findings": len(findings)})

	return scanners.Succeeded(path, language.Infer(path), findings)
}

// ScanFile scans path with the default rules and discards all logs.
func ScanFile(path string) scanners.Result {
	return New(sniff.NewDefaultSniffer()).Scan(lager.NewLogger("shield"), path)
}

// ReadFile returns the content of path, with line endings converted to \n, if
// it is a readable text file. Errors wrap ErrNotFound or ErrUnreadable.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	if !utf8.Valid(content) {
		if kind, _ := filetype.Match(content); kind != filetype.Unknown {
			return nil, fmt.Errorf("%w: detected binary content (%s)", ErrUnreadable, kind.MIME.Value)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, errNotText)
	}

	return normalizeNewlines(content), nil
}

// normalizeNewlines turns \r\n and lone \r line endings into \n.
func normalizeNewlines(content []byte) []byte {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))
}
