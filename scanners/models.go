package scanners

// Candidate is a span of content matched by a rule, before filtering.
type Candidate struct {
	KeyType string
	Content []byte

	Start int
	End   int
}

func (c Candidate) Credential() string {
	return string(c.Content[c.Start:c.End])
}

type Finding struct {
	KeyType      string  `json:"type"`
	Secret       string  `json:"secret"`
	LineNumber   int     `json:"line"`
	LineContent  string  `json:"line_content"`
	VariableName string  `json:"variable_name"`
	Entropy      float64 `json:"entropy"`
	Confidence   string  `json:"confidence"`
	Start        int     `json:"start_pos"`
	End          int     `json:"end_pos"`
}

type Result struct {
	Success       bool      `json:"success"`
	Error         string    `json:"error,omitempty"`
	File          string    `json:"file,omitempty"`
	Language      string    `json:"language,omitempty"`
	Findings      []Finding `json:"findings"`
	TotalFindings int       `json:"total_findings"`
}

func Succeeded(file, language string, findings []Finding) Result {
	if findings == nil {
		findings = []Finding{}
	}

	return Result{
		Success:       true,
		File:          file,
		Language:      language,
		Findings:      findings,
		TotalFindings: len(findings),
	}
}

func Failed(err error) Result {
	return Result{
		Success:  false,
		Error:    err.Error(),
		Findings: []Finding{},
	}
}
