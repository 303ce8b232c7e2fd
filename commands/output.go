package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vibeshield/shield/scanners"
)

func writeJSON(w io.Writer, v interface{}) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(bs))
	return err
}

func printResult(w io.Writer, result scanners.Result, showCreds bool) {
	if !result.Success {
		fmt.Fprintf(w, "%s scanning failed: %s\n", red("[FAILED]"), result.Error)
		return
	}

	for _, finding := range result.Findings {
		output := fmt.Sprintf("%s %s:%d %s (%s confidence, entropy %.3f)",
			red("[CRED]"), result.File, finding.LineNumber, finding.KeyType, finding.Confidence, finding.Entropy)
		if finding.VariableName != "" {
			output = output + fmt.Sprintf(" in %s", finding.VariableName)
		}
		if showCreds {
			output = output + fmt.Sprintf(" [%s]", finding.Secret)
		}
		fmt.Fprintln(w, output)
	}

	if result.TotalFindings == 0 {
		fmt.Fprintf(w, "%s %s (%s): no credentials found\n", green("[OK]"), result.File, result.Language)
		return
	}

	fmt.Fprintf(w, "\n%s (%s): %d suspected credential(s)\n", result.File, result.Language, result.TotalFindings)
	showCredentialWarning(w)
}

func showCredentialWarning(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Yikes! Looks like we found some credentials.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "There are a few cases for what this may be:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "1. An actual credential in source code which shouldn't be")
	fmt.Fprintln(w, "   committed! Move it to an environment variable or a secret store.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. An example credential in tests or documentation. Use an obvious")
	fmt.Fprintln(w, "   placeholder such as YOUR_API_KEY so it is ignored.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. A long quoted string which isn't a credential at all! Raise the")
	fmt.Fprintln(w, "   threshold with --entropy-threshold if this happens a lot.")
}
