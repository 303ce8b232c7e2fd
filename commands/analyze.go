package commands

import (
	"fmt"
	"os"

	"github.com/vibeshield/shield/entropy"
)

type AnalyzeCommand struct {
	JSON bool `long:"json" description:"print the analysis as JSON"`

	Args struct {
		Strings []string `positional-arg-name:"STRING" required:"1"`
	} `positional-args:"yes"`
}

func (command *AnalyzeCommand) Execute(args []string) error {
	analyses := make([]entropy.Analysis, 0, len(command.Args.Strings))
	for _, s := range command.Args.Strings {
		analyses = append(analyses, entropy.Analyze(s))
	}

	if command.JSON {
		return writeJSON(os.Stdout, analyses)
	}

	for _, analysis := range analyses {
		verdict := green("unlikely secret")
		if analysis.IsLikelySecret {
			verdict = red("likely secret")
		}

		fmt.Printf("%s\n", analysis.Text)
		fmt.Printf("  length:  %d\n", analysis.Length)
		fmt.Printf("  entropy: %.3f\n", analysis.Entropy)
		fmt.Printf("  %s (%s confidence)\n", verdict, analysis.Confidence)
	}

	return nil
}
