package commands

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"code.cloudfoundry.org/lager"

	"github.com/vibeshield/shield/scanners/filescanner"
	"github.com/vibeshield/shield/sniff"
)

type ScanCommand struct {
	EntropyThreshold string `short:"e" long:"entropy-threshold" description:"minimum Shannon entropy of a reported secret" env:"SHIELD_ENTROPY_THRESHOLD" value-name:"BITS"`
	MinLength        int    `long:"min-length" description:"minimum length of a reported secret" default:"20" env:"SHIELD_MIN_LENGTH" value-name:"CHARS"`
	JSON             bool   `long:"json" description:"print the scan result as JSON"`
	ShowCredentials  bool   `long:"show-suspected-credentials" description:"allow credentials to be shown in output"`
	Regexp           string `long:"regexp" description:"override default rules with a single regexp" value-name:"REGEXP"`
	RulesFile        string `long:"rules-file" description:"YAML file of rules checked before the default rules" value-name:"PATH"`
	Debug            bool   `long:"debug" description:"enables debug logging"`

	Args struct {
		File             string `positional-arg-name:"FILE" required:"yes"`
		EntropyThreshold string `positional-arg-name:"ENTROPY_THRESHOLD"`
	} `positional-args:"yes"`
}

func (command *ScanCommand) Execute(args []string) error {
	logger := lager.NewLogger("shield")

	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.ERROR))
	}

	if command.Regexp != "" && command.RulesFile != "" {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Two options specified for rules, only using: --regexp", command.Regexp)
	}

	sniffer, err := command.buildSniffer(logger)
	if err != nil {
		return err
	}

	result := filescanner.New(sniffer).Scan(logger, command.Args.File)

	if command.JSON {
		if err := writeJSON(os.Stdout, result); err != nil {
			return err
		}
	} else {
		printResult(os.Stdout, result, command.ShowCredentials)
	}

	switch {
	case !result.Success:
		os.Exit(1)
	case result.TotalFindings > 0:
		os.Exit(3)
	}

	return nil
}

func (command *ScanCommand) buildSniffer(logger lager.Logger) (sniff.Sniffer, error) {
	config := command.config(logger)

	switch {
	case command.Regexp != "":
		rule, err := sniff.NewRule(sniff.Custom, command.Regexp)
		if err != nil {
			return nil, err
		}

		return sniff.NewSniffer([]sniff.Rule{rule}, config), nil
	case command.RulesFile != "":
		file, err := os.Open(command.RulesFile)
		if err != nil {
			return nil, err
		}

		rules, err := sniff.RulesFromYAML(file)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return nil, err
		}

		logger.Debug("loaded-rules", lager.Data{"path": command.RulesFile, "count": len(rules)})

		return sniff.NewSniffer(append(rules, sniff.DefaultRules()...), config), nil
	default:
		return sniff.NewSniffer(sniff.DefaultRules(), config), nil
	}
}

// config prefers the positional threshold over the flag. A threshold that
// does not parse falls back to the default.
func (command *ScanCommand) config(logger lager.Logger) sniff.Config {
	config := sniff.DefaultConfig()
	config.MinLength = command.MinLength

	raw := command.EntropyThreshold
	if command.Args.EntropyThreshold != "" {
		raw = command.Args.EntropyThreshold
	}

	if raw == "" {
		return config
	}

	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(threshold) {
		logger.Debug("ignoring-entropy-threshold", lager.Data{"value": raw})
		return config
	}

	config.EntropyThreshold = threshold
	return config
}
