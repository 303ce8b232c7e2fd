package commands

type ShieldCommand struct {
	Scan    ScanCommand    `command:"scan" description:"Scan a source file for credentials"`
	Analyze AnalyzeCommand `command:"analyze" description:"Show how random strings look"`
	Version VersionCommand `command:"version" description:"Displays shield version" alias:"V"`
}

var Shield ShieldCommand
