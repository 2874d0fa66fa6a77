// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command routing and global flags for slidertip.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdUnknown Command = iota
	CmdEval
	CmdList
	CmdMarks
	CmdDescribe
	CmdInput
	CmdWatch
	CmdConfig
	CmdVersion
	CmdHelp
)

var commandNames = map[Command]string{
	CmdUnknown:  "unknown",
	CmdEval:     "eval",
	CmdList:     "list",
	CmdMarks:    "marks",
	CmdDescribe: "describe",
	CmdInput:    "input",
	CmdWatch:    "watch",
	CmdConfig:   "config",
	CmdVersion:  "version",
	CmdHelp:     "help",
}

// String returns the command name as typed on the command line.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON       bool   // Output in JSON format
	Quiet      bool   // Suppress decorations, print bare values
	Verbose    bool   // Enable log output on stderr
	ConfigPath string // --config, overrides the default config location
	Locale     string // --locale, overrides display.locale

	// Name is the command word as typed, kept for error messages
	Name string

	// Raw holds the arguments after the command word with global flags removed
	Raw []string
}

const usageText = `slidertip - slider tooltip value transforms

Evaluates the tooltip transforms used by logarithmic, Fibonacci, square and
pi sliders, and prints marks and widget descriptions for configured sliders.

Usage:
  slidertip eval <transform> <value>...    Apply a named transform
  slidertip list [transforms]              List configured sliders or transforms
  slidertip marks [--slider NAME]          Print step and tick marks
  slidertip describe [NAME]                Print widget descriptors for a host UI
    --type TYPE                            Component type (default: slider)
    --renderer ID                          Renderer id added to the component id
  slidertip input <slider> <value>         Convert a typed value to a position
    --save                                 Store the new state in the config file
  slidertip watch                          Re-print marks when the config changes
  slidertip config [show|path|init|validate]
    init --force                           Overwrite an existing config file
    init --format json                     Write JSON instead of TOML
  slidertip version                        Show version information
  slidertip help                           Show this help

Global flags:
  --json            Output in JSON format
  --config PATH     Use PATH instead of ~/.slidertip/config.toml
  --locale TAG      Format numbers for a BCP 47 locale (e.g. de, en-IN)
  -q, --quiet       Print bare values only
  -v, --verbose     Log progress to stderr

Transforms:
  trafo_L             0 below log10(1.25), else round(10^v)
  transform_log_nice  10^v rounded to two significant digits
  transform_fib       v-th Fibonacci number
  transform_square    v squared

Environment:
  SLIDERTIP_CONFIG     Config file path
  SLIDERTIP_LOCALE     Overrides display.locale
  SLIDERTIP_PRECISION  Overrides display.precision

Examples:
  slidertip eval trafo_L 0 0.5 2
  slidertip eval transform_log_nice -- -1.3
  slidertip marks --slider "Number of Samples"
  slidertip input samples 2500 --save

Version: %s
`

// PrintUsage writes the usage/help text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion writes version information to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "slidertip version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses os.Args and returns the command and its args.
func Parse() (Command, Args, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses argv (without the program name). Global flags may appear
// anywhere. No command prints the help text. A --config or --locale without
// a value is a usage error.
func ParseArgs(argv []string) (Command, Args, error) {
	remaining, parsedArgs, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdUnknown, parsedArgs, err
	}

	if len(remaining) == 0 {
		return CmdHelp, parsedArgs, nil
	}

	cmd := strings.ToLower(remaining[0])
	parsedArgs.Name = remaining[0]
	parsedArgs.Raw = remaining[1:]

	switch cmd {
	case "eval", "e":
		return CmdEval, parsedArgs, nil
	case "list", "ls":
		return CmdList, parsedArgs, nil
	case "marks", "m":
		return CmdMarks, parsedArgs, nil
	case "describe", "desc":
		return CmdDescribe, parsedArgs, nil
	case "input", "in":
		return CmdInput, parsedArgs, nil
	case "watch", "w":
		return CmdWatch, parsedArgs, nil
	case "config", "cfg":
		return CmdConfig, parsedArgs, nil
	case "version", "--version":
		return CmdVersion, parsedArgs, nil
	case "help", "-h", "--help":
		return CmdHelp, parsedArgs, nil
	default:
		return CmdUnknown, parsedArgs, nil
	}
}

// parseGlobalFlags extracts global flags from args and returns the rest.
// Everything after "--" is passed through untouched.
func parseGlobalFlags(args []string) ([]string, Args, error) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			remaining = append(remaining, args[i:]...)
			return remaining, parsedArgs, nil
		case arg == "--json":
			parsedArgs.JSON = true
		case arg == "-q" || arg == "--quiet":
			parsedArgs.Quiet = true
		case arg == "-v" || arg == "--verbose":
			parsedArgs.Verbose = true
		case arg == "--config" || arg == "--locale":
			if i+1 >= len(args) || args[i+1] == "--" {
				return nil, parsedArgs, missingFlagValue(arg)
			}
			i++
			setGlobalValue(&parsedArgs, arg, args[i])
		case strings.HasPrefix(arg, "--config=") || strings.HasPrefix(arg, "--locale="):
			name, value, _ := strings.Cut(arg, "=")
			if value == "" {
				return nil, parsedArgs, missingFlagValue(name)
			}
			setGlobalValue(&parsedArgs, name, value)
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs, nil
}

var globalFlagExample = map[string]string{
	"--config": "slidertip --config ~/.slidertip/config.toml list",
	"--locale": "slidertip --locale de list",
}

func missingFlagValue(flag string) error {
	return &UsageError{Reason: "missing value for " + flag, Example: globalFlagExample[flag]}
}

func setGlobalValue(args *Args, flag, value string) {
	switch flag {
	case "--config":
		args.ConfigPath = value
	case "--locale":
		args.Locale = value
	}
}

// HandleVersion handles the "version" command with JSON output support.
func HandleVersion(w io.Writer, args Args) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse(CmdVersion.String(), data).Write(w)
	}
	if args.Quiet {
		fmt.Fprintln(w, Version)
		return nil
	}
	PrintVersion(w)
	return nil
}

// HandleHelp handles the "help" command.
func HandleHelp(w io.Writer) error {
	PrintUsage(w)
	return nil
}

// HandleUnknown reports a command word that is not recognised.
func HandleUnknown(args Args) error {
	return NewUsageError(fmt.Sprintf("unknown command %q", args.Name), "slidertip help")
}
