// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the slidertip command line.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Global flags plus the raw arguments of the command
//   - ArgParser: Flag and positional parsing inside a command
//   - JSONResponse: Envelope written by every command with --json
//
// # Usage
//
//	cmd, args, err := cli.Parse()
//	if err == nil {
//	    switch cmd {
//	    case cli.CmdEval:
//	        err = cli.HandleEval(os.Stdout, args)
//	    // ... other commands
//	    }
//	}
//	if err != nil {
//	    cli.DisplayError(os.Stderr, err, args.JSON, cmd.String())
//	    os.Exit(cli.ExitCodeFor(err))
//	}
//
// # Commands Overview
//
//   - eval: Apply a named tooltip transform to values
//   - list: Configured sliders or registered transforms
//   - marks: Step and tick marks per slider
//   - describe: Widget descriptors for a host UI
//   - input: Manual value entry, optionally saved
//   - watch: Re-render marks on config changes
//   - config: Show, locate, create and validate the config file
//
// Handlers write to the io.Writer they are given and return errors instead
// of exiting, so they can be driven from tests.
package cli
