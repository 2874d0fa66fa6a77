// slidertip - Slider tooltip value transforms on the command line.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeranaias/slidertip/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd, args, err := cli.Parse()
	if err != nil {
		return fail(cmd, args, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case cli.CmdEval:
		err = cli.HandleEval(os.Stdout, args)
	case cli.CmdList:
		err = cli.HandleList(os.Stdout, args)
	case cli.CmdMarks:
		err = cli.HandleMarks(os.Stdout, args)
	case cli.CmdDescribe:
		err = cli.HandleDescribe(os.Stdout, args)
	case cli.CmdInput:
		err = cli.HandleInput(os.Stdout, args)
	case cli.CmdWatch:
		err = cli.HandleWatch(ctx, os.Stdout, args)
	case cli.CmdConfig:
		err = cli.HandleConfig(os.Stdout, args)
	case cli.CmdVersion:
		err = cli.HandleVersion(os.Stdout, args)
	case cli.CmdHelp:
		err = cli.HandleHelp(os.Stdout)
	default:
		err = cli.HandleUnknown(args)
	}

	if err != nil {
		return fail(cmd, args, err)
	}
	return cli.ExitSuccess
}

// fail reports err and returns its exit code. JSON errors go to stdout with
// the rest of the output.
func fail(cmd cli.Command, args cli.Args, err error) int {
	out := os.Stderr
	if args.JSON {
		out = os.Stdout
	}
	cli.DisplayError(out, err, args.JSON, cmd.String())
	return cli.ExitCodeFor(err)
}
