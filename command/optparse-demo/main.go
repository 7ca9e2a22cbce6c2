// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Worked example for the optparse package.
//
// Scans its own command line for a small set of options and prints the
// decoded parameters.  With --debug a console logger traces the scan.
package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/optparse"
)

func usage(program string) {
	exitwithstatus.Message(
		"usage: %s [options] --port PORT [arguments...]\n"+
			"    -h, --help             display this help message\n"+
			"    --debug                turn on debug logging\n"+
			"    --directory DIR        operate on DIR instead of \".\"\n"+
			"    -p, --port PORT        listen on PORT for connections\n"+
			"    -v, --verbose [LEVEL]  be verbose up to LEVEL\n"+
			"    -W [LEVEL]             set warning level to LEVEL\n"+
			"    -z                     do something",
		program)
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	port := optparse.NewOption("p,port", optparse.REQUIRED_ARGUMENT)
	port.Mandatory = true

	options := []optparse.Option{
		optparse.NewOption("debug", optparse.NO_ARGUMENT),
		optparse.NewOption("directory", optparse.REQUIRED_ARGUMENT),
		port,
		optparse.NewOption("v,verbose", optparse.OPTIONAL_ARGUMENT),
		optparse.NewOption("W", optparse.OPTIONAL_ARGUMENT),
		optparse.NewOption("z", optparse.NO_ARGUMENT),
	}

	program, args, err := optparse.ParseOS(options)
	if err != nil {
		exitwithstatus.Message("%s: %s", program, err)
	}

	if args.Help() {
		usage(program)
	}

	debug := args.Exists("debug")
	if debug {
		logging := logger.Configuration{
			Directory: ".",
			File:      program + ".log",
			Size:      1048576,
			Count:     10,
			Console:   true,
			Levels: map[string]string{
				logger.DefaultTag: "debug",
			},
		}
		if err := logger.Initialise(logging); err != nil {
			exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
		}
		defer logger.Finalise()

		log := logger.New("demo")
		log.Debugf("options: %v", options)
		log.Debugf("plain arguments: %v", args.Unparsed())
	}

	directory := "."
	if args.Exists("directory") {
		directory, _ = args.Value("directory")
	}

	portNumber := number(program, args, "port", 0)
	if portNumber <= 0 || portNumber > 65535 {
		exitwithstatus.Message("%s: port out of range: %d", program, portNumber)
	}

	// bare -v counts as level 1
	verbose := 0
	if args.Exists("verbose") {
		verbose = number(program, args, "verbose", 1)
		if verbose < 0 {
			exitwithstatus.Message("%s: verbose must not be negative", program)
		}
	}

	warning := -1
	if args.Exists("W") {
		warning = number(program, args, "W", 0)
	}

	fmt.Printf("debug: %t\n", debug)
	fmt.Printf("directory: %s\n", directory)
	fmt.Printf("port: %d\n", portNumber)
	fmt.Printf("verbose: %d\n", verbose)
	fmt.Printf("warning: %d\n", warning)
	fmt.Printf("zed: %t\n", args.Exists("z"))
	for i, argument := range args.Unparsed() {
		fmt.Printf("argument[%d]: %q\n", i, argument)
	}
}

// decode a numeric option value, an empty value gives the fallback
func number(program string, args optparse.Arguments, name string, fallback int) int {
	s, err := args.Value(name)
	if err != nil {
		exitwithstatus.Message("%s: %s", program, err)
	}
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		exitwithstatus.Message("%s: option '%s' is not a number: %s", program, name, err)
	}
	return n
}
