// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optparse

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/optparse/fault"
)

// ParseOS - parse the process command line
//
// Convenience wrapper around Parse for os.Args; also returns the
// program name for use in messages.
func ParseOS(options []Option) (program string, args Arguments, err error) {
	args, err = Parse(os.Args, options)
	program = filepath.Base(os.Args[0])
	return program, args, err
}

// Parse - scan an argument vector against a list of options
//
// The first element of argv is the program name and is always skipped.
// The scan stops at the first "--" token; everything after it is kept
// as a plain argument.  A -h or --help token stops the whole scan
// immediately: the returned Arguments answers Help() true, holds only
// the plain arguments seen so far, and no mandatory option checking is
// done.
//
// On error no partial result is returned.
func Parse(argv []string, options []Option) (Arguments, error) {

	// struct literals can bypass NewOption, so check the name
	// invariant before scanning
	for _, opt := range options {
		if 0 == opt.Short && "" == opt.Long {
			return Arguments{}, fault.ErrOptionHasNoName
		}
	}

	args := Arguments{
		parsed:   make(map[string]string),
		unparsed: make([]string, 0, 10),
	}

	// locate the end of options marker
	boundary := len(argv)
	for i := 1; i < len(argv); i += 1 {
		if "--" == argv[i] {
			boundary = i
			break
		}
	}

scan:
	for i := 1; i < boundary; i += 1 {
		item := argv[i]

		if "" == item {
			continue scan // ignore empty arguments
		}

		if '-' != item[0] {
			args.unparsed = append(args.unparsed, item)
			continue scan
		}

		if "-" == item {
			continue scan // ignore a bare dash
		}

		// strip one or two leading dashes
		name := item[1:]
		if '-' == name[0] {
			name = name[1:]
		}

		if "h" == name || "help" == name {
			args.help = true
			return args, nil
		}

		matched := false
		value := ""
		for _, opt := range options {
			if !opt.match(name) {
				continue
			}
			matched = true

			if NO_ARGUMENT != opt.HasArg {
				// take the next token as the value unless it
				// looks like another option
				if i+1 < boundary && !strings.HasPrefix(argv[i+1], "-") {
					i += 1
					value = argv[i]
				} else if REQUIRED_ARGUMENT == opt.HasArg {
					return Arguments{}, fault.ProcessError("option '" + name + "' requires a value")
				}
			}

			if 0 != opt.Short {
				args.record(string(opt.Short), value)
			}
			if "" != opt.Long {
				args.record(opt.Long, value)
			}
			break
		}
		if !matched {
			return Arguments{}, fault.ProcessError("unknown option '" + name + "'")
		}
	}

	// all mandatory options must have been seen
	for _, opt := range options {
		if !opt.Mandatory {
			continue
		}
		if 0 != opt.Short && args.Exists(string(opt.Short)) {
			continue
		}
		if "" != opt.Long && args.Exists(opt.Long) {
			continue
		}
		return Arguments{}, fault.ProcessError("option '" + opt.displayName() + "' required")
	}

	// everything after "--" is a plain argument
	if boundary < len(argv) {
		args.unparsed = append(args.unparsed, argv[boundary+1:]...)
	}

	return args, nil
}
