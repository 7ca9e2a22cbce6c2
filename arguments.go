// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optparse

import (
	"github.com/bitmark-inc/optparse/fault"
)

// Arguments - the result of one Parse call
//
// The zero value is an empty placeholder: no help request, no parsed
// options, no plain arguments.  Once returned by Parse the value is
// never modified so it may be read from multiple goroutines.
type Arguments struct {
	help     bool
	parsed   map[string]string
	unparsed []string
}

// Help - true if -h or --help was seen before the end of options
func (args Arguments) Help() bool {
	return args.help
}

// Exists - check if an option was present on the command line
//
// An option with both names is recorded under both, so either name of
// the pair can be queried.
func (args Arguments) Exists(name string) bool {
	_, ok := args.parsed[name]
	return ok
}

// Value - the value recorded for an option
//
// The value is empty for options that take no argument or whose
// optional argument was absent.  Looking up a name that was never
// recorded returns a fault.NotFoundError.
func (args Arguments) Value(name string) (string, error) {
	value, ok := args.parsed[name]
	if !ok {
		return "", fault.NotFoundError("no such option '" + name + "'")
	}
	return value, nil
}

// Unparsed - all plain arguments in their original order
//
// Tokens not recognised as options or their values come first,
// followed by everything after a "--" marker.
func (args Arguments) Unparsed() []string {
	return args.unparsed
}

// record an option value, the first occurrence wins
func (args *Arguments) record(name string, value string) {
	if _, ok := args.parsed[name]; !ok {
		args.parsed[name] = value
	}
}
