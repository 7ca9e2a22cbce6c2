// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optparse

// HasArgument - whether an option consumes a following value token
type HasArgument int

// possible argument requirements for an option
const (
	NO_ARGUMENT HasArgument = iota
	OPTIONAL_ARGUMENT
	REQUIRED_ARGUMENT
)

// Option - the declaration of a single command-line option
//
// At least one of Short and Long must be set or Parse will reject the
// whole list.  Mandatory marks an option that must appear on the
// command line for the parse to succeed.
type Option struct {
	Short     rune        // single character name, zero if none
	Long      string      // multi-character name, empty if none
	HasArg    HasArgument // whether a value token may follow
	Mandatory bool        // option must be present on the command line
}

// NewOption - build an option from a compact name specification
//
// A one character specification sets the short name only, a second
// character of "," sets the short name and the remainder as the long
// name e.g. "c,create", anything else is a long name only.  Mandatory
// is left false; set the field on the returned value if required.
func NewOption(names string, hasArg HasArgument) Option {
	opt := Option{HasArg: hasArg}
	switch {
	case 1 == len(names):
		opt.Short = rune(names[0])
	case len(names) >= 2 && ',' == names[1]:
		opt.Short = rune(names[0])
		opt.Long = names[2:]
	default:
		opt.Long = names
	}
	return opt
}

// match - check if a stripped token name refers to this option
func (opt Option) match(name string) bool {
	if 0 != opt.Short && string(opt.Short) == name {
		return true
	}
	return "" != opt.Long && opt.Long == name
}

// displayName - the name used in error messages, preferring the long form
func (opt Option) displayName() string {
	if "" != opt.Long {
		return opt.Long
	}
	return string(opt.Short)
}
