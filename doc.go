// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package optparse - command-line options processing
//
// Scans an argument vector against a list of declared options and
// parses tokens of the forms:
//   -o               - short option
//   -o value         - short option with a following value
//   --option         - long option
//   --option value   - long option with a following value
//   -h  --help       - help request, stops the scan immediately
//   --               - stop option parsing, the rest are plain arguments
//
// A following token is only taken as a value when the option declares
// OPTIONAL_ARGUMENT or REQUIRED_ARGUMENT and the token does not start
// with "-".  An option with REQUIRED_ARGUMENT and no eligible following
// token is an error.
//
// Note:
//   Does not support "--option=value" joined values.
//   Does not support combined single letter options e.g. "-abc" is the
//   single option "abc" and not three options.
//   A bare "-" and empty arguments are ignored.
//   Values are substrings of the caller's argument vector; Go strings
//   are immutable so no copies are made and none are needed.
//
// Returns:
//   Arguments value       - help flag, parsed option values, plain arguments
//   error                 - unknown option, missing value or missing
//                           mandatory option
package optparse
