// Package argh splits a raw argument vector into positional arguments,
// boolean flags and name/value parameters, without requiring the options to
// be declared up front.
//
// For example:
//  cmdl := argh.Parse(os.Args[1:], 0, "output")
//  if cmdl.Flag("v", "verbose") {
//      ...
//  }
//  input := cmdl.Pos(0)
//  var jobs int
//  cmdl.ParamOr(1, "j", "jobs").Scan(&jobs)
//
// Classification is heuristic: a token starting with a dash is an option
// unless it parses as a number, an option followed by a plain token may
// consume it as a value, and anything else is positional. Pre-registering a
// parameter name with AddParam forces value consumption for that name; Mode
// bits resolve the remaining ambiguous cases.
//
// The parser performs no I/O, prints no usage text, and never rejects input.
// Lookup misses are reported through sentinel results rather than errors.
package argh
