/*
Package tinyargs is a small command-line option parser with zero runtime dependencies.

There are a few deliberate policies for how this operates.

  - Options are matched by exact, case-sensitive string comparison against their declared short and long names. No prefix matching, no abbreviation.
  - There is no flag clustering ('-abc'), no '--opt=value' inline syntax, no positional arguments, and no sub-commands. Hosts that need those should reach for a bigger library.
  - Declaration order matters. Help output follows it, and when two options share a name, the first declared option wins for parsing and for every query.
  - Parsing is fail-fast. The first problem aborts the parse, and state recorded for earlier tokens is kept as-is.
  - Diagnostics and help text go to STDOUT by default. This is supported with a configurable [Printer], so hosts and tests can capture or silence output.

# Invocation

A host program declares its options, parses once, and queries the result:

	args := tinyargs.New()
	args.Add("-n", "--name", tinyargs.Value, true, "Name to greet")
	args.Add("-h", "--help", tinyargs.Flag, false, "Show this help")
	if err := args.Parse(os.Args[1:]); err != nil {
		args.PrintHelp()
		os.Exit(1)
	}

The library never terminates the process; reacting to a failed parse is the
host's job.

# Errors

[Parser.Parse] reports failures as a [*ParseError] that matches one of the
sentinel errors [ErrUnrecognizedArgument], [ErrMissingValue], or
[ErrMissingRequiredArgument] under [errors.Is]. The human-readable diagnostic
line is printed to the [Printer] at the point of detection, so hosts that only
check the error for nil still get a useful message on their behalf.
*/
package tinyargs
