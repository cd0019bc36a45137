package tinyargs

// argIterator walks an argument slice one token at a time, with lookahead for
// options that consume the following token as their value.
type argIterator struct {
	args []string
	idx  int
}

func newArgIterator(args []string) *argIterator {
	return &argIterator{args: args, idx: -1}
}

// next moves the index forward and reports whether a token is available.
func (a *argIterator) next() bool {
	if a.idx < len(a.args) {
		a.idx++
	}
	return a.idx < len(a.args)
}

// value returns the token at the current index.
func (a *argIterator) value() string {
	if a.idx < 0 || a.idx >= len(a.args) {
		return ""
	}
	return a.args[a.idx]
}

// peekNext returns the following token without advancing, and whether one
// exists.
func (a *argIterator) peekNext() (string, bool) {
	if a.idx+1 >= len(a.args) {
		return "", false
	}
	return a.args[a.idx+1], true
}

// Parse consumes args left to right and records which declared options were
// supplied and with what values. args must exclude the program name; hosts
// pass os.Args[1:]. Call it once per argument vector; Parse resets all
// per-option state at entry, so a later call observes only the later vector.
//
// Parsing is fail-fast: the first problem aborts the scan and is returned
// (and printed to the [Printer]) immediately. Options recorded before the
// failing token keep their state.
//
// A [Value] option whose name is the final token has nothing left to consume.
// If it is required this fails with [ErrMissingValue]; if it is optional the
// option is left marked set with no value, so [Parser.Has] and
// [Parser.GetValue] both report no value for it.
func (p *Parser) Parse(args []string) error {
	p.reset()
	iter := newArgIterator(args)
	for iter.next() {
		token := iter.value()
		opt := p.find(token)
		if opt == nil {
			return p.fail(newParseError(ErrUnrecognizedArgument, token))
		}
		opt.set = true
		if opt.kind == Flag {
			Debug.Printf("flag %s set", token)
			continue
		}
		if val, ok := iter.peekNext(); ok {
			iter.next()
			opt.value = val
			opt.hasValue = true
			Debug.Printf("option %s given value %q", token, val)
		} else if opt.required {
			return p.fail(newParseError(ErrMissingValue, token))
		}
	}
	for _, opt := range p.opts {
		if opt.required && !opt.set {
			return p.fail(newParseError(ErrMissingRequiredArgument, opt.name()))
		}
	}
	return nil
}

// reset clears per-option parse state so Parse always starts from a clean
// registry.
func (p *Parser) reset() {
	for _, opt := range p.opts {
		opt.set = false
		opt.value = ""
		opt.hasValue = false
	}
}

// fail prints the diagnostic for err and returns it.
func (p *Parser) fail(err *ParseError) error {
	p.Printer().Println(err.diagnostic())
	return err
}
