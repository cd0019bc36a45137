package tinyargs

// GetValue returns the value recorded for the named option. The bool reports
// whether a value is present; it is false when the name matches no declared
// option, when the option is a [Flag], and when the option was never given a
// value.
func (p *Parser) GetValue(name string) (string, bool) {
	opt := p.find(name)
	if opt == nil {
		return "", false
	}
	return opt.value, opt.hasValue
}

// IsFlagSet reports whether the named option was matched during parsing.
// Unknown names report false rather than an error.
func (p *Parser) IsFlagSet(name string) bool {
	opt := p.find(name)
	return opt != nil && opt.set
}

// Has reports whether the named option is usably present: a [Flag] that was
// set, or a [Value] option that actually received a value. Unknown names
// report false.
func (p *Parser) Has(name string) bool {
	opt := p.find(name)
	if opt == nil {
		return false
	}
	if opt.kind == Flag {
		return opt.set
	}
	return opt.hasValue
}
