package tinyargs

import (
	"io"
	"log"
)

// Debug logger set to [io.Discard] by default.
// Enable debug logging by setting: Debug.SetOutput(os.Stderr).
var Debug = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Kind indicates how an option consumes tokens during parsing.
type Kind int

const (
	// Flag is a boolean presence-only option with no associated value.
	Flag Kind = iota
	// Value is an option requiring a text payload supplied as the next token.
	Value
)

// String returns the label used for this kind in help output.
func (k Kind) String() string {
	if k == Flag {
		return "Flag"
	}
	return "Key=Value"
}

// option is one declared option plus its mutable parse state.
type option struct {
	short       string
	long        string
	kind        Kind
	required    bool
	description string

	set      bool
	value    string
	hasValue bool
}

// matches reports whether token equals either declared name.
// Empty names never match anything.
func (o *option) matches(token string) bool {
	return (o.short != "" && o.short == token) || (o.long != "" && o.long == token)
}

// name returns the long name if present, falling back to the short name.
func (o *option) name() string {
	if o.long != "" {
		return o.long
	}
	return o.short
}

// Parser holds an ordered set of declared options and their parse state.
// It is intended for single-owner, single-threaded use; a Parser must not be
// shared across goroutines without external locking.
type Parser struct {
	opts    []*option
	printer *Printer
}

// New returns an empty Parser ready for [Parser.Add] calls.
func New() *Parser {
	return &Parser{printer: NewPrinter()}
}

// Add declares an option. Either short or long may be empty, but an option
// with neither name can never be matched. Declarations should all happen
// before [Parser.Parse] is called.
//
// Duplicate names are not rejected. When two options share a name, the first
// declared option shadows the later one for parsing and for every query.
func (p *Parser) Add(short, long string, kind Kind, required bool, description string) {
	p.opts = append(p.opts, &option{
		short:       short,
		long:        long,
		kind:        kind,
		required:    required,
		description: description,
	})
}

// Printer returns the cached [Printer] used for diagnostics and help output.
func (p *Parser) Printer() *Printer {
	if p.printer == nil {
		p.printer = NewPrinter()
	}
	return p.printer
}

// find returns the first declared option matching name, or nil.
func (p *Parser) find(name string) *option {
	for _, opt := range p.opts {
		if opt.matches(name) {
			return opt
		}
	}
	return nil
}
