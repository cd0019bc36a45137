package tinyargs

import (
	"fmt"
	"strings"
)

// PrintHelp writes a usage block to the [Printer]: one line per declared
// option, in declaration order, regardless of parse state. Options declared
// with neither name render nothing.
func (p *Parser) PrintHelp() {
	p.Printer().Print(p.helpText())
}

func (p *Parser) helpText() string {
	var buf strings.Builder
	buf.WriteString("Usage:\n")
	for _, opt := range p.opts {
		switch {
		case opt.short != "" && opt.long != "":
			fmt.Fprintf(&buf, "  %s, %s: %s (Type: %s)\n", opt.short, opt.long, opt.description, opt.kind)
		case opt.short != "":
			fmt.Fprintf(&buf, "  %s:     %s (Type: %s)\n", opt.short, opt.description, opt.kind)
		case opt.long != "":
			fmt.Fprintf(&buf, "  %s:     %s (Type: %s)\n", opt.long, opt.description, opt.kind)
		}
	}
	return buf.String()
}
