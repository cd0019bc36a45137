package tinyargs

import (
	"fmt"
	"io"
	"os"
)

// Printer writes the parser's user-visible output: parse diagnostics and help
// text. Output goes to STDOUT by default so hosts can pipe help the way they
// would any usage text.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stdout}
}

// Redirect sends all further output to writer. Pass [io.Discard] to silence
// the parser entirely.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}
