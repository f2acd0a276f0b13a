package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/leonardinius/golury/internal/logger"
)

type palette struct {
	severity map[logger.OutputCategory]*color.Color
	caret    *color.Color
	gutter   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		severity: map[logger.OutputCategory]*color.Color{
			logger.Error: color.New(color.FgRed, color.Bold),
			logger.Warn:  color.New(color.FgYellow, color.Bold),
			logger.Info:  color.New(color.FgCyan, color.Bold),
		},
		caret:  color.New(color.FgGreen, color.Bold),
		gutter: color.New(color.FgBlue),
	}
	for _, c := range p.all() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) all() []*color.Color {
	return []*color.Color{p.severity[logger.Error], p.severity[logger.Warn], p.severity[logger.Info], p.caret, p.gutter}
}

// Text writes outputs in a human readable form:
//
//	main.lury:1:6: ERROR E0006: operator is not defined for the operand types 'and'
//	  | true and "x"
//	  |      ^~~
//	  = unsupported binary operation. Operator 'and' is not defined for boolean and string.
//
// followed by a summary line. truncated is the number of outputs left out.
func Text(w io.Writer, outputs []logger.CompileOutput, truncated int, colored bool) error {
	p := newPalette(colored)
	var b strings.Builder

	for _, o := range outputs {
		writeOutput(&b, p, o)
	}

	if truncated > 0 {
		fmt.Fprintf(&b, "... %d more not shown\n", truncated)
	}
	if len(outputs) > 0 || truncated > 0 {
		b.WriteString(summary(outputs, truncated))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeOutput(b *strings.Builder, p palette, o logger.CompileOutput) {
	if loc := location(o); loc != "" {
		b.WriteString(loc)
		b.WriteString(": ")
	}
	sev := p.severity[o.Category()]
	if sev == nil {
		sev = p.gutter
	}
	b.WriteString(sev.Sprintf("%s %s", o.Category(), o.ID()))
	b.WriteString(": ")
	b.WriteString(o.Message())
	if code := o.Code(); code != nil && *code != "" {
		fmt.Fprintf(b, " '%s'", *code)
	}
	b.WriteString("\n")

	if source := o.SourceCode(); source != nil {
		fmt.Fprintf(b, "  %s %s\n", p.gutter.Sprint("|"), *source)
		if col := o.Position().Column; col > 0 {
			fmt.Fprintf(b, "  %s %s%s\n", p.gutter.Sprint("|"), caretPadding(*source, col), p.caret.Sprint(underline(o.Code())))
		}
	}

	if appendix := o.Appendix(); appendix != nil {
		fmt.Fprintf(b, "  %s %s\n", p.gutter.Sprint("="), *appendix)
	}
}

func location(o logger.CompileOutput) string {
	pos := o.Position()
	switch {
	case o.File() != "" && !pos.IsZero():
		return fmt.Sprintf("%s:%d:%d", o.File(), pos.Line, pos.Column)
	case o.File() != "":
		return o.File()
	case !pos.IsZero():
		return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	return ""
}

// caretPadding returns the blank prefix that puts a caret under the given
// 1-based column of line. Tabs are kept so the caret lines up in terminals,
// wide characters take their display width.
func caretPadding(line string, column int) string {
	var pad strings.Builder
	for i, r := range []rune(line) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			pad.WriteRune('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return pad.String()
}

func underline(code *string) string {
	width := 1
	if code != nil {
		if w := runewidth.StringWidth(*code); w > 1 {
			width = w
		}
	}
	return "^" + strings.Repeat("~", width-1)
}

func summary(outputs []logger.CompileOutput, truncated int) string {
	var errs, warns, infos int
	for _, o := range outputs {
		switch o.Category() {
		case logger.Error:
			errs++
		case logger.Warn:
			warns++
		case logger.Info:
			infos++
		}
	}
	s := fmt.Sprintf("%s, %s, %s", plural(errs, "error"), plural(warns, "warning"), plural(infos, "info"))
	if truncated > 0 {
		s += fmt.Sprintf(" shown (%d truncated)", truncated)
	}
	return s
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
