package chain

import (
	"strings"
	"unicode/utf8"
)

// directive is one clause of the chain-argument prologue, e.g. "repeat 3".
type directive struct {
	name string
	args []string
}

// splitChainArgs separates the optional directive prologue from the command
// body. The prologue ends at the first args-delimiter rune; clauses are
// comma-separated, each clause space-separated into name and arguments.
// Unknown directive names are kept here and simply never interpreted, so new
// directives can appear without breaking old chains.
func (p *Processor) splitChainArgs(s string) ([]directive, string) {
	idx := strings.IndexRune(s, p.cfg.Syntax.ArgsDelim)
	if idx < 0 {
		return nil, s
	}

	prologue := s[:idx]
	body := s[idx+utf8.RuneLen(p.cfg.Syntax.ArgsDelim):]

	var directives []directive
	for _, clause := range strings.Split(prologue, ",") {
		fields := strings.Fields(clause)
		if len(fields) == 0 {
			continue
		}
		directives = append(directives, directive{name: fields[0], args: fields[1:]})
	}

	return directives, body
}
