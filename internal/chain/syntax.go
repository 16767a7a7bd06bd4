package chain

import "fmt"

// Sentinel runes substituted for syntax characters that appear inside quoted
// spans. They live in the Unicode private use area so they can never collide
// with legitimate message text; the segment executor swaps them back before
// arguments reach a command.
const (
	escDelimiter = '' // quoted chain delimiter
	escPrevious  = '' // quoted previous-result marker
	escSpace     = '' // quoted space
)

// Syntax holds the seven single-rune control characters of the chain
// language. QuoteStart and QuoteEnd may be the same rune; in that case the
// quote character simply toggles quoting. An unterminated quote extends to
// the end of the chain.
type Syntax struct {
	Previous   rune // stands for the previous command's result
	Delimiter  rune // separates commands in a chain
	ArgsDelim  rune // separates the directive prologue from the body
	SubStart   rune // opens a nested sub-chain
	SubEnd     rune // closes a nested sub-chain
	QuoteStart rune // opens a literal span
	QuoteEnd   rune // closes a literal span
}

// DefaultSyntax returns the stock chain syntax: ~ > : [ ] " "
func DefaultSyntax() Syntax {
	return Syntax{
		Previous:   '~',
		Delimiter:  '>',
		ArgsDelim:  ':',
		SubStart:   '[',
		SubEnd:     ']',
		QuoteStart: '"',
		QuoteEnd:   '"',
	}
}

// Validate rejects syntaxes the processor cannot work with: missing runes or
// runes that collide with the internal escape sentinels.
func (s Syntax) Validate() error {
	runes := map[string]rune{
		"previous":    s.Previous,
		"delimiter":   s.Delimiter,
		"args delim":  s.ArgsDelim,
		"sub start":   s.SubStart,
		"sub end":     s.SubEnd,
		"quote start": s.QuoteStart,
		"quote end":   s.QuoteEnd,
	}
	for name, r := range runes {
		if r == 0 {
			return fmt.Errorf("syntax: %s rune is not set", name)
		}
		if r == escDelimiter || r == escPrevious || r == escSpace {
			return fmt.Errorf("syntax: %s rune %q collides with an escape sentinel", name, r)
		}
	}
	if s.SubStart == s.SubEnd {
		return fmt.Errorf("syntax: sub-chain start and end must differ")
	}
	return nil
}
