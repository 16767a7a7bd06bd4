package chain

import (
	"fmt"
	"strings"
)

// escape walks the raw chain once, left to right, doing two jobs in the same
// pass: quoted spans have their delimiter, previous-marker and space runes
// swapped for private sentinels (the quote runes themselves are consumed),
// and bracketed sub-chains are collected, resolved recursively and spliced
// into the output as plain text.
//
// Quotes inside a sub-chain are consumed here too, so the recursive pass
// over the collected body sees no quoting and only handles deeper brackets.
// Returns ok=false after reporting mismatched brackets; in that case nothing
// from this chain may be dispatched.
func (p *Processor) escape(raw string, ev Event, depth int) (string, bool) {
	syn := p.cfg.Syntax

	var out strings.Builder
	var sub strings.Builder
	quoted := false
	level := 0

	for _, r := range raw {
		if quoted {
			if r == syn.QuoteEnd {
				quoted = false
				continue
			}
			switch r {
			case syn.Delimiter:
				r = escDelimiter
			case syn.Previous:
				r = escPrevious
			case ' ':
				r = escSpace
			}
			if level > 0 {
				sub.WriteRune(r)
			} else {
				out.WriteRune(r)
			}
			continue
		}

		switch r {
		case syn.QuoteStart:
			quoted = true

		case syn.SubStart:
			// Only the outermost bracket pair is consumed; inner ones
			// belong to the collected body.
			if level > 0 {
				sub.WriteRune(r)
			}
			level++

		case syn.SubEnd:
			level--
			if level > 0 {
				sub.WriteRune(r)
				continue
			}
			if level < 0 {
				p.respondMismatch(ev)
				return "", false
			}
			out.WriteString(p.run(sub.String(), ev, depth+1))
			sub.Reset()

		default:
			if level > 0 {
				sub.WriteRune(r)
			} else {
				out.WriteRune(r)
			}
		}
	}

	// An unterminated quote is tolerated: the rest of the string was
	// treated as quoted. Unclosed brackets are not.
	if level != 0 {
		p.respondMismatch(ev)
		return "", false
	}

	return out.String(), true
}

func (p *Processor) respondMismatch(ev Event) {
	syn := p.cfg.Syntax
	ev.Respond(fmt.Sprintf("Mismatched sub-chain brackets: check your `%c` and `%c`.", syn.SubStart, syn.SubEnd))
}
