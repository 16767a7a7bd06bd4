package chain

import (
	"fmt"
	"strings"
)

// executeBody splits the command body on the chain delimiter and runs the
// segments in order, threading each result into the next segment's
// previous-result marker. The threaded value starts empty and the last
// segment's result is the body's result.
func (p *Processor) executeBody(body string, ev Event, depth int) string {
	syn := p.cfg.Syntax
	delim := string(syn.Delimiter)

	// A chain may address a command whose name is the delimiter itself.
	// Strip one leading delimiter before splitting and glue it back onto
	// the first segment, so no empty leading segment is produced.
	rest := strings.TrimSpace(body)
	leading := strings.HasPrefix(rest, delim)
	if leading {
		rest = strings.TrimPrefix(rest, delim)
	}

	segments := strings.Split(rest, delim)
	chained := depth > 0 || len(segments) > 1

	prev := ""
	for i, seg := range segments {
		if i == 0 && leading {
			seg = delim + seg
		}
		prev = p.executeSegment(seg, ev, prev, chained)
	}
	return prev
}

// executeSegment runs one delimiter-separated segment: restore quoted
// delimiters, split off the command name, resolve the previous-result
// marker, restore the remaining sentinels, and dispatch.
func (p *Processor) executeSegment(seg string, ev Event, prev string, chained bool) string {
	syn := p.cfg.Syntax

	// Delimiters that were quoted are literal text, not separators.
	seg = strings.ReplaceAll(seg, string(escDelimiter), string(syn.Delimiter))
	seg = strings.TrimSpace(seg)

	name := seg
	rawArgs := ""
	if i := strings.IndexAny(seg, " \t"); i >= 0 {
		name = seg[:i]
		rawArgs = strings.TrimSpace(seg[i+1:])
	}
	name = unescapeToken(name, syn)

	// Every command implicitly receives the previous result unless it
	// places the marker itself.
	if !strings.ContainsRune(rawArgs, syn.Previous) {
		if rawArgs == "" {
			rawArgs = string(syn.Previous)
		} else {
			rawArgs += " " + string(syn.Previous)
		}
	}
	rawArgs = strings.ReplaceAll(rawArgs, string(syn.Previous), prev)

	// Split first, then restore sentinels, so quoted spaces stay inside
	// a single argument.
	args := strings.Fields(rawArgs)
	for i := range args {
		args[i] = unescapeToken(args[i], syn)
	}

	return p.dispatch(name, ev, args, chained)
}

// unescapeToken restores quoted previous-marker and space sentinels in one
// finished token. Together with the delimiter restore in executeSegment this
// makes quoting lossless: whatever was typed inside quotes comes back out.
func unescapeToken(tok string, syn Syntax) string {
	tok = strings.ReplaceAll(tok, string(escPrevious), string(syn.Previous))
	tok = strings.ReplaceAll(tok, string(escSpace), " ")
	return tok
}

// dispatch resolves and invokes one command. Every failure mode here is a
// per-segment notice plus an empty result; siblings in the chain still run.
func (p *Processor) dispatch(name string, ev Event, args []string, chained bool) string {
	cmd, ok := p.reg.Lookup(name)
	if !ok {
		if p.cfg.NotFoundFormat != "" {
			ev.Respond(fmt.Sprintf(p.cfg.NotFoundFormat, name))
		}
		return ""
	}

	if len(args) < cmd.MinArgs || (cmd.MaxArgs >= 0 && len(args) > cmd.MaxArgs) {
		notice := fmt.Sprintf("Wrong number of arguments for `%s`.", name)
		if cmd.Usage != "" {
			notice += " Usage: " + cmd.Usage
		}
		ev.Respond(notice)
		return ""
	}

	if chained && !cmd.ChainUsable {
		ev.Respond(fmt.Sprintf("The command `%s` can't be used in a chain.", name))
		return ""
	}

	return cmd.Invoke(ev, args)
}
