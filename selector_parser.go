package jsonquery

import (
	"fmt"
	"strconv"
)

// DefaultMaxChainDepth bounds the number of steps a single chain may carry,
// guarding against pathological input the way DefaultMaxNestingDepth does
// for the JSON parser.
const DefaultMaxChainDepth = 1024

// SelectorOption configures ParseSelector.
type SelectorOption func(*selectorParser)

// WithMaxChainDepth overrides DefaultMaxChainDepth.
func WithMaxChainDepth(depth int) SelectorOption {
	return func(p *selectorParser) { p.maxDepth = depth }
}

type selectorParser struct {
	s        *scanner
	maxDepth int
}

// ParseSelector parses src as a selector program: a non-empty,
// comma-separated list of non-empty step chains, per §4.3 of the
// specification. Whitespace between tokens is permitted and ignored
// everywhere in the grammar.
func ParseSelector(src string, opts ...SelectorOption) (*Program, error) {
	p := &selectorParser{s: newScanner(src), maxDepth: DefaultMaxChainDepth}
	for _, opt := range opts {
		opt(p)
	}
	p.skipWhite()
	chain, err := p.parseChain()
	if err != nil {
		return nil, err
	}
	chains := []Chain{chain}
	for {
		p.skipWhite()
		if p.s.eof() {
			break
		}
		if p.s.peek() != ',' {
			// A chain was matched in full, so the program grammar's prefix
			// already succeeded; whatever remains doesn't fit the
			// comma-separator production. This is the "trailing input
			// after successful match" case the specification calls out as
			// a ParseFailure rather than a grammar-level SyntaxError.
			return nil, p.trailingInputFailure()
		}
		p.s.advance()
		p.skipWhite()
		chain, err := p.parseChain()
		if err != nil {
			return nil, err
		}
		chains = append(chains, chain)
	}
	return &Program{Chains: chains}, nil
}

// trailingInputFailure builds the ParseFailure reported when a complete
// chain has been parsed but unconsumed, non-comma input remains.
func (p *selectorParser) trailingInputFailure() *ParseFailure {
	remainder := string(p.s.src[p.s.offset:])
	const maxPreview = 20
	if r := []rune(remainder); len(r) > maxPreview {
		remainder = string(r[:maxPreview]) + "..."
	}
	return &ParseFailure{
		Reason: fmt.Sprintf("trailing input after selector program at line %d, column %d: %q",
			p.s.line, p.s.col, remainder),
	}
}

func (p *selectorParser) skipWhite() {
	for !p.s.eof() {
		switch p.s.peek() {
		case ' ', '\t', '\r', '\n':
			p.s.advance()
		default:
			return
		}
	}
}

// parseChain parses one root chain: a non-empty sequence of steps, with an
// optional '.' allowed (and collapsed) between adjacent steps.
func (p *selectorParser) parseChain() (Chain, error) {
	var steps []Step
	first := true
	for {
		p.skipWhite()
		if p.s.eof() || p.s.peek() == ',' {
			break
		}
		if !isStepStart(p.s.peek()) {
			// Nothing here starts a recognized step, so the chain parsed
			// so far is already complete: the remainder isn't a grammar
			// violation inside this chain, it's input the program grammar
			// never accounted for. Stop here and let ParseSelector's
			// caller classify it (SyntaxError or ParseFailure) instead of
			// reporting it as a mid-chain syntax error.
			break
		}
		if len(steps) > p.maxDepth {
			return Chain{}, depthExceededSyntaxError(p.s.line, p.s.col, p.s.currentLineText(), p.maxDepth)
		}
		if p.s.peek() == '.' {
			// ".." is recognized before "." (eagerly): Flatten.
			if p.s.peekAt(1) == '.' {
				p.s.advance()
				p.s.advance()
				steps = append(steps, Step{Kind: StepFlatten})
				first = false
				continue
			}
			// A lone '.' followed (after any whitespace) by another step's
			// opening token is the optional separator, not an Any step:
			// consume it and let the following step be parsed normally.
			// Only a '.' that stands on its own (not followed by a step
			// token) forms an Any step, and only at the very first
			// position of the chain.
			k := 1
			for c := p.s.peekAt(k); c == ' ' || c == '\t' || c == '\r' || c == '\n'; c = p.s.peekAt(k) {
				k++
			}
			next := p.s.peekAt(k)
			if isStepStart(next) {
				p.s.advance()
				continue
			}
			if !first {
				return Chain{}, p.s.syntaxError("a selector step")
			}
			p.s.advance()
			steps = append(steps, Step{Kind: StepAny})
			first = false
			continue
		}
		step, err := p.parseBasicStep()
		if err != nil {
			return Chain{}, err
		}
		if step.Kind == StepTruncate {
			p.skipWhite()
			if !(p.s.eof() || p.s.peek() == ',') {
				return Chain{}, p.s.syntaxError("end of chain after '!'")
			}
		}
		steps = append(steps, step)
		first = false
	}
	if len(steps) == 0 {
		return Chain{}, p.s.syntaxError("a selector step")
	}
	return Chain{Steps: steps}, nil
}

func isStepStart(ch byte) bool {
	switch ch {
	case '"', '[', '{', '|', '!', '.':
		return true
	default:
		return false
	}
}

// parseBasicStep parses one of: key, bracket (Index/Range), property,
// filter, truncate. Any and Flatten are handled directly in parseChain
// since they hinge on the leading-dot disambiguation.
func (p *selectorParser) parseBasicStep() (Step, error) {
	switch p.s.peek() {
	case '"':
		key, err := p.s.scanQuotedString()
		if err != nil {
			return Step{}, err
		}
		return Step{Kind: StepKey, Key: key}, nil
	case '[':
		return p.parseBracket()
	case '{':
		return p.parseProperty()
	case '|':
		p.s.advance()
		p.skipWhite()
		if p.s.peek() != '"' {
			return Step{}, p.s.syntaxError("a quoted key after '|'")
		}
		key, err := p.s.scanQuotedString()
		if err != nil {
			return Step{}, err
		}
		return Step{Kind: StepFilter, Key: key}, nil
	case '!':
		p.s.advance()
		return Step{Kind: StepTruncate}, nil
	default:
		return Step{}, p.s.syntaxError(`a selector step ('"', '[', '{', '|', '!', or '.')`)
	}
}

// parseBracket parses "[" (int? (":" int?)?)? "]". The result is an Index
// iff an integer was present with no colon; otherwise a Range.
func (p *selectorParser) parseBracket() (Step, error) {
	p.s.advance() // consume '['
	p.skipWhite()
	if p.s.peek() == ']' {
		p.s.advance()
		return Step{Kind: StepRange}, nil
	}
	var start, end *int
	haveStart := false
	if n, ok, err := p.tryParseInt(); err != nil {
		return Step{}, err
	} else if ok {
		start = &n
		haveStart = true
	}
	p.skipWhite()
	isRange := false
	if p.s.peek() == ':' {
		isRange = true
		p.s.advance()
		p.skipWhite()
		if n, ok, err := p.tryParseInt(); err != nil {
			return Step{}, err
		} else if ok {
			end = &n
		}
		p.skipWhite()
	}
	if p.s.eof() || p.s.peek() != ']' {
		return Step{}, p.s.syntaxError("']'")
	}
	p.s.advance()
	if !isRange && haveStart {
		return Step{Kind: StepIndex, Index: *start}, nil
	}
	return Step{Kind: StepRange, Start: start, End: end}, nil
}

// tryParseInt parses an optional signed integer literal.
func (p *selectorParser) tryParseInt() (int, bool, error) {
	start := p.s.offset
	if p.s.peek() == '-' {
		p.s.advance()
	}
	if !isDigit(p.s.peek()) {
		p.s.offset = start
		return 0, false, nil
	}
	for !p.s.eof() && isDigit(p.s.peek()) {
		p.s.advance()
	}
	n, err := strconv.Atoi(string(p.s.src[start:p.s.offset]))
	if err != nil {
		return 0, false, p.s.syntaxError("a valid integer")
	}
	return n, true, nil
}

// parseProperty parses "{" key ("," key)* "}".
func (p *selectorParser) parseProperty() (Step, error) {
	p.s.advance() // consume '{'
	var keys []string
	for {
		p.skipWhite()
		if p.s.eof() || p.s.peek() != '"' {
			return Step{}, p.s.syntaxError("a quoted key")
		}
		key, err := p.s.scanQuotedString()
		if err != nil {
			return Step{}, err
		}
		keys = append(keys, key)
		p.skipWhite()
		if p.s.eof() {
			return Step{}, p.s.syntaxError("',' or '}'")
		}
		switch p.s.peek() {
		case ',':
			p.s.advance()
			continue
		case '}':
			p.s.advance()
			return Step{Kind: StepProperty, Props: keys}, nil
		default:
			return Step{}, p.s.syntaxError("',' or '}'")
		}
	}
}
