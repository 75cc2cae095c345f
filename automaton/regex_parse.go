package automaton

import "strings"

// regexTokenKind tags one lexical token of a regex pattern.
type regexTokenKind uint8

const (
	tokSymbol regexTokenKind = iota
	tokEpsilon
	tokLParen
	tokRParen
	tokPipe
	tokStar
	tokPlus
	tokQuestion
	tokEOF
)

type regexToken struct {
	kind regexTokenKind
	text string
}

func isOperatorRune(r rune) bool {
	switch r {
	case '(', ')', '|', '*', '+', '?', '$':
		return true
	default:
		return false
	}
}

func tokenizeRegex(pattern string) []regexToken {
	var toks []regexToken
	runes := []rune(pattern)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			i++
		case r == '(':
			toks = append(toks, regexToken{tokLParen, "("})
			i++
		case r == ')':
			toks = append(toks, regexToken{tokRParen, ")"})
			i++
		case r == '|':
			toks = append(toks, regexToken{tokPipe, "|"})
			i++
		case r == '*':
			toks = append(toks, regexToken{tokStar, "*"})
			i++
		case r == '+':
			toks = append(toks, regexToken{tokPlus, "+"})
			i++
		case r == '?':
			toks = append(toks, regexToken{tokQuestion, "?"})
			i++
		case r == '$':
			toks = append(toks, regexToken{tokEpsilon, "$"})
			i++
		default:
			var sb strings.Builder
			for i < len(runes) && !isOperatorRune(runes[i]) && runes[i] != ' ' && runes[i] != '\t' && runes[i] != '\n' && runes[i] != '\r' {
				sb.WriteRune(runes[i])
				i++
			}
			toks = append(toks, regexToken{tokSymbol, sb.String()})
		}
	}
	toks = append(toks, regexToken{tokEOF, ""})
	return toks
}

// regexParser is a small recursive-descent parser over the token stream.
type regexParser struct {
	toks []regexToken
	pos  int
}

func (p *regexParser) peek() regexToken { return p.toks[p.pos] }

func (p *regexParser) next() regexToken {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// parseRegex parses pattern into an AST. Returns ErrEmptyRegex for "" and
// ErrRegexSyntax for any malformed pattern (unbalanced parens, a dangling
// operator, trailing tokens after a complete parse).
func parseRegex(pattern string) (*regexNode, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, ErrEmptyRegex
	}
	p := &regexParser{toks: tokenizeRegex(pattern)}
	node, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, ErrRegexSyntax
	}
	return node, nil
}

func (p *regexParser) parseUnion() (*regexNode, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	children := []*regexNode{first}
	for p.peek().kind == tokPipe {
		p.next()
		n, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return &regexNode{kind: regexUnion, children: children}, nil
}

func startsAtom(k regexTokenKind) bool {
	return k == tokSymbol || k == tokEpsilon || k == tokLParen
}

func (p *regexParser) parseConcat() (*regexNode, error) {
	var children []*regexNode
	for startsAtom(p.peek().kind) {
		n, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	if len(children) == 0 {
		return nil, ErrRegexSyntax
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return &regexNode{kind: regexConcat, children: children}, nil
}

func (p *regexParser) parsePostfix() (*regexNode, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			atom = &regexNode{kind: regexStar, children: []*regexNode{atom}}
		case tokPlus:
			p.next()
			atom = &regexNode{kind: regexPlus, children: []*regexNode{atom}}
		case tokQuestion:
			p.next()
			atom = &regexNode{kind: regexOptional, children: []*regexNode{atom}}
		default:
			return atom, nil
		}
	}
}

func (p *regexParser) parseAtom() (*regexNode, error) {
	t := p.next()
	switch t.kind {
	case tokSymbol:
		return &regexNode{kind: regexSymbol, symbol: t.text}, nil
	case tokEpsilon:
		return &regexNode{kind: regexEpsilon}, nil
	case tokLParen:
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, ErrRegexSyntax
		}
		p.next()
		return inner, nil
	default:
		return nil, ErrRegexSyntax
	}
}
