package einops

import "github.com/gomlx/tensorshape/shape"

// Parser is a recursive-descent parser over an einops token stream
// (grammar: `pattern := side '->' side`).
type Parser struct {
	tokens []Token
	current int
	source string
}

// Parse scans and parses the given pattern string, enforcing the
// rejection rules names: empty input/output, multiple
// arrows, unmatched parens, a repeated identifier on one side, and
// multiple ellipses on one side.
func Parse(pattern string) (Pattern, error) {
	tokens, err := NewScanner(pattern).ScanTokens()
	if err != nil {
		return Pattern{}, err
	}
	p := &Parser{tokens: tokens, source: pattern}
	return p.parsePattern()
}

func (p *Parser) parsePattern() (Pattern, error) {
	input, err := p.parseSide()
	if err != nil {
		return Pattern{}, err
	}
	if len(input.Atoms) == 0 {
		return Pattern{}, shape.NewError(shape.EmptyPattern, "einops pattern %q has an empty input side", p.source)
	}

	if !p.check(TokenArrow) {
		return Pattern{}, shape.NewError(shape.MultipleArrows, "einops pattern %q is missing '->'", p.source)
	}
	p.advance()

	output, err := p.parseSide()
	if err != nil {
		return Pattern{}, err
	}
	if len(output.Atoms) == 0 {
		return Pattern{}, shape.NewError(shape.EmptyPattern, "einops pattern %q has an empty output side", p.source)
	}

	if !p.check(TokenEOF) {
		if p.check(TokenArrow) {
			return Pattern{}, shape.NewError(shape.MultipleArrows, "einops pattern %q has more than one '->'", p.source)
		}
		return Pattern{}, shape.NewError(shape.PatternRankMismatch, "unexpected trailing tokens in einops pattern %q", p.source)
	}

	if err := checkSideConstraints(input); err != nil {
		return Pattern{}, err
	}
	if err := checkSideConstraints(output); err != nil {
		return Pattern{}, err
	}

	return Pattern{Input: input, Output: output}, nil
}

// parseSide parses atoms until it hits '->' or end-of-input; it does not
// itself enforce the higher-level rules (empty/duplicate/ellipsis counts),
// which checkSideConstraints and parsePattern apply once the whole side is
// known.
func (p *Parser) parseSide() (Side, error) {
	var atoms []Atom
	for !p.check(TokenArrow) && !p.check(TokenEOF) {
		atom, err := p.parseAtom()
		if err != nil {
			return Side{}, err
		}
		atoms = append(atoms, atom)
	}
	return Side{Atoms: atoms}, nil
}

func (p *Parser) parseAtom() (Atom, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenAxis:
		p.advance()
		return Axis{Name: tok.Text}, nil
	case TokenSingleton:
		p.advance()
		return Singleton{}, nil
	case TokenEllipsis:
		p.advance()
		return Ellipsis{}, nil
	case TokenLParen:
		p.advance()
		var inner []Atom
		for !p.check(TokenRParen) {
			if p.check(TokenEOF) || p.check(TokenArrow) {
				return nil, shape.NewError(shape.UnmatchedParen, "unmatched '(' in einops pattern %q", p.source)
			}
			atom, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			inner = append(inner, atom)
		}
		p.advance()
		return Composite{Atoms: inner}, nil
	case TokenRParen:
		return nil, shape.NewError(shape.UnmatchedParen, "unmatched ')' in einops pattern %q", p.source)
	default:
		return nil, shape.NewError(shape.PatternRankMismatch, "unexpected token %s in einops pattern %q", tok, p.source)
	}
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.current]
	if tok.Kind != TokenEOF {
		p.current++
	}
	return tok
}

// checkSideConstraints enforces "an identifier appears at most once" and
// "at most one ellipsis" across an entire side, including inside
// composites.
func checkSideConstraints(side Side) error {
	seen := map[string]bool{}
	ellipses := 0
	var walk func(atoms []Atom) error
	walk = func(atoms []Atom) error {
		for _, atom := range atoms {
			switch a := atom.(type) {
			case Axis:
				if seen[a.Name] {
					return shape.NewError(shape.DuplicateIdentifier, "identifier %q appears more than once on the same side of an einops pattern", a.Name)
				}
				seen[a.Name] = true
			case Ellipsis:
				ellipses++
				if ellipses > 1 {
					return shape.NewError(shape.MultipleEllipses, "more than one '...' on the same side of an einops pattern")
				}
			case Composite:
				if err := walk(a.Atoms); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(side.Atoms)
}
