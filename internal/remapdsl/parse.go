package remapdsl

import "fmt"

// ParseError is returned by Parse, anchored at the offending token per
// spec §4.4's "each error stage must emit a message anchored at the
// offending token's source location."
type ParseError struct {
	Pos Pos
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

type parser struct {
	tokens []token
	pos    int
}

// Parse tokenizes and parses src into an Ast, implementing the grammar:
//
//	remap       = layer ("," layer)* ","?
//	layer       = IDENT layer_opts? ":" "{" keymap ("," keymap)* ","? "}"
//	layer_opts  = "[" IDENT ("," IDENT)* "]"
//	keymap      = key "->" rhs
//	key         = IDENT
//	rhs         = key | key_function
//	key_function= IDENT "(" (arg ("," arg)*)? ")"
//	arg         = IDENT
func Parse(src string) (*Ast, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	ast, err := p.parseAst()
	if err != nil {
		return nil, err
	}
	return ast, nil
}

func (p *parser) parseAst() (*Ast, error) {
	var layers []LayerSyntax
	for p.peek().kind != tokEOF {
		layer, err := p.parseLayer()
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)

		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if p.peek().kind != tokEOF {
		return nil, p.unexpected("',' or end of input")
	}
	if len(layers) == 0 {
		return nil, &ParseError{Pos: p.peek().pos, Msg: "remap program declares no layers"}
	}
	return &Ast{Layers: layers}, nil
}

func (p *parser) parseLayer() (LayerSyntax, error) {
	nameTok, err := p.expect(tokIdent, "layer name")
	if err != nil {
		return LayerSyntax{}, err
	}
	layer := LayerSyntax{Name: nameTok.text, NamePos: nameTok.pos}

	if p.peek().kind == tokLBracket {
		opts, err := p.parseLayerOpts()
		if err != nil {
			return LayerSyntax{}, err
		}
		layer.Opts = opts
	}

	if _, err := p.expect(tokColon, "':'"); err != nil {
		return LayerSyntax{}, err
	}
	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return LayerSyntax{}, err
	}

	for p.peek().kind != tokRBrace {
		km, err := p.parseKeyMap()
		if err != nil {
			return LayerSyntax{}, err
		}
		layer.KeyMaps = append(layer.KeyMaps, km)

		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRBrace, "'}'"); err != nil {
		return LayerSyntax{}, err
	}
	if len(layer.KeyMaps) == 0 {
		return LayerSyntax{}, &ParseError{Pos: layer.NamePos, Msg: fmt.Sprintf("layer %q has no keymaps", layer.Name)}
	}
	return layer, nil
}

func (p *parser) parseLayerOpts() ([]LayerOptSyntax, error) {
	if _, err := p.expect(tokLBracket, "'['"); err != nil {
		return nil, err
	}
	var opts []LayerOptSyntax
	for {
		tok, err := p.expect(tokIdent, "layer option")
		if err != nil {
			return nil, err
		}
		opts = append(opts, LayerOptSyntax{Name: tok.text, Pos: tok.pos})
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}
	return opts, nil
}

func (p *parser) parseKeyMap() (KeyMapSyntax, error) {
	keyTok, err := p.expect(tokIdent, "key")
	if err != nil {
		return KeyMapSyntax{}, err
	}
	if _, err := p.expect(tokArrow, "'->'"); err != nil {
		return KeyMapSyntax{}, err
	}
	rhs, err := p.parseControlCode()
	if err != nil {
		return KeyMapSyntax{}, err
	}
	return KeyMapSyntax{Key: keyTok.text, KeyPos: keyTok.pos, RHS: rhs}, nil
}

func (p *parser) parseControlCode() (ControlCodeSyntax, error) {
	nameTok, err := p.expect(tokIdent, "key or key-function name")
	if err != nil {
		return ControlCodeSyntax{}, err
	}

	if p.peek().kind != tokLParen {
		return ControlCodeSyntax{IsFunction: false, Key: nameTok.text, Pos: nameTok.pos}, nil
	}

	p.advance() // '('
	var args []ArgSyntax
	for p.peek().kind != tokRParen {
		argTok, err := p.expect(tokIdent, "key-function argument")
		if err != nil {
			return ControlCodeSyntax{}, err
		}
		args = append(args, ArgSyntax{Name: argTok.text, Pos: argTok.pos})
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return ControlCodeSyntax{}, err
	}
	return ControlCodeSyntax{
		IsFunction: true,
		Pos:        nameTok.pos,
		FuncName:   nameTok.text,
		FuncPos:    nameTok.pos,
		Args:       args,
	}, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	tok := p.peek()
	if tok.kind != kind {
		return token{}, p.unexpected(what)
	}
	return p.advance(), nil
}

func (p *parser) unexpected(expected string) error {
	tok := p.peek()
	if tok.kind == tokEOF {
		return &ParseError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected end of input, expected %s", expected)}
	}
	return &ParseError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %s %q, expected %s", tok.kind, tok.text, expected)}
}
