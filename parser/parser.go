package parser

import (
	"fmt"

	"github.com/rsk700/leap-lang/lexer"
	"github.com/rsk700/leap-lang/span"
	"github.com/rsk700/leap-lang/token"
)

// Error is a parse failure: the first unexpected token, with a span and a
// human-readable expectation. spec.md §4.3/§7: no recovery, first failure
// aborts the parse.
type Error struct {
	Span    span.Span
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (at byte %d)", e.Message, e.Span.Start)
}

func errAt(tok token.Token, message string) *Error {
	return &Error{Span: tok.Span, Message: message}
}

// Parser consumes a token.Stream and builds one Tree per top-level
// declaration, LL(1), per the grammar in spec.md §4.3.
type Parser struct {
	stream *token.Stream
}

// New constructs a Parser over src, tokenizing it with lexer.Tokenize.
func New(src string) *Parser {
	return &Parser{stream: lexer.Tokenize(src)}
}

// ParseAll repeatedly parses Start productions until the stream is
// exhausted, returning the declarations in source order. The whole-tree
// CalcLength pass runs on each declaration before it is returned.
func ParseAll(src string) ([]*Tree, error) {
	p := New(src)
	var trees []*Tree
	for p.stream.Get().Kind != token.End {
		tree, err := p.parseStart()
		if err != nil {
			return nil, err
		}
		tree.CalcLength()
		trees = append(trees, tree)
	}
	return trees, nil
}

func (p *Parser) parseStart() (*Tree, error) {
	tree := newTree(Start, p.stream.Get().Span)
	switch p.stream.Get().Kind {
	case token.Struct:
		child, err := p.parseStructDef()
		if err != nil {
			return nil, err
		}
		tree.Children = append(tree.Children, child)
	case token.Enum:
		child, err := p.parseEnumDef()
		if err != nil {
			return nil, err
		}
		tree.Children = append(tree.Children, child)
	default:
		return nil, errAt(p.stream.Get(), "Expecting `.enum` or `.struct`")
	}
	return tree, nil
}

func (p *Parser) parseStructDef() (*Tree, error) {
	tree := newTree(StructDef, p.stream.Get().Span)
	if p.stream.Get().Kind != token.Struct {
		return nil, errAt(p.stream.Get(), "Expecting `.struct`")
	}
	p.stream.Next()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	tArgs, err := p.parseTArgsDef()
	if err != nil {
		return nil, err
	}
	props, err := p.parsePropsDef()
	if err != nil {
		return nil, err
	}
	tree.Children = []*Tree{name, tArgs, props}
	return tree, nil
}

func (p *Parser) parseEnumDef() (*Tree, error) {
	tree := newTree(EnumDef, p.stream.Get().Span)
	if p.stream.Get().Kind != token.Enum {
		return nil, errAt(p.stream.Get(), "Expecting `.enum`")
	}
	p.stream.Next()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	tArgs, err := p.parseTArgsDef()
	if err != nil {
		return nil, err
	}
	variants, err := p.parseVariantsDef()
	if err != nil {
		return nil, err
	}
	tree.Children = []*Tree{name, tArgs, variants}
	return tree, nil
}

func (p *Parser) parseTArgsDef() (*Tree, error) {
	tree := newTree(TArgsDef, p.stream.Get().Span)
	if p.stream.Get().Kind == token.BracketLeft {
		p.stream.Next()
		args, err := p.parseTArgs()
		if err != nil {
			return nil, err
		}
		if p.stream.Get().Kind != token.BracketRight {
			return nil, errAt(p.stream.Get(), "Expecting `]`")
		}
		p.stream.Next()
		tree.Children = append(tree.Children, args)
	}
	return tree, nil
}

func (p *Parser) parseTArgs() (*Tree, error) {
	tree := newTree(TArgs, p.stream.Get().Span)
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	tree.Children = append(tree.Children, name)
	if p.stream.Get().Kind == token.Word {
		rest, err := p.parseTArgs()
		if err != nil {
			return nil, err
		}
		tree.Children = append(tree.Children, rest)
	}
	return tree, nil
}

func (p *Parser) parsePropsDef() (*Tree, error) {
	tree := newTree(PropsDef, p.stream.Get().Span)
	if p.stream.Get().Kind == token.Word {
		prop, err := p.parseProp()
		if err != nil {
			return nil, err
		}
		rest, err := p.parsePropsDef()
		if err != nil {
			return nil, err
		}
		tree.Children = []*Tree{prop, rest}
	}
	return tree, nil
}

func (p *Parser) parseProp() (*Tree, error) {
	tree := newTree(Prop, p.stream.Get().Span)
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if p.stream.Get().Kind != token.Colon {
		return nil, errAt(p.stream.Get(), "Expecting `:`")
	}
	p.stream.Next()
	ptype, err := p.parsePType()
	if err != nil {
		return nil, err
	}
	tree.Children = []*Tree{name, ptype}
	return tree, nil
}

func (p *Parser) parseVariantsDef() (*Tree, error) {
	tree := newTree(VariantsDef, p.stream.Get().Span)
	if p.stream.Get().Kind == token.Word {
		ptype, err := p.parsePType()
		if err != nil {
			return nil, err
		}
		rest, err := p.parseVariantsDef()
		if err != nil {
			return nil, err
		}
		tree.Children = []*Tree{ptype, rest}
	}
	return tree, nil
}

func (p *Parser) parsePType() (*Tree, error) {
	tree := newTree(PType, p.stream.Get().Span)
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	tree.Children = append(tree.Children, name)
	if p.stream.Get().Kind == token.BracketLeft {
		block, err := p.parsePTArgsBlock()
		if err != nil {
			return nil, err
		}
		tree.Children = append(tree.Children, block)
	}
	return tree, nil
}

func (p *Parser) parsePTArgsBlock() (*Tree, error) {
	tree := newTree(PTArgsBlock, p.stream.Get().Span)
	if p.stream.Get().Kind != token.BracketLeft {
		return nil, errAt(p.stream.Get(), "Expecting `[`")
	}
	p.stream.Next()
	args, err := p.parsePTArgs()
	if err != nil {
		return nil, err
	}
	if p.stream.Get().Kind != token.BracketRight {
		return nil, errAt(p.stream.Get(), "Expecting `]`")
	}
	p.stream.Next()
	tree.Children = append(tree.Children, args)
	return tree, nil
}

func (p *Parser) parsePTArgs() (*Tree, error) {
	tree := newTree(PTArgs, p.stream.Get().Span)
	ptype, err := p.parsePType()
	if err != nil {
		return nil, err
	}
	tree.Children = append(tree.Children, ptype)
	if p.stream.Get().Kind == token.Word {
		rest, err := p.parsePTArgs()
		if err != nil {
			return nil, err
		}
		tree.Children = append(tree.Children, rest)
	}
	return tree, nil
}

func (p *Parser) parseName() (*Tree, error) {
	tok := p.stream.Consume()
	if tok.Kind != token.Word {
		return nil, errAt(tok, "Expecting name")
	}
	return &Tree{Variant: Name, Text: tok.Text, Span: tok.Span}, nil
}
