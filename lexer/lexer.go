// Package lexer turns raw schema-language source into a token.Stream.
//
// The algorithm is a single left-to-right scan (grounded on the scan/flush
// style of k8s.io/idl/kdlc/lexer, pared down to the much smaller grammar
// this language has): a Word accumulates runs of letters, digits, `-`, and
// `.`; any of `[`, `]`, `:` flushes the current word and emits its own
// single-byte token; whitespace flushes the word; `/` flushes the word and
// discards the rest of the line, since line comments are invisible to the
// parser (comment.Scan runs as a wholly independent pass).
package lexer

import (
	"unicode"

	"github.com/rsk700/leap-lang/span"
	"github.com/rsk700/leap-lang/token"
)

// Tokenize scans src into a token.Stream. It never fails: any character not
// recognized as part of a word, a delimiter, or a comment marker simply
// flushes the pending word and is otherwise ignored, matching spec.md §7
// ("Lexer errors do not exist").
func Tokenize(src string) *token.Stream {
	var tokens []token.Token
	var word []byte
	wordStart := 0
	inComment := false

	flush := func() {
		if len(word) == 0 {
			return
		}
		tokens = append(tokens, token.Token{
			Kind: token.Word,
			Text: string(word),
			Span: span.New(wordStart, len(word)),
		})
		word = word[:0]
	}
	emit := func(kind token.Kind, start, length int) {
		tokens = append(tokens, token.Token{Kind: kind, Span: span.New(start, length)})
	}

	for i, r := range src {
		if inComment {
			if r == '\n' {
				inComment = false
			}
			continue
		}
		switch r {
		case '[':
			flush()
			emit(token.BracketLeft, i, 1)
		case ']':
			flush()
			emit(token.BracketRight, i, 1)
		case ':':
			flush()
			emit(token.Colon, i, 1)
		case '/':
			flush()
			inComment = true
		default:
			if isWordRune(r) {
				if len(word) == 0 {
					wordStart = i
				}
				word = append(word, string(r)...)
			} else {
				flush()
			}
		}
	}
	flush()

	reclassify(tokens)

	endPos := 0
	if len(tokens) > 0 {
		endPos = tokens[len(tokens)-1].Span.End()
	}
	end := token.Token{Kind: token.End, Span: span.New(endPos, 0)}
	return token.NewStream(tokens, end)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.'
}

// reclassify turns the two reserved words into their dedicated token kinds,
// in place, once the whole source has been scanned (so `.struct` and
// `.enum` are lexed like any other word until the very end).
func reclassify(tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Kind != token.Word {
			continue
		}
		switch tokens[i].Text {
		case ".struct":
			tokens[i].Kind = token.Struct
		case ".enum":
			tokens[i].Kind = token.Enum
		}
	}
}
