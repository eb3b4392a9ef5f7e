package calcolatrice

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// lexToken is a whitespace-delimited term of an expression.
type lexToken struct {
	text string
	// pos is the 1-based rune position of the start of the token.
	pos int
	// off is the byte offset of the start of the token.
	off int
}

func (t lexToken) String() string {
	return t.text + "@" + strconv.Itoa(t.pos)
}

type lexer struct {
	src  string
	off  int
	rune int
}

func lex(src string) *lexer {
	return &lexer{src: src, rune: 1}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, sz int) {
	r, sz = utf8.DecodeRuneInString(l.src[l.off:])
	l.off += sz
	l.rune++
	return r, sz
}

// unreadRune unreads the last rune, which had size sz.
func (l *lexer) unreadRune(sz int) {
	l.off -= sz
	l.rune--
}

// next scans the next token from the input. ok is false once only whitespace
// remains.
func (l *lexer) next() (tok lexToken, ok bool) {
	for l.off < len(l.src) {
		r, sz := l.readRune()
		if unicode.IsSpace(r) {
			continue
		}
		l.unreadRune(sz)
		tok = lexToken{pos: l.rune, off: l.off}
		for l.off < len(l.src) {
			r, sz := l.readRune()
			if unicode.IsSpace(r) {
				l.unreadRune(sz)
				break
			}
		}
		tok.text = l.src[tok.off:l.off]
		return tok, true
	}
	return lexToken{}, false
}

// all scans every remaining token.
func (l *lexer) all() []lexToken {
	var v []lexToken
	for tok, ok := l.next(); ok; tok, ok = l.next() {
		v = append(v, tok)
	}
	return v
}
