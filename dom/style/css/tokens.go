package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// tokens is a one-token-lookahead stream over a property value, skipping
// white space and comments.
type tokens struct {
	scan *scanner.Scanner
	next *scanner.Token
}

func tokenize(value string) *tokens {
	return &tokens{scan: scanner.New(value)}
}

func (ts *tokens) peek() *scanner.Token {
	if ts.next == nil {
		for {
			ts.next = ts.scan.Next()
			if ts.next.Type != scanner.TokenS && ts.next.Type != scanner.TokenComment {
				break
			}
		}
	}
	return ts.next
}

func (ts *tokens) pop() *scanner.Token {
	t := ts.peek()
	if t.Type != scanner.TokenEOF && t.Type != scanner.TokenError {
		ts.next = nil
	}
	return t
}

func (ts *tokens) atEnd() bool {
	return ts.peek().Type == scanner.TokenEOF
}

// isChar checks if the next token is character c, without consuming it.
func (ts *tokens) isChar(c string) bool {
	t := ts.peek()
	return t.Type == scanner.TokenChar && t.Value == c
}

func (ts *tokens) expectChar(c string) error {
	if t := ts.pop(); t.Type != scanner.TokenChar || t.Value != c {
		return unexpected(t, "'"+c+"'")
	}
	return nil
}

func (ts *tokens) expectIdent() (string, error) {
	t := ts.pop()
	if t.Type != scanner.TokenIdent {
		return "", unexpected(t, "identifier")
	}
	return t.Value, nil
}

// integer reads an optionally signed integer. A sign must immediately
// precede the digits.
func (ts *tokens) integer() (int64, error) {
	sign := ""
	if ts.isChar("-") || ts.isChar("+") {
		sign = ts.pop().Value
		if t := ts.scan.Next(); t.Type == scanner.TokenNumber {
			ts.next = t
		} else {
			return 0, unexpected(t, "digits after sign")
		}
	}
	t := ts.pop()
	if t.Type != scanner.TokenNumber {
		return 0, unexpected(t, "integer")
	}
	n, err := strconv.ParseInt(sign+t.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("illegal integer %s%s: %w", sign, t.Value, err)
	}
	return n, nil
}

func (ts *tokens) isInteger() bool {
	t := ts.peek()
	return t.Type == scanner.TokenNumber || ts.isChar("-") || ts.isChar("+")
}

func unexpected(t *scanner.Token, expected string) error {
	if t.Type == scanner.TokenError {
		return fmt.Errorf("syntax error at %d:%d: %s", t.Line, t.Column, t.Value)
	}
	if t.Type == scanner.TokenEOF {
		return fmt.Errorf("unexpected end of value, expected %s", expected)
	}
	return fmt.Errorf("unexpected %s %q at %d:%d, expected %s", t.Type, t.Value,
		t.Line, t.Column, expected)
}

// unquote removes the quotes from a CSS string token and resolves escapes.
func unquote(s string) string {
	if len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		j := i
		for j < len(s) && j-i < 6 && isHex(s[j]) {
			j++
		}
		if j == i { // escaped character or escaped newline
			if s[i] != '\n' {
				b.WriteByte(s[i])
			}
			continue
		}
		r, _ := strconv.ParseUint(s[i:j], 16, 32)
		b.WriteRune(rune(r))
		if j < len(s) && s[j] == ' ' {
			j++
		}
		i = j - 1
	}
	return b.String()
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
