package config

import "fmt"

// Tokenize splits buf into tokens on runs of space, tab, carriage return,
// and newline. Punctuation is not special: "{", "}", and ";" form tokens
// only when whitespace-separated, and "foo{" is a single token. There is
// no quoting, escaping, or comment syntax. An empty buffer yields no
// tokens.
func Tokenize(buf []byte) []string {
	var toks []string
	start := -1
	for i, b := range buf {
		switch b {
		case ' ', '\t', '\r', '\n':
			if start >= 0 {
				toks = append(toks, string(buf[start:i]))
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		toks = append(toks, string(buf[start:]))
	}
	return toks
}

// cursor is the parse position threaded through every grammar rule. src
// names the configuration source for diagnostics.
type cursor struct {
	src  string
	toks []string
	pos  int
}

func (c *cursor) atEnd() bool { return c.pos >= len(c.toks) }

// current returns the token under the cursor, or ErrUnexpectedEOF when the
// input is exhausted.
func (c *cursor) current() (string, error) {
	if c.atEnd() {
		return "", fmt.Errorf("%s: %w", c.src, ErrUnexpectedEOF)
	}
	return c.toks[c.pos], nil
}

// expect requires the current token to equal v, without advancing.
func (c *cursor) expect(v string) error {
	tok, err := c.current()
	if err != nil {
		return err
	}
	if tok != v {
		return &TokenError{Src: c.src, Expected: v, Found: tok}
	}
	return nil
}

// expectAdvance is expect plus advance on success.
func (c *cursor) expectAdvance(v string) error {
	if err := c.expect(v); err != nil {
		return err
	}
	c.pos++
	return nil
}

// equals reports whether the current token equals v. The caller must have
// ruled out end of input.
func (c *cursor) equals(v string) bool { return c.toks[c.pos] == v }

// equalsAdvance is equals plus advance on a match.
func (c *cursor) equalsAdvance(v string) bool {
	if c.toks[c.pos] == v {
		c.pos++
		return true
	}
	return false
}

// advance moves past the current token and requires input to remain.
func (c *cursor) advance() error {
	c.pos++
	if c.atEnd() {
		return fmt.Errorf("%s: %w", c.src, ErrUnexpectedEOF)
	}
	return nil
}

// unknown builds the diagnostic for an unrecognized token at the cursor.
func (c *cursor) unknown() error {
	return &UnknownTokenError{Src: c.src, Found: c.toks[c.pos]}
}
