package scanner

import (
	"github.com/qikcik/qlang"
)

// Cursor is a rewindable position within the token stream of a source text.
// It provides a single token of lookahead. Tokens are scanned lazily, one
// per call to Advance.
//
// After the first illegal input or the end of input, the cursor stays at
// that token.
type Cursor struct {
	adapter   *LMAdapter
	source    *qlang.Source
	tokenizer Tokenizer
	current   Token
	err       error // first scanner error, if any
}

// Cursor creates a cursor for a source text, positioned at the first token.
func (lm *LMAdapter) Cursor(src *qlang.Source) (*Cursor, error) {
	c := &Cursor{
		adapter: lm,
		source:  src,
	}
	if err := c.Restart(); err != nil {
		return nil, err
	}
	return c, nil
}

// Restart rewinds the cursor to the first token of the source text.
func (c *Cursor) Restart() error {
	scan, err := c.adapter.Scanner(c.source)
	if err != nil {
		return err
	}
	c.err = nil
	scan.SetErrorHandler(func(e error) {
		logError(e)
		if c.err == nil {
			c.err = e
		}
	})
	c.tokenizer = scan
	c.current = scan.NextToken()
	tracer().P("source", c.source.Name).Debugf("cursor at first token %v", c.current)
	return nil
}

// Current returns the token the cursor is positioned at.
func (c *Cursor) Current() Token {
	return c.current
}

// Advance moves the cursor to the next token and returns it.
func (c *Cursor) Advance() Token {
	if c.current.Kind == EOF || c.current.Kind == Illegal {
		return c.current
	}
	c.current = c.tokenizer.NextToken()
	return c.current
}

// Matches is a predicate: is the current token of kind k and, if lexeme is
// non-empty, does it carry this lexeme? The cursor does not move.
func (c *Cursor) Matches(k Kind, lexeme string) bool {
	return c.current.Is(k, lexeme)
}

// Err returns the first scanner error encountered, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Source returns the source text the cursor operates on.
func (c *Cursor) Source() *qlang.Source {
	return c.source
}
