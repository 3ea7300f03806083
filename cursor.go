package jv

import (
	"bufio"
	"io"
)

// cursor is a forward-only view over a character source. The grammar is
// written once against this interface; current is only meaningful while
// atEnd reports false.
type cursor interface {
	current() byte
	advance()
	atEnd() bool
	offset() int
	err() error
}

type stringCursor struct {
	s   string
	pos int
}

func newStringCursor(s string) *stringCursor {
	return &stringCursor{s: s}
}

func (c *stringCursor) current() byte { return c.s[c.pos] }
func (c *stringCursor) advance()      { c.pos++ }
func (c *stringCursor) atEnd() bool   { return c.pos >= len(c.s) }
func (c *stringCursor) offset() int   { return c.pos }
func (c *stringCursor) err() error    { return nil }

type readerCursor struct {
	r       *bufio.Reader
	cur     byte
	pos     int
	done    bool
	readErr error
}

func newReaderCursor(r io.Reader) *readerCursor {
	c := &readerCursor{r: bufio.NewReader(r), pos: -1}
	c.advance()
	return c
}

func (c *readerCursor) current() byte { return c.cur }

func (c *readerCursor) advance() {
	if c.done {
		return
	}
	b, err := c.r.ReadByte()
	if err != nil {
		c.done = true
		if err != io.EOF {
			c.readErr = err
		}
		return
	}
	c.cur = b
	c.pos++
}

func (c *readerCursor) atEnd() bool { return c.done }
func (c *readerCursor) offset() int { return c.pos }
func (c *readerCursor) err() error  { return c.readErr }
