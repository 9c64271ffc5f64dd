// Package console is the line-oriented serial session surface: a
// blocking byte read used as the capture trigger, and line output for
// the prompt and the histogram report.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"codeberg.org/mutker/jitterctl/internal/errors"
)

type Console struct {
	out  io.Writer
	keys chan byte
}

func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:  out,
		keys: make(chan byte),
	}
	go c.pump(in)

	return c
}

// pump forwards input bytes to the key channel. The send blocks until
// someone is waiting for a trigger, so typing ahead of the prompt does
// not pile up.
func (c *Console) pump(in io.Reader) {
	r := bufio.NewReader(in)
	for {
		b, err := r.ReadByte()
		if err != nil {
			close(c.keys)
			return
		}
		c.keys <- b
	}
}

// WaitForKey blocks until a byte arrives on the input stream, the
// stream closes, or the context is canceled.
func (c *Console) WaitForKey(ctx context.Context) error {
	errFactory := errors.New()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case _, ok := <-c.keys:
		if !ok {
			return errFactory.Wrap(errors.ErrTriggerClosed, io.EOF)
		}
		return nil
	}
}

// WriteLine emits one line of report text.
func (c *Console) WriteLine(s string) {
	fmt.Fprintln(c.out, s)
}
