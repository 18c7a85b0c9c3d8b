package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// LineReader reads answers one line at a time and gives up as soon as the
// context is done, even while a read is still blocked.
type LineReader struct {
	reader *bufio.Reader
	mu     sync.Mutex
}

// NewLineReader wraps r. It panics on a nil reader.
func NewLineReader(r io.Reader) *LineReader {
	if r == nil {
		panic("reader cannot be nil")
	}
	return &LineReader{reader: bufio.NewReader(r)}
}

type lineResult struct {
	err  error
	line string
}

// ReadLine returns the next line with surrounding whitespace trimmed. A last
// line without a newline is returned as is; io.EOF is reported only once
// nothing is left to read.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	ch := make(chan lineResult, 1)

	go func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		line, err := r.reader.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		// The goroutine stays parked on the read until input arrives.
		return "", fmt.Errorf("%w: %w", ErrInputCancelled, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.line), nil
	}
}
