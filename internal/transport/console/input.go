package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// maxLineLength bounds a move request. Longer lines are discarded as malformed.
const maxLineLength = 4096

type line struct {
	text    string
	tooLong bool
	err     error
}

// Input reads move requests line by line. Lines are read in the background
// so that a blocked read can still be abandoned when ctx is canceled.
type Input struct {
	prompt io.Writer
	lines  chan line

	done      chan struct{}
	closeOnce sync.Once
}

func NewInput(r io.Reader, prompt io.Writer) *Input {
	input := &Input{
		prompt: prompt,
		lines:  make(chan line, 1),
		done:   make(chan struct{}),
	}

	go input.scan(r)

	return input
}

// Close stops delivering lines. The background reader exits after its current read returns.
func (that *Input) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

func (that *Input) scan(r io.Reader) {
	defer close(that.lines)

	reader := bufio.NewReaderSize(r, maxLineLength)
	for {
		next := readLine(reader)

		select {
		case that.lines <- next:
		case <-that.done:
			return
		}

		if next.err != nil {
			return
		}
	}
}

// readLine returns one line without its terminator. A line that does not fit
// the buffer is drained up to its newline so the next line is read intact.
func readLine(reader *bufio.Reader) line {
	data, isPrefix, err := reader.ReadLine()
	if err != nil {
		return line{err: err}
	}

	if !isPrefix {
		return line{text: string(data)}
	}

	for isPrefix {
		if _, isPrefix, err = reader.ReadLine(); err != nil {
			return line{err: err}
		}
	}

	return line{tooLong: true}
}

// NextMove prompts player and blocks until a line arrives.
func (that *Input) NextMove(ctx context.Context, player entity.Player, _ entity.Board) (int, int, error) {
	if _, err := fmt.Fprintf(that.prompt, "Player %s, enter your move (row column): ", player); err != nil {
		return 0, 0, fmt.Errorf("%w: failed to write prompt: %w", apperror.ErrIOFailure, err)
	}

	select {
	case <-ctx.Done():
		return 0, 0, fmt.Errorf("%w: %w", apperror.ErrIOFailure, ctx.Err())
	case <-that.done:
		return 0, 0, fmt.Errorf("%w: input closed", apperror.ErrIOFailure)
	case next, ok := <-that.lines:
		if !ok {
			return 0, 0, fmt.Errorf("%w: %w", apperror.ErrIOFailure, io.EOF)
		}

		if next.err != nil {
			return 0, 0, fmt.Errorf("%w: %w", apperror.ErrIOFailure, next.err)
		}

		if next.tooLong {
			return 0, 0, fmt.Errorf("%w: line longer than %d bytes", apperror.ErrMalformedInput, maxLineLength)
		}

		return ParseMove(next.text)
	}
}
