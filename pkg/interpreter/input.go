package interpreter

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// InputProvider supplies GIMMEH with one line at a time.
type InputProvider interface {
	ReadLine() (string, error)
}

// LineReader reads newline-terminated lines from a stream. It reports io.EOF
// once the stream is exhausted.
type LineReader struct {
	reader *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

func (l *LineReader) ReadLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// QueuedInput serves pre-supplied values in order. Once they run out it
// defers to Fallback, or returns "" when there is none.
type QueuedInput struct {
	values   []string
	next     int
	Fallback InputProvider
}

func NewQueuedInput(values ...string) *QueuedInput {
	return &QueuedInput{values: append([]string(nil), values...)}
}

func (q *QueuedInput) ReadLine() (string, error) {
	if q.next < len(q.values) {
		value := q.values[q.next]
		q.next++
		return value, nil
	}
	if q.Fallback != nil {
		return q.Fallback.ReadLine()
	}
	return "", nil
}

// Remaining reports how many queued values have not been consumed.
func (q *QueuedInput) Remaining() int {
	return len(q.values) - q.next
}
