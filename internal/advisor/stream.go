package advisor

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

const (
	dataPrefix    = "data:"
	doneSentinel  = "[DONE]"
	readChunkSize = 4096
)

// Stream is a pull-based sequence of text deltas from the chat gateway.
// Callers loop on Recv until io.EOF and must Close when done; Close is the
// cancellation handle for an abandoned stream.
type Stream struct {
	body   io.ReadCloser
	buf    []byte
	chunk  []byte
	done   bool
	closed bool
}

func newStream(body io.ReadCloser) *Stream {
	return &Stream{
		body:  body,
		chunk: make([]byte, readChunkSize),
	}
}

type deltaChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Recv returns the next non-empty text delta. io.EOF signals a clean end of
// the stream, any other error a transport failure.
func (s *Stream) Recv() (string, error) {
	if s.done {
		return "", io.EOF
	}

	for {
		line, ok := s.nextLine()
		if !ok {
			if err := s.fill(); err != nil {
				s.done = true
				return "", err
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			continue
		}
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, dataPrefix))
		if payload == doneSentinel {
			s.done = true
			return "", io.EOF
		}

		var chunk deltaChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			// The payload was likely split across transport reads. Push the
			// line back onto the front of the buffer and wait for more bytes
			// before retrying it.
			s.pushBack(line)
			if err := s.fill(); err != nil {
				s.done = true
				return "", err
			}
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			return delta, nil
		}
	}
}

// Close releases the underlying transport. Safe to call more than once.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.done = true
	return s.body.Close()
}

// nextLine scans the buffer for one complete newline-terminated line and
// strips a trailing carriage return.
func (s *Stream) nextLine() (string, bool) {
	idx := bytes.IndexByte(s.buf, '\n')
	if idx < 0 {
		return "", false
	}
	line := string(s.buf[:idx])
	s.buf = s.buf[idx+1:]
	return strings.TrimSuffix(line, "\r"), true
}

func (s *Stream) pushBack(line string) {
	restored := make([]byte, 0, len(line)+1+len(s.buf))
	restored = append(restored, line...)
	restored = append(restored, '\n')
	restored = append(restored, s.buf...)
	s.buf = restored
}

func (s *Stream) fill() error {
	n, err := s.body.Read(s.chunk)
	if n > 0 {
		s.buf = append(s.buf, s.chunk[:n]...)
		return nil
	}
	if err == nil {
		err = io.EOF
	}
	return err
}
