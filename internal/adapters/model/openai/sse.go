package openai

import (
	"bufio"
	"io"
	"strings"
)

// sseScanner reads server-sent events. Only data lines are kept; event
// types, ids and comments are skipped because chat completion chunks carry
// everything in data.
type sseScanner struct {
	reader *bufio.Reader
	data   string
	err    error
}

func newSSEScanner(r io.Reader) *sseScanner {
	return &sseScanner{reader: bufio.NewReaderSize(r, 64*1024)}
}

func (s *sseScanner) Next() bool {
	if s.err != nil {
		return false
	}

	var lines []string
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil && line == "" {
			s.err = err
			if len(lines) > 0 {
				s.data = strings.Join(lines, "\n")
				return true
			}
			return false
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if len(lines) > 0 {
				s.data = strings.Join(lines, "\n")
				return true
			}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		if field == "data" {
			lines = append(lines, strings.TrimPrefix(value, " "))
		}
	}
}

func (s *sseScanner) Data() string {
	return s.data
}

// Err returns nil after a clean end of stream.
func (s *sseScanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}
