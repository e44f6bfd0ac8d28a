package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// lineReader reads prompts from the command input. Passwords are read with
// echo disabled when the input is a terminal.
type lineReader struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

func newLineReader(in io.Reader, out io.Writer) *lineReader {
	return &lineReader{in: in, reader: bufio.NewReader(in), out: out}
}

// ReadLine returns io.EOF once the input is exhausted and nothing was read.
func (r *lineReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		_, _ = fmt.Fprint(r.out, prompt)
	}

	line, err := r.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (r *lineReader) ReadPassword(prompt string) (string, error) {
	file, ok := r.in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return r.ReadLine(prompt)
	}

	_, _ = fmt.Fprint(r.out, prompt)
	password, err := term.ReadPassword(int(file.Fd()))
	_, _ = fmt.Fprintln(r.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(password), nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// terminalInput returns r when it is a terminal the spinner can read keys
// from, and nil otherwise.
func terminalInput(r io.Reader) io.Reader {
	file, ok := r.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil
	}
	return file
}
