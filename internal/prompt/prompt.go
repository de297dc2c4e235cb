// Package prompt collects line-oriented input for the interactive menu.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dtstyler/dtstyler/internal/style"
)

// MultilineTerminator ends multi-line collection when typed alone on a
// line, in any letter case.
const MultilineTerminator = "END"

// Reader collects user input. Prompts go to out so a session can be
// driven from scripted input in tests.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Reader that reads from in and writes prompt text to out.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Line prints a label and reads one line, trimmed of surrounding
// whitespace. The error is non-nil only when input is exhausted with
// nothing left to return.
func (r *Reader) Line(label string) (string, error) {
	fmt.Fprint(r.out, label)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// YesNo asks a yes/no question. Only "y" or "yes" in any case counts as
// yes; anything else, including exhausted input, is no.
func (r *Reader) YesNo(label string) bool {
	answer, err := r.Line(label)
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// ConfirmExact asks for one specific word, compared case-insensitively.
// Used where a plain y is too easy to type by accident.
func (r *Reader) ConfirmExact(label, word string) bool {
	answer, err := r.Line(label)
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, word)
}

// Multiline collects text until an empty line, a line reading END, or
// the end of input, then flattens the collected lines into one line.
// The terminator is not part of the result. The error is non-nil only
// when input ran out and nothing was collected.
func (r *Reader) Multiline(label string) (string, error) {
	if label != "" {
		fmt.Fprintln(r.out, label)
	}
	fmt.Fprintf(r.out, "(Paste your text - multiple lines are fine. Press Enter on an empty line or type %s to finish)\n", MultilineTerminator)
	fmt.Fprint(r.out, "> ")

	var lines []string
	var readErr error
	for {
		line, err := r.in.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if strings.EqualFold(trimmed, MultilineTerminator) {
			break
		}
		if trimmed == "" {
			readErr = err
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	result := style.Flatten(strings.Join(lines, " "))
	if result == "" && readErr != nil {
		return "", readErr
	}
	return result, nil
}
