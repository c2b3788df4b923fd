package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// stdinFd is the descriptor GetPassword reads from.
var stdinFd = func() int { return int(os.Stdin.Fd()) }

// GetSimpleText prints prompt to w and reads one trimmed line from reader.
// A final line without a newline is still returned.
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints prompt to w and reads a password from the terminal
// without echo. The caller should wipe the result.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(stdinFd())
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetInt reads a whole number. An empty answer yields 0.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	s, err := getSimpleText(reader, prompt, w)
	if err != nil || s == "" {
		return 0, err
	}
	return strconv.Atoi(s)
}

// GetFloat reads a decimal number; a comma is accepted as the decimal
// separator. An empty answer yields 0.
func GetFloat(reader *bufio.Reader, prompt string, w io.Writer) (float64, error) {
	s, err := getSimpleText(reader, prompt, w)
	if err != nil || s == "" {
		return 0, err
	}
	return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
}

// GetChoice reads one of options, matched case-insensitively, and returns
// it in its canonical spelling. Anything else is returned as typed so the
// caller's validation can report it.
func GetChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) (string, error) {
	s, err := getSimpleText(reader, fmt.Sprintf("%s (%s)", prompt, strings.Join(options, ", ")), w)
	if err != nil {
		return "", err
	}
	for _, o := range options {
		if strings.EqualFold(s, o) {
			return o, nil
		}
	}
	return s, nil
}
