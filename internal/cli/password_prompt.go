package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errPasswordMismatch = errors.New("passwords do not match")

// PromptNewPassword asks for a password twice without echoing it. When stdin
// is not a terminal the lines are read as typed.
func PromptNewPassword(stdin *os.File, out io.Writer) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}
	reader := bufio.NewReader(stdin)

	first, err := promptHidden(stdin, reader, out, "Password: ")
	if err != nil {
		return "", err
	}
	second, err := promptHidden(stdin, reader, out, "Password (again): ")
	if err != nil {
		return "", err
	}
	return confirmPassword(first, second)
}

func promptHidden(stdin *os.File, reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if restore, err := disableEcho(stdin); err == nil {
		defer func() {
			restore()
			fmt.Fprintln(out)
		}()
	}
	return readLine(reader)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func confirmPassword(first string, second string) (string, error) {
	if first != second {
		return "", errPasswordMismatch
	}
	return first, nil
}
