package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// reportEditError prints a mutation failure the way the UI would render it:
// validation messages line by line, anything else as a single alert.
func reportEditError(w io.Writer, err error, pending []string) {
	if len(pending) > 0 {
		for _, msg := range pending {
			fmt.Fprintln(w, msg)
		}
		return
	}
	fmt.Fprintln(w, err.Error())
}

// askId prompts for a numeric record id.
func askId(reader *bufio.Reader, prompt string, w io.Writer) (int64, error) {
	line, err := getSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid id: %q", line)
	}
	return id, nil
}
