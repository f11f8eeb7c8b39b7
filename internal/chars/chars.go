// Package chars implements the bounded keyboard-echo exercise: read up
// to a fixed number of characters and echo each on its own line.
package chars

import (
	"bufio"
	"fmt"
	"io"
)

// Echo reads up to max bytes from r and writes each to w followed by a
// newline. It returns the number of characters echoed. Input running
// out before max characters is not an error; the truncation is
// reported on w, mirroring the lab's behavior.
func Echo(r io.Reader, w io.Writer, max int) (int, error) {
	br := bufio.NewReader(r)
	for i := 0; i < max; i++ {
		c, err := br.ReadByte()
		if err == io.EOF {
			fmt.Fprintf(w, "fewer than %d characters entered, number of characters set to %d\n", max, i)
			return i, nil
		}
		if err != nil {
			return i, err
		}
		if _, err := fmt.Fprintf(w, "%c\n", c); err != nil {
			return i, err
		}
	}
	return max, nil
}
