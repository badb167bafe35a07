package lineno

import (
	"bufio"
	"io"
	"strconv"
)

// Print writes lines to w, one per line. When numbered is set each line
// is prefixed by its original line number and a tab.
func Print(w io.Writer, lines []Line, numbered bool) error {
	bw := bufio.NewWriter(w)
	for _, ln := range lines {
		if numbered {
			bw.WriteString(strconv.Itoa(ln.Number))
			bw.WriteByte('\t')
		}
		bw.WriteString(ln.Text)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
