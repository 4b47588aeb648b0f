// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/negpath/core"
)

// Write emits v and edges in the format Read accepts, one triple per line.
func Write(w io.Writer, v int, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	buf = strconv.AppendInt(buf, int64(v), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(len(edges)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, e := range edges {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(e.From), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.To), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, e.Weight, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Timings is one benchmark record of the three engines on a single query.
type Timings struct {
	Dijkstra    time.Duration
	BellmanFord time.Duration
	Johnson     time.Duration
	Distance    core.Distance
}

// String renders the record without the trailing newline.
func (t Timings) String() string {
	return millis(t.Dijkstra) + " " + millis(t.BellmanFord) + " " + millis(t.Johnson) +
		"    " + t.Distance.String()
}

// AppendTimings writes t as one line to w.
func AppendTimings(w io.Writer, t Timings) error {
	_, err := io.WriteString(w, t.String()+"\n")

	return err
}

func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'g', 6, 64)
}
