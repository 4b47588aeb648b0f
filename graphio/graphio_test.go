// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negpath/builder"
	"github.com/katalvlaran/negpath/core"
	"github.com/katalvlaran/negpath/graphio"
)

func TestRead(t *testing.T) {
	in, err := graphio.Read(strings.NewReader("4 2\n0 1 5\n  2\t3 -7\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, in.V)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 2, To: 3, Weight: -7},
	}, in.Edges)

	g, err := in.Directed()
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	u, err := in.Undirected()
	require.NoError(t, err)
	assert.Equal(t, 4, u.EdgeCount())
	assert.True(t, u.Undirected())
}

func TestRead_TrailingDataIgnored(t *testing.T) {
	in, err := graphio.Read(strings.NewReader("2 1 0 1 3 extra tokens"))
	require.NoError(t, err)
	assert.Len(t, in.Edges, 1)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"Empty", "", graphio.ErrTruncated},
		{"NoEdgeCount", "3", graphio.ErrTruncated},
		{"ShortTriple", "3 1 0 1", graphio.ErrTruncated},
		{"MissingTriple", "3 2 0 1 4", graphio.ErrTruncated},
		{"NotANumber", "3 1 0 x 4", graphio.ErrMalformed},
		{"NegativeCount", "-1 0", graphio.ErrMalformed},
		{"HugeVertexCount", "1000000000000000000 0", graphio.ErrMalformed},
		{"JustAboveMaxVertices", fmt.Sprintf("%d 0", graphio.MaxVertices+1), graphio.ErrMalformed},
		{"Float", "2 1 0 1 1.5", graphio.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Read(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRead_MaxVerticesAccepted(t *testing.T) {
	in, err := graphio.Read(strings.NewReader(fmt.Sprintf("%d 0", graphio.MaxVertices)))
	require.NoError(t, err)
	assert.Equal(t, graphio.MaxVertices, in.V)
}

func TestRead_MalformedReportsPosition(t *testing.T) {
	_, err := graphio.Read(strings.NewReader("3 1 0 x 4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token 4")
	assert.Contains(t, err.Error(), "edge #0 dest")
}

func TestInput_OutOfRangeEndpoint(t *testing.T) {
	in, err := graphio.Read(strings.NewReader("2 1 0 5 1"))
	require.NoError(t, err)

	_, err = in.Directed()
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	g, err := builder.Build(builder.RandomSparse(15, 0.3), builder.WithSeed(8), builder.WithSpread(4))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g.VertexCount(), g.Edges()))

	in, err := graphio.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), in.V)
	assert.Equal(t, g.Edges(), in.Edges)
}

func TestWrite_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, 3, []core.Edge{{From: 0, To: 2, Weight: -4}}))
	assert.Equal(t, "3 1\n0 2 -4\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	assert.Error(t, graphio.Write(failWriter{}, 1, nil))
	assert.Error(t, graphio.AppendTimings(failWriter{}, graphio.Timings{}))
}

func TestAppendTimings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.AppendTimings(&buf, graphio.Timings{
		Dijkstra:    1500 * time.Microsecond,
		BellmanFord: 2 * time.Millisecond,
		Johnson:     12345678 * time.Nanosecond,
		Distance:    core.Finite(-3),
	}))
	require.NoError(t, graphio.AppendTimings(&buf, graphio.Timings{Distance: core.Unreached()}))

	assert.Equal(t, "1.5 2 12.3457    -3\n0 0 0    inf\n", buf.String())
}
