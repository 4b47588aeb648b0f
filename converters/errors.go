// SPDX-License-Identifier: MIT

package converters

import "errors"

var (
	// ErrNilGraph indicates a nil input graph or result.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrUnrepresentable indicates an edge gonum cannot hold without changing
	// shortest distances: a negative self-loop or a weight beyond 2^53.
	ErrUnrepresentable = errors.New("converters: edge not representable in gonum")

	// ErrSparseIDs indicates gonum node ids that are not exactly 0..n-1.
	ErrSparseIDs = errors.New("converters: node ids are not dense 0..n-1")

	// ErrNonIntegralWeight indicates a gonum weight that is not a finite
	// integer within int64 range.
	ErrNonIntegralWeight = errors.New("converters: weight is not integral")

	// ErrMismatch indicates a Johnson result that disagrees with gonum.
	ErrMismatch = errors.New("converters: result disagrees with gonum")
)
