// SPDX-License-Identifier: MIT
// Package graphio reads and writes the plain-text graph format and appends
// timing lines to a results file.
//
// Graph format, whitespace separated:
//
//	V E
//	u v w    (E times)
//
// Every field is a base-10 integer. Anything after the E-th triple is ignored.
//
// Timing format, one line per run:
//
//	<dijkstra-ms> <bellman-ford-ms> <johnson-ms>    <distance>
//
// Durations are milliseconds with six significant digits; an unreached
// distance prints as "inf".
package graphio
