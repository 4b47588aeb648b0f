// SPDX-License-Identifier: MIT
// Package cli wires the negpath subcommands: it parses flags, loads graphs,
// runs the engines, and maps failures to process exit codes.
package cli
