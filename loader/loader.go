// SPDX-License-Identifier: MIT
//
// Package loader builds a core.MultiGraph from a line-oriented edge list.
//
// Format, one directed edge per line, fields separated by any whitespace:
//
//	<source:int> <target:int> <weight:float>
//
// Blank lines are skipped. There is no header, edge count or comment syntax.
// Every line appends one edge; parallel edges keep their declaration order.
//
// A malformed line aborts the whole load: the caller receives a *FormatError
// (matching ErrFormat) and no graph. Store preconditions are enforced at load
// time too, so negative, NaN or infinite weights and non-positive vertex IDs
// are format errors.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphkit/core"
)

const (
	// fieldsPerLine is the token count of a valid edge line.
	fieldsPerLine = 3

	// MaxLineBytes caps a single line, padding included. Longer lines are
	// reported as *FormatError.
	MaxLineBytes = 1 << 20
)

// LoadFile opens path and parses it with Load.
// The file is closed on every return path.
//
// Errors:
//   - ErrNotFound (also fs.ErrNotExist) if path does not exist.
//   - ErrFormat via *FormatError for the first malformed line.
//   - any other open/read error, wrapped.
func LoadFile(path string) (*core.MultiGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &notFoundError{path: path, err: err}
		}
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses an edge list from r into a fresh MultiGraph.
// On error the partially built graph is discarded.
func Load(r io.Reader) (*core.MultiGraph, error) {
	g := core.NewMultiGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := addLine(g, lineNo, text, fields); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &FormatError{
				Line:   lineNo + 1,
				Reason: fmt.Sprintf("line longer than %d bytes", MaxLineBytes),
				Err:    err,
			}
		}
		return nil, fmt.Errorf("loader: read after line %d: %w", lineNo, err)
	}

	return g, nil
}

// addLine parses one tokenized line and appends its edge to g.
func addLine(g *core.MultiGraph, lineNo int, text string, fields []string) error {
	if len(fields) != fieldsPerLine {
		return &FormatError{
			Line:   lineNo,
			Text:   text,
			Reason: fmt.Sprintf("want %d fields, got %d", fieldsPerLine, len(fields)),
		}
	}

	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return &FormatError{Line: lineNo, Text: text, Reason: "bad source vertex", Err: err}
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return &FormatError{Line: lineNo, Text: text, Reason: "bad target vertex", Err: err}
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return &FormatError{Line: lineNo, Text: text, Reason: "bad weight", Err: err}
	}

	if _, err = g.AddEdge(core.VertexID(from), core.VertexID(to), w); err != nil {
		return &FormatError{Line: lineNo, Text: text, Reason: "edge rejected", Err: err}
	}

	return nil
}
