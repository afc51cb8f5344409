package source

import (
	"fmt"
)

// CodeRange locates a token or declaration in a file.
// Start and End are byte offsets (End exclusive); Line and the columns are 1-based.
type CodeRange struct {
	File     string
	Line     int
	Start    int
	End      int
	StartCol int
	EndCol   int
}

// IsZero reports whether the range carries no location at all.
func (r CodeRange) IsZero() bool {
	return r == CodeRange{}
}

func (r CodeRange) Len() int {
	return r.End - r.Start
}

// String renders the range the way compile errors print it: file(line,start-end).
func (r CodeRange) String() string {
	return fmt.Sprintf("%s(%d,%d-%d)", r.File, r.Line, r.StartCol, r.EndCol)
}

// Merge returns a range spanning from r to other.
// The line and start column are taken from r.
func (r CodeRange) Merge(other CodeRange) CodeRange {
	if other.File != r.File {
		return r
	}
	out := r
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
		if other.Line == r.Line {
			out.EndCol = other.EndCol
		}
	}
	return out
}

// DirectNeighbor reports whether next starts exactly where r ends on the same line.
func (r CodeRange) DirectNeighbor(next CodeRange) bool {
	return r.File == next.File && r.Line == next.Line && r.EndCol == next.StartCol
}
