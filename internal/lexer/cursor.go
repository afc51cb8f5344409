package lexer

import (
	"fmt"
	"unicode/utf8"

	"bridgec/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в файле
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
	// Line is the 1-based line of Off.
	Line int
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Limit: limit,
		Line:  1,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the rune at the cursor and its width in bytes.
func (c *Cursor) Peek() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.File.Content[c.Off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
}

// Bump advances past the current rune and returns it.
func (c *Cursor) Bump() rune {
	r, size := c.Peek()
	if size == 0 {
		return r
	}
	usz, err := safecast.Conv[uint32](size)
	if err != nil {
		panic(fmt.Errorf("bump overflow: %w", err))
	}
	c.Off += usz
	if r == '\n' {
		c.Line++
	}
	return r
}

// Mark это метка, что бы быстро получать диапазон читаемого фрагмента
type Mark struct {
	Off  uint32
	Line int
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line}
}

// RangeFrom builds the code range of the fragment read since m.
func (c *Cursor) RangeFrom(m Mark) source.CodeRange {
	start := int(m.Off)
	end := int(c.Off)
	col := columnAt(c.File.Content, start)
	return source.CodeRange{
		File:     c.File.Path,
		Line:     m.Line,
		Start:    start,
		End:      end,
		StartCol: col,
		EndCol:   col + utf8.RuneCount(c.File.Content[start:end]),
	}
}

// columnAt counts the runes between the previous newline and off.
func columnAt(content []byte, off int) int {
	lineStart := off
	for lineStart > 0 && content[lineStart-1] != '\n' {
		lineStart--
	}
	return utf8.RuneCount(content[lineStart:off]) + 1
}
