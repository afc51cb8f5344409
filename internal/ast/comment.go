package ast

import (
	"regexp"
	"strings"

	"bridgec/internal/source"
)

// ParamDoc is one "@param name text" annotation.
type ParamDoc struct {
	Name string
	Text string
}

// Comment is a block of consecutive line comments attached to a declaration.
type Comment struct {
	Range  source.CodeRange
	Lines  []string
	Params []ParamDoc
}

var paramDocRe = regexp.MustCompile(`@param ([a-zA-Z_0-9]+) (.+)$`)

// NewComment builds a comment from raw "// ..." lines. @param annotations
// are moved into Params; the rest becomes free text with leading and
// trailing blank lines removed.
func NewComment(rng source.CodeRange, raw []string) *Comment {
	c := &Comment{Range: rng}
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimPrefix(line, " ")
		line = strings.TrimRight(line, " \t\r")
		if m := paramDocRe.FindStringSubmatchIndex(line); m != nil {
			c.Params = append(c.Params, ParamDoc{
				Name: line[m[2]:m[3]],
				Text: strings.TrimSpace(line[m[4]:m[5]]),
			})
			line = strings.TrimRight(line[:m[0]], " \t")
			if line == "" {
				continue
			}
		}
		lines = append(lines, line)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	c.Lines = lines
	return c
}

// ParamText returns the @param text documented for name.
func (c *Comment) ParamText(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, p := range c.Params {
		if p.Name == name {
			return p.Text, true
		}
	}
	return "", false
}

// Text joins the free-text lines with newlines.
func (c *Comment) Text() string {
	if c == nil {
		return ""
	}
	return strings.Join(c.Lines, "\n")
}
