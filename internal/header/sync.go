package header

import (
	"strings"
)

// Sentinel marks the first line of a managed header block. Files carrying it
// are safe to rewrite: the tool owns everything up to the block's closing
// delimiter.
const Sentinel = "LICENSE HEADER MANAGED BY add-license-header"

// Action is the synchronizer's decision for one file.
type Action int

const (
	// ActionNone means the file already carries the expected header.
	ActionNone Action = iota
	// ActionInsert means no header was found and one will be added.
	ActionInsert
	// ActionReplace means an existing header differs and will be rewritten.
	ActionReplace
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionReplace:
		return "replace"
	default:
		return "none"
	}
}

// wrapManaged wraps rendered template lines in comment delimiters with the
// sentinel as the opening line:
//
//	# LICENSE HEADER MANAGED BY add-license-header
//	#
//	# Copyright (c) 2024 Jane Doe
//	#
//
// Block styles close with the end delimiter instead of a trailing blank
// comment line.
func wrapManaged(lines []string, c BlockComment) []string {
	header := make([]string, 0, len(lines)+3)
	header = append(header, c.Start+" "+Sentinel+"\n")
	header = append(header, blankCommentLine(c))
	header = append(header, commentBody(lines, c)...)
	header = append(header, closingLine(c))
	return header
}

// wrapUnmanaged wraps rendered template lines as a plain top-of-file comment
// block with no sentinel: a bare start delimiter, the body, and a closer.
func wrapUnmanaged(lines []string, c BlockComment) []string {
	header := make([]string, 0, len(lines)+2)
	header = append(header, c.Start+"\n")
	header = append(header, commentBody(lines, c)...)
	header = append(header, closingLine(c))
	return header
}

func commentBody(lines []string, c BlockComment) []string {
	body := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case line == "\n":
			body[i] = blankCommentLine(c)
		case c.Middle == "":
			body[i] = line
		default:
			body[i] = c.Middle + " " + line
		}
	}
	return body
}

func blankCommentLine(c BlockComment) string {
	return strings.TrimRight(c.Middle, " ") + "\n"
}

func closingLine(c BlockComment) string {
	if c.LineStyle() {
		return blankCommentLine(c)
	}
	return c.End + "\n"
}
