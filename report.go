package parsec

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	caretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
)

// reportConfig configures [Report].
type reportConfig struct {
	color bool
}

// ReportOption configures [Report].
type ReportOption func(reportConfig) reportConfig

// WithColor returns a [ReportOption] that styles the report for a terminal.
func WithColor(enable bool) ReportOption {
	return func(c reportConfig) reportConfig {
		c.color = enable

		return c
	}
}

// Report formats err for a human reader, showing the offending line of
// input with a caret under the failure position:
//
//	tag mismatch at line 2, column 5:
//	  2 | move 1 form 2 to 1
//	          ^
//		expected: "from"
//		found: "form"
//
// Errors that carry no position are reported by their message alone.
func Report(err error, opts ...ReportOption) string {
	if err == nil {
		return ""
	}

	e, ok := asError(err)
	if !ok || !e.located {
		return err.Error()
	}

	cfg := apply(reportConfig{}, opts...)

	style := func(st lipgloss.Style, s string) string {
		if cfg.color {
			return st.Render(s)
		}

		return s
	}

	pos := e.Position()

	var buf strings.Builder

	// Write error location and description
	buf.WriteString(style(headingStyle,
		e.kind.String()+" at line "+strconv.Itoa(pos.Line)+
			", column "+strconv.Itoa(pos.Column)+":"))
	buf.WriteByte('\n')

	line := sourceLine(e.src, pos.Offset)
	gutter := "  " + strconv.Itoa(pos.Line) + " | "

	buf.WriteString(style(gutterStyle, gutter))
	buf.WriteString(line)
	buf.WriteByte('\n')

	// Pad to the column, copying tabs so the caret lines up beneath them.
	var padding strings.Builder

	padding.WriteString(strings.Repeat(" ", len(gutter)))

	col := 1
	for _, r := range line {
		if col >= pos.Column {
			break
		}

		if r == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}

		col++
	}

	buf.WriteString(padding.String())
	buf.WriteString(style(caretStyle, "^"))
	buf.WriteByte('\n')

	if len(e.expected) > 0 {
		buf.WriteString("\texpected: ")
		buf.WriteString(strings.Join(e.expected, ", "))
		buf.WriteByte('\n')
	}

	if e.found != "" {
		buf.WriteString("\tfound: ")
		buf.WriteString(e.found)
		buf.WriteByte('\n')
	}

	if e.err != nil {
		buf.WriteString("\tcaused by: ")
		buf.WriteString(e.err.Error())
		buf.WriteByte('\n')
	}

	return buf.String()
}

// sourceLine returns the line of src containing the byte offset off,
// without its line break.
func sourceLine(src string, off int) string {
	off = min(off, len(src))

	start := strings.LastIndexByte(src[:off], '\n') + 1

	end := strings.IndexByte(src[off:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += off
	}

	return strings.TrimSuffix(src[start:end], "\r")
}
