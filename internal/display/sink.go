package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Style annotates a run of output text. Sinks decide how (or whether) to render it.
type Style int

const (
	// StylePlain is unannotated text.
	StylePlain Style = iota
	// StyleHeader is the filename on a file header bar.
	StyleHeader
	// StyleHeaderCount is the result count on a file header bar.
	StyleHeaderCount
	// StyleSeparator is the rule between non-adjacent match blocks.
	StyleSeparator
	// StyleMatchLine is the text around the match on a match line.
	StyleMatchLine
	// StyleHighlight is the matched substring itself.
	StyleHighlight
	// StyleError is a read failure title.
	StyleError
	// StyleNotice is the cancellation notice.
	StyleNotice
)

// Sink accepts plain text plus a highlight annotation for each run of text.
type Sink interface {
	Write(style Style, text string)
}

// PlainSink writes text and drops every annotation.
type PlainSink struct {
	out io.Writer
}

// NewPlainSink creates a PlainSink writing to out.
func NewPlainSink(out io.Writer) *PlainSink {
	return &PlainSink{out: out}
}

// Write implements Sink.
func (s *PlainSink) Write(_ Style, text string) {
	fmt.Fprint(s.out, text)
}

// ColorSink renders annotations as ANSI colors via fatih/color.
type ColorSink struct {
	out    io.Writer
	colors map[Style]*color.Color
}

// NewColorSink creates a ColorSink writing to out. When enabled is false it
// behaves like a PlainSink.
func NewColorSink(out io.Writer, enabled bool) *ColorSink {
	colors := map[Style]*color.Color{
		StyleHeader:      color.New(color.FgHiWhite, color.BgBlue),
		StyleHeaderCount: color.New(color.FgWhite, color.BgBlue),
		StyleSeparator:   color.New(color.FgHiBlack),
		StyleMatchLine:   color.New(color.FgRed),
		StyleHighlight:   color.New(color.FgHiWhite, color.BgMagenta),
		StyleError:       color.New(color.FgRed),
		StyleNotice:      color.New(color.FgYellow),
	}
	for _, c := range colors {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &ColorSink{out: out, colors: colors}
}

// Write implements Sink.
func (s *ColorSink) Write(style Style, text string) {
	if text == "" {
		return
	}
	if c, ok := s.colors[style]; ok {
		c.Fprint(s.out, text)
		return
	}
	fmt.Fprint(s.out, text)
}
