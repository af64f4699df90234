// Package preview renders a generated palette against a fixed Go code
// sample, the "syntax-highlighting preview" spec.md §1 names as an
// out-of-scope collaborator: one language, one sample, styled from the
// palette's accent slots and degraded to the host terminal's color
// profile.
package preview

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/muesli/termenv"

	"github.com/jonathantroyer/base24gen/palette"
)

// Sample is the fixed Go snippet every preview highlights, chosen to
// touch each of the base16 style-guide token categories: keywords,
// strings, numbers, a function definition, a builtin call, and a
// comment.
const Sample = `package main

import "fmt"

// greet returns a friendly message for name.
func greet(name string) string {
	const prefix = "Hello, "
	if len(name) == 0 {
		name = "stranger"
	}
	return fmt.Sprintf("%s%s! (%d)", prefix, name, 42)
}

func main() {
	fmt.Println(greet("base24"))
}
`

// styleEntries maps the base16/base24 style-guide convention (variables,
// constants, classes, strings, support/escapes, functions, keywords) onto
// chroma token types.
func styleEntries(p palette.Palette) chroma.StyleEntries {
	hex := func(slot string) string {
		c, ok := p.Get(slot)
		if !ok {
			return "#808080"
		}
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}

	bg := hex("base00")
	fg := hex("base05")
	comment := hex("base03")

	return chroma.StyleEntries{
		chroma.Background:         "bg:" + bg + " " + fg,
		chroma.Text:               fg,
		chroma.Comment:            "italic " + comment,
		chroma.CommentSingle:      "italic " + comment,
		chroma.Keyword:            hex("base0E"),
		chroma.KeywordDeclaration: hex("base0E"),
		chroma.NameFunction:       hex("base0D"),
		chroma.NameClass:          hex("base0A"),
		chroma.NameBuiltin:        hex("base0C"),
		chroma.NameVariable:       hex("base08"),
		chroma.NameConstant:       hex("base09"),
		chroma.LiteralString:      hex("base0B"),
		chroma.LiteralNumber:      hex("base09"),
		chroma.Operator:           fg,
		chroma.Punctuation:        fg,
	}
}

// Highlight tokenizes Sample with the Go lexer, styles it from p's
// accent slots, and renders it as ANSI escapes matched to the host
// terminal's color profile (truecolor when available, else a 256-color
// degradation via termenv).
func Highlight(p palette.Palette) (string, error) {
	lexer := lexers.Get("go")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, Sample)
	if err != nil {
		return "", fmt.Errorf("tokenizing preview sample: %w", err)
	}

	style, err := chroma.NewStyle("base24-preview", styleEntries(p))
	if err != nil {
		return "", fmt.Errorf("building preview style: %w", err)
	}

	formatter := formatterForProfile(termenv.ColorProfile())

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("formatting preview: %w", err)
	}
	return buf.String(), nil
}

func formatterForProfile(profile termenv.Profile) chroma.Formatter {
	switch profile {
	case termenv.TrueColor:
		return formatters.TTY16m
	case termenv.ANSI256:
		return formatters.TTY256
	case termenv.ANSI:
		return formatters.TTY8
	default:
		return formatters.NoOp
	}
}
