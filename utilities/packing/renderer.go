package packing

import (
	"fmt"
	"strings"

	"github.com/dargueta/textpack/errors"
	"github.com/dargueta/textpack/symbols"
)

// Default markers used around chorded symbols when highlighting is enabled.
// These turn the text red on ANSI terminals.
const (
	DefaultHighlightStart = "\x1b[31m"
	DefaultHighlightEnd   = "\x1b[0m"
)

// Renderer turns packed blocks back into text. The zero value renders chorded
// symbols without highlighting. A Renderer is never modified after creation
// and can be shared between goroutines.
type Renderer struct {
	highlight      bool
	highlightStart string
	highlightEnd   string
	trailingAcute  bool
}

// RenderOption configures a [Renderer].
type RenderOption func(*Renderer)

// WithHighlight wraps every chorded symbol in the given start and end markers.
func WithHighlight(start, end string) RenderOption {
	return func(r *Renderer) {
		r.highlight = true
		r.highlightStart = start
		r.highlightEnd = end
	}
}

// WithDefaultHighlight enables highlighting with [DefaultHighlightStart] and
// [DefaultHighlightEnd].
func WithDefaultHighlight() RenderOption {
	return WithHighlight(DefaultHighlightStart, DefaultHighlightEnd)
}

// WithoutHighlight renders chorded symbols as plain text.
func WithoutHighlight() RenderOption {
	return func(r *Renderer) {
		r.highlight = false
		r.highlightStart = ""
		r.highlightEnd = ""
	}
}

// WithTrailingAcuteMarker also reads "é" written as NextIsAccented E
// NextIsAccented, with the second marker after the letter. [Build] never
// writes this form. With it enabled, "ě" directly followed by another accented
// letter is misread as "é", so only use it for data known to use that form.
func WithTrailingAcuteMarker() RenderOption {
	return func(r *Renderer) {
		r.trailingAcute = true
	}
}

// NewRenderer creates a Renderer. Options are applied in order.
func NewRenderer(opts ...RenderOption) Renderer {
	renderer := Renderer{}
	for _, opt := range opts {
		opt(&renderer)
	}
	return renderer
}

// Render decodes the blocks and reconstructs the text they represent.
//
// The output includes the trailing newline and padding spaces added by
// [Build]. Nothing is returned if the blocks are malformed.
func (r Renderer) Render(blocks []Block) (string, error) {
	queue := newSymbolQueue(blocks)
	var output strings.Builder
	output.Grow(len(blocks) * SymbolsPerGroup)

	for !queue.Empty() {
		current, err := queue.Pop()
		if err != nil {
			return "", err
		}

		switch current {
		case symbols.Comma:
			err = r.renderComma(&queue, &output)
		case symbols.Chord:
			err = r.renderChord(&queue, &output)
		case symbols.NextIsAccented:
			err = r.renderAccented(&queue, &output)
		default:
			var text string
			text, err = current.Text()
			output.WriteString(text)
		}

		if err != nil {
			return "", err
		}
	}
	return output.String(), nil
}

// RenderParsed is [Renderer.Render] for text that hasn't been packed yet.
func (r Renderer) RenderParsed(parsed ParsedText) (string, error) {
	blocks, err := PackAll(parsed)
	if err != nil {
		return "", err
	}
	return r.Render(blocks)
}

// renderComma handles a comma, which is a period if another comma follows it.
func (r Renderer) renderComma(queue *symbolQueue, output *strings.Builder) error {
	next, ok, err := queue.Peek()
	if err != nil {
		return err
	}

	if ok && next == symbols.Comma {
		queue.Pop()
		output.WriteString(".")
	} else {
		output.WriteString(",")
	}
	return nil
}

func (r Renderer) renderChord(queue *symbolQueue, output *strings.Builder) error {
	chorded, err := popOperand(queue, "chord")
	if err != nil {
		return err
	}

	text, err := chorded.Text()
	if err != nil {
		return err
	}

	if r.highlight {
		output.WriteString(r.highlightStart)
		output.WriteString(text)
		output.WriteString(r.highlightEnd)
	} else {
		output.WriteString(text)
	}
	return nil
}

// renderAccented handles the symbols following a NextIsAccented marker.
//
// The normal case is a single base letter. "é" is the exception, written as
// NextIsAccented NextIsAccented E, or with [WithTrailingAcuteMarker] also as
// NextIsAccented E NextIsAccented.
func (r Renderer) renderAccented(queue *symbolQueue, output *strings.Builder) error {
	base, err := popOperand(queue, "accent marker")
	if err != nil {
		return err
	}

	switch base {
	case symbols.NextIsAccented:
		letter, err := popOperand(queue, "double accent marker")
		if err != nil {
			return err
		}
		if letter != symbols.E {
			return errors.ErrUnsupportedAccentBase.WithMessage(
				fmt.Sprintf("double accent marker followed by %s", letter))
		}
		output.WriteString(symbols.AcuteE)
		return nil

	case symbols.E:
		if !r.trailingAcute {
			break
		}
		next, ok, err := queue.Peek()
		if err != nil {
			return err
		}
		if ok && next == symbols.NextIsAccented {
			queue.Pop()
			output.WriteString(symbols.AcuteE)
			return nil
		}
	}

	glyph, err := symbols.AccentedGlyph(base)
	if err != nil {
		return err
	}
	output.WriteString(glyph)
	return nil
}

// popOperand pops the symbol a marker applies to.
func popOperand(queue *symbolQueue, marker string) (symbols.Symbol, error) {
	operand, err := queue.Pop()
	if err == errors.ErrTruncatedSequence {
		return symbols.Space, errors.ErrTruncatedSequence.WithMessage(
			marker + " at end of text")
	}
	return operand, err
}
