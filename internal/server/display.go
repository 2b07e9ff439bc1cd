package server

import (
	"image"

	"github.com/ironsheep/miniphoto/internal/imaging"
)

// display records what the session would show. Clients read it back with
// editor_state and resize it with editor_viewport.
type display struct {
	viewport image.Point
	shown    *imaging.Buffer
	frames   int
}

func (d *display) Show(b *imaging.Buffer) {
	d.shown = b
	d.frames++
}

func (d *display) ViewportSize() image.Point { return d.viewport }

// scriptedPrompt answers the text prompt with whatever the client sent along
// with the pointer release. Each answer is used at most once; without one the
// prompt counts as cancelled.
type scriptedPrompt struct {
	next *promptAnswer
}

type promptAnswer struct {
	text  string
	color imaging.PaletteColor
}

func (p *scriptedPrompt) set(a *promptAnswer) { p.next = a }

func (p *scriptedPrompt) PromptTextAndColor() (string, imaging.PaletteColor, bool) {
	a := p.next
	p.next = nil
	if a == nil {
		return "", imaging.Black, false
	}
	return a.text, a.color, true
}
