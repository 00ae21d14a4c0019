package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"wirecube/gfx"

	"tinygo.org/x/tinyfont"
)

// panicScreen logs a recovered panic and paints it over the whole display,
// wrapping long lines and dropping what does not fit.
func (a *App) panicScreen(value any, stack []byte) {
	lines := []string{
		"wirecube panic:",
		fmt.Sprintf("panic: %v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	for _, line := range lines {
		a.logf("%s", line)
	}

	if a.tgt == nil {
		return
	}
	a.tgt.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	paintLines(a.tgt, lines, color.RGBA{A: 255})
	if a.fb != nil {
		_ = a.fb.Present()
	}
	a.tgt.ResetDirty()
}

func paintLines(t *gfx.RGB565Target, lines []string, fg color.RGBA) int {
	font := &tinyfont.TomThumb
	fontHeight := int16(font.GetYAdvance())
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		return 0
	}

	w, h := t.Size()
	cols := w / fontWidth
	if cols <= 0 {
		cols = 1
	}

	drawn := 0
	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > h {
				return drawn
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(t, font, fontWidth, 0, y+fontHeight-1, chunk, fg)
			drawn++
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	return drawn
}

func drawTextLine(
	t *gfx.RGB565Target,
	font tinyfont.Fonter,
	fontWidth int16,
	x0, baseline int16,
	s string,
	fg color.RGBA,
) {
	drawX := x0
	for _, r := range s {
		tinyfont.DrawChar(t, font, drawX, baseline, r, fg)
		drawX += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
