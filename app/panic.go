package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"orbs/hal"

	"tinygo.org/x/tinyfont"
)

// showPanic logs a recovered step panic and paints it over the framebuffer.
func (v *viewer) showPanic(value any) {
	stack := debug.Stack()

	v.logf("orbs panic: %v", value)
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			v.logf("%s", line)
		}
	}

	fb := v.fb
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	font := hudFont
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = fb.Present()
		return
	}

	lines := []string{
		"ORBS PANIC:",
		fmt.Sprintf("panic: %v", value),
		"press q to quit",
		"stack:",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	d := fbDisplay{fb: fb}
	fg := color.RGBA{A: 255}
	maxH := int16(fb.Height())
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(hudLineH)
	for _, line := range lines {
		for len(line) > 0 {
			if y > maxH {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += hudLineH
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = fb.Present()
}

// drainAfterPanic keeps the panic screen up until a quit key arrives.
func (v *viewer) drainAfterPanic() error {
	if v.keys == nil {
		return nil
	}
	for {
		select {
		case ev := <-v.keys:
			if !ev.Press {
				continue
			}
			if ev.Code == hal.KeyEscape || ev.Rune == 'q' || ev.Rune == 'Q' {
				return hal.ErrQuit
			}
		default:
			return nil
		}
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
