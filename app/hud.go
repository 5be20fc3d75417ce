package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
)

var (
	hudFont = &tinyfont.Org01
	hudFG   = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	hudDim  = color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xFF}
)

const (
	hudMargin = 4
	hudLineH  = 8
)

func (v *viewer) hudLines() []string {
	mode := "solid"
	if v.vp.Wireframe() {
		mode = "wire"
	}
	return []string{
		fmt.Sprintf("SPHERES %d  COLORS %d", v.vp.Count(), v.vp.PaletteLen()),
		fmt.Sprintf("FRAME %d MS  TRIS %d  CULLED %d  %s", v.frameMS, v.stats.Triangles, v.stats.Culled, mode),
	}
}

const hudHelp = "+/- COUNT  [/] HALVE/DOUBLE  0 CLEAR  R RESET  W WIRE  D DAMP  H HUD  Q QUIT"

func (v *viewer) drawHUD() {
	d := fbDisplay{fb: v.fb}
	y := int16(hudMargin + hudLineH)
	for _, line := range v.hudLines() {
		tinyfont.WriteLine(d, hudFont, hudMargin, y, line, hudFG)
		y += hudLineH
	}

	_, h := d.Size()
	_, outW := tinyfont.LineWidth(hudFont, hudHelp)
	w, _ := d.Size()
	if int16(outW)+2*hudMargin > w {
		return
	}
	tinyfont.WriteLine(d, hudFont, hudMargin, h-hudMargin, hudHelp, hudDim)
}
