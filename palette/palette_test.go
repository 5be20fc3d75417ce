package palette

import (
	"errors"
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestDefaultExcludesBlack(t *testing.T) {
	p := Default()
	if p.Len() != len(colornames.Names)-1 {
		t.Fatalf("len = %d, want %d", p.Len(), len(colornames.Names)-1)
	}
	for i, c := range p {
		if c.R == 0 && c.G == 0 && c.B == 0 {
			t.Fatalf("entry %d is black", i)
		}
		if c.A != 0xFF {
			t.Fatalf("entry %d alpha = %d, want opaque", i, c.A)
		}
	}
	if p[0] != colornames.Aliceblue {
		t.Fatalf("first = %v, want aliceblue", p[0])
	}
}

func TestAtWraps(t *testing.T) {
	p, err := New(colornames.Red, colornames.Green, colornames.Blue, colornames.Gold, colornames.Plum)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.At(0) != p.At(5) {
		t.Fatalf("At(0)=%v At(5)=%v, want equal", p.At(0), p.At(5))
	}
	if p.At(7) != colornames.Blue {
		t.Fatalf("At(7) = %v, want blue", p.At(7))
	}
	if p.At(-1) != colornames.Plum {
		t.Fatalf("At(-1) = %v, want plum", p.At(-1))
	}
}

func TestNewEmpty(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("New() err = %v, want ErrEmpty", err)
	}
	if _, err := New(color.RGBA{A: 0xFF}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("New(black) err = %v, want ErrEmpty", err)
	}
	if _, err := FromNames("black"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("FromNames(black) err = %v, want ErrEmpty", err)
	}
}

func TestFromNames(t *testing.T) {
	p, err := FromNames("tomato", "black", "teal")
	if err != nil {
		t.Fatalf("FromNames: %v", err)
	}
	if p.Len() != 2 || p[0] != colornames.Tomato || p[1] != colornames.Teal {
		t.Fatalf("FromNames = %v", p)
	}
	if _, err := FromNames("tomato", "notacolor"); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("err = %v, want ErrUnknownColor", err)
	}
}
