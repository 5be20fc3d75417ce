//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRGB565RoundTripPrimaries(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{0xFF, 0xFF, 0xFF, 0xFFFF},
		{0xFF, 0, 0, 0xF800},
		{0, 0xFF, 0, 0x07E0},
		{0, 0, 0xFF, 0x001F},
	}
	for _, tc := range cases {
		got := rgb565(tc.r, tc.g, tc.b)
		if got != tc.want {
			t.Fatalf("rgb565(%d,%d,%d)=%#04x, want %#04x", tc.r, tc.g, tc.b, got, tc.want)
		}
		r, g, b := rgb888From565(got)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("rgb888From565(%#04x)=(%d,%d,%d), want (%d,%d,%d)", got, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	if fb.Width() != 4 || fb.Height() != 3 || fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("unexpected geometry %dx%d stride=%d len=%d", fb.Width(), fb.Height(), fb.StrideBytes(), len(fb.Buffer()))
	}
	if fb.resize(4, 3) {
		t.Fatal("resize to same size reported a change")
	}
	if !fb.resize(10, 2) {
		t.Fatal("resize to new size reported no change")
	}
	if fb.Width() != 10 || fb.Height() != 2 || len(fb.Buffer()) != 40 {
		t.Fatalf("unexpected geometry after resize %dx%d len=%d", fb.Width(), fb.Height(), len(fb.Buffer()))
	}
	fb.resize(0, -5)
	if fb.Width() != 1 || fb.Height() != 1 {
		t.Fatalf("resize should clamp to 1x1, got %dx%d", fb.Width(), fb.Height())
	}
}

func TestFramebufferClearAndSnapshot(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(0xFF, 0, 0)

	img := fb.snapshotRGBA(nil)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("snapshot bounds %v", img.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := img.RGBAAt(x, y)
			if c.R != 0xFF || c.G != 0 || c.B != 0 || c.A != 0xFF {
				t.Fatalf("pixel (%d,%d)=%v, want opaque red", x, y, c)
			}
		}
	}

	same := fb.snapshotRGBA(img)
	if same != img {
		t.Fatal("snapshot should reuse a matching destination")
	}
	fb.resize(5, 5)
	if fb.snapshotRGBA(img) == img {
		t.Fatal("snapshot should reallocate after resize")
	}
}

func TestHostLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := &hostLogger{w: &buf}
	l.WriteLineString("a")
	l.WriteLineBytes([]byte("b"))
	if got := buf.String(); got != "a\nb\n" {
		t.Fatalf("log output %q", got)
	}
}

func TestHostTimeTicks(t *testing.T) {
	ht := newHostTime()
	start := time.Unix(100, 0)

	ht.stepAt(start, 1)
	ht.stepAt(start.Add(500*time.Microsecond), 1)
	ht.stepAt(start.Add(2500*time.Microsecond), 1)

	var got []uint64
	for {
		select {
		case v := <-ht.Ticks():
			got = append(got, v)
			continue
		default:
		}
		break
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("ticks=%v, want [1 2 3]", got)
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "out.png")

	var steps int
	app := func(h HAL) (func() error, error) {
		fb := h.Display().Framebuffer()
		return func() error {
			steps++
			fb.ClearRGB(0, 0xFF, 0)
			return fb.Present()
		}, nil
	}

	err := RunHeadless(context.Background(), app, HeadlessConfig{
		Enabled:  true,
		Hz:       1000,
		Ticks:    5,
		Snapshot: snap,
		Width:    8,
		Height:   4,
		Log:      &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps=%d, want 5", steps)
	}

	f, err := os.Open(snap)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Fatalf("snapshot bounds %v", img.Bounds())
	}
	_, g, _, _ := img.At(3, 2).RGBA()
	if g>>8 != 0xFF {
		t.Fatalf("snapshot pixel green=%d, want 255", g>>8)
	}
}

func TestRunHeadlessQuit(t *testing.T) {
	app := func(HAL) (func() error, error) {
		return func() error { return ErrQuit }, nil
	}
	err := RunHeadless(context.Background(), app, HeadlessConfig{Hz: 1000, Log: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("ErrQuit should end the run cleanly, got %v", err)
	}
}

func TestRunHeadlessPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	app := func(HAL) (func() error, error) { return nil, boom }
	if err := RunHeadless(context.Background(), app, HeadlessConfig{Log: &bytes.Buffer{}}); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}

	stepErr := errors.New("step")
	app = func(HAL) (func() error, error) { return func() error { return stepErr }, nil }
	if err := RunHeadless(context.Background(), app, HeadlessConfig{Hz: 1000, Log: &bytes.Buffer{}}); !errors.Is(err, stepErr) {
		t.Fatalf("err=%v, want step", err)
	}
}

func TestRunHeadlessContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app := func(HAL) (func() error, error) { return func() error { return nil }, nil }
	if err := RunHeadless(ctx, app, HeadlessConfig{Hz: 10, Log: &bytes.Buffer{}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}
