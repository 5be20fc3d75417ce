// Package hal is the only contact point between the viewer and the host:
// logging, a framebuffer display, keyboard and pointer input, and a tick source.
package hal

import "errors"

// ErrQuit is returned by an app step to end the run loop cleanly.
var ErrQuit = errors.New("quit")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Width, Height and Buffer may change between app steps when the host window is
// resized; callers re-read them every frame.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown and Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerKind identifies a pointer gesture.
type PointerKind uint8

const (
	PointerRotate PointerKind = iota + 1 // primary-button drag
	PointerPan                           // secondary-button drag
	PointerWheel                         // scroll wheel
)

// PointerEvent is one pointer gesture step. DX, DY are in framebuffer pixels for
// drags and in wheel notches for PointerWheel.
type PointerEvent struct {
	Kind   PointerKind
	DX, DY float64
}

// Pointer provides mouse/touch gesture events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides a base tick stream. Host ticks are milliseconds.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the viewer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}

// AppFunc builds an app on h and returns its per-frame step.
//
// A step returning ErrQuit stops the run loop without error.
type AppFunc func(h HAL) (step func() error, err error)
