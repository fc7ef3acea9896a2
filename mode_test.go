package aperture

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"640x480", Mode{Width: 640, Height: 480}},
		{"1920x1080:32", Mode{Width: 1920, Height: 1080, Depth: 32}},
		{"640x480:32@60", Mode{Width: 640, Height: 480, Depth: 32, Refresh: 60}},
		{"800x600@75", Mode{Width: 800, Height: 600, Refresh: 75}},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseMode(%q) mismatch (-want, +got):\n%s", tt.in, diff)
		}
		if got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestParseModeInvalid(t *testing.T) {
	for _, in := range []string{"", "640", "x480", "640x", "0x480", "640x480:", "640x480@0", "axb"} {
		if _, err := ParseMode(in); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ParseMode(%q) err = %v, want ErrInvalidMode", in, err)
		}
	}
}

func TestModeMatches(t *testing.T) {
	m := Mode{Width: 1280, Height: 720}
	if !m.Matches(1280, 720, 24, 144) {
		t.Error("unspecified depth and refresh should match anything")
	}
	if m.Matches(1280, 800, 24, 60) {
		t.Error("different height matched")
	}

	m.Refresh = 60
	if m.Matches(1280, 720, 24, 144) {
		t.Error("different refresh matched")
	}
	m.Depth = 32
	if m.Matches(1280, 720, 24, 60) {
		t.Error("different depth matched")
	}
}

func TestFlags(t *testing.T) {
	f, ok := ParseFlag(" Hide_Cursor ")
	if !ok || f != FlagHideCursor {
		t.Fatalf("ParseFlag = %v, %v", f, ok)
	}
	if _, ok := ParseFlag("borderless"); ok {
		t.Fatal("unknown flag parsed")
	}
	if got := (FlagFullscreen | FlagNotResize).String(); got != "fullscreen|not_resize" {
		t.Errorf("String() = %q", got)
	}
	if Flag(0).String() != "none" {
		t.Errorf("zero flag String() = %q", Flag(0).String())
	}
}

func TestPixelFormatString(t *testing.T) {
	if s := (PixelFormatRGBA8888 | PixelFormatBigEndian).String(); s != "rgba8888_be" {
		t.Errorf("got %q", s)
	}
	if s := PixelFormatRGB565.String(); s != "rgb565_le" {
		t.Errorf("got %q", s)
	}
}
