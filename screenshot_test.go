package nothofagus

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.Screenshot("a")
	c.Screenshot("b")
	if len(c.screenshotQueue) != 2 || c.screenshotQueue[0] != "a" || c.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", c.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	if got := DefaultConfig().ScreenshotDir; got != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", got, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{64, 32, 0, 128, 10, 20, 30, 255}, 2, 1)
	want := []uint8{127, 63, 0, 128, 10, 20, 30, 255}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}
