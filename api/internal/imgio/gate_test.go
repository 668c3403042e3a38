package imgio

import (
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"jpeg signature", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, "jpeg"},
		{"png signature", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, "png"},
		{"truncated png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A}, ""},
		{"truncated jpeg", []byte{0xFF, 0xD8}, ""},
		{"plain text", []byte("hello world"), ""},
		{"html", []byte("<html><body>nope</body></html>"), ""},
		{"empty", nil, ""},
		{"gif", []byte("GIF89a"), ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectFormat(tc.input); got != tc.expected {
				t.Errorf("DetectFormat() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestCheckSignature(t *testing.T) {
	if err := CheckSignature([]byte{0xFF, 0xD8, 0xFF, 0x00}); err != nil {
		t.Errorf("jpeg bytes rejected: %v", err)
	}
	err := CheckSignature([]byte("definitely not an image"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestAllowedExt(t *testing.T) {
	testCases := []struct {
		name    string
		allowed bool
	}{
		{"photo.jpg", true},
		{"photo.png", true},
		{"notes.JPG", true},           // case-insensitive suffix match
		{"scan.final.png", true},      // multi-dot filename, suffix governs
		{"notes.txt", false},
		{"jpg", false},                // no dot, not a suffix match
		{".png", false},               // extension only, no basename
		{"archive.png.zip", false},
		{"dir.png/file.txt", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AllowedExt(tc.name); got != tc.allowed {
				t.Errorf("AllowedExt(%q) = %v, want %v", tc.name, got, tc.allowed)
			}
		})
	}
}
