package imgio

import (
	"bytes"
	"strings"
)

// Allowed formats. Adding a format means adding a table row here, nothing
// else; no per-format logic exists beyond these lookups.
var (
	allowedExts = []string{".jpg", ".png"}

	signatures = []struct {
		Format string
		Magic  []byte
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF}},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}},
	}
)

// AllowedExt reports whether the filename ends in an allowed image extension.
// Matching is a case-insensitive suffix match, so "IMG_1.JPG" and
// "scan.final.png" pass while "notes.txt" and "jpg" do not.
func AllowedExt(name string) bool {
	for _, ext := range allowedExts {
		if len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
			return true
		}
	}
	return false
}

// DetectFormat returns the format name whose magic signature prefixes b, or
// "" when b matches none.
func DetectFormat(b []byte) string {
	for _, s := range signatures {
		if bytes.HasPrefix(b, s.Magic) {
			return s.Format
		}
	}
	return ""
}

// CheckExt rejects filenames outside the extension allow-list.
func CheckExt(name string) error {
	if !AllowedExt(name) {
		return ErrUnsupportedFormat
	}
	return nil
}

// CheckSignature rejects byte buffers that do not start with a recognized
// image signature. This is the only sound check for untrusted bytes: URL
// fetches carry no trustworthy filename and uploads carry unverified content.
func CheckSignature(b []byte) error {
	if DetectFormat(b) == "" {
		return ErrUnsupportedFormat
	}
	return nil
}
