package storage

import (
	"strings"
	"testing"
)

func TestSanitizePathSegment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"covers", "covers"},
		{"  Covers  ", "covers"},
		{"Old Fashioned!", "oldfashioned"},
		{"trailing-_", "trailing-_"},
		{"", ""},
		{"///", ""},
	}

	for _, tt := range tests {
		if got := sanitizePathSegment(tt.input); got != tt.expected {
			t.Errorf("sanitizePathSegment(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"png", "png"},
		{".PNG", "png"},
		{"  .jpeg ", "jpeg"},
		{"", "bin"},
	}

	for _, tt := range tests {
		if got := normalizeExtension(tt.input); got != tt.expected {
			t.Errorf("normalizeExtension(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildObjectPath(t *testing.T) {
	path := buildObjectPath("covers", "Old Fashioned", "png")

	if !strings.HasPrefix(path, "covers/") {
		t.Errorf("expected category prefix, got %q", path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("expected .png suffix, got %q", path)
	}
	if !strings.Contains(path, "old-fashioned-") {
		t.Errorf("expected sanitized base name, got %q", path)
	}

	// Empty category falls back to misc; empty base name falls back to a
	// timestamp-only file name.
	fallback := buildObjectPath("", "", "")
	if !strings.HasPrefix(fallback, "misc/") {
		t.Errorf("expected misc prefix, got %q", fallback)
	}
	if !strings.HasSuffix(fallback, ".bin") {
		t.Errorf("expected .bin suffix, got %q", fallback)
	}
}

func TestJoinPrefix(t *testing.T) {
	tests := []struct {
		prefix   string
		key      string
		expected string
	}{
		{"", "covers/a.png", "covers/a.png"},
		{"uploads", "/covers/a.png", "uploads/covers/a.png"},
		{"/uploads/", "covers/a.png", "uploads/covers/a.png"},
	}

	for _, tt := range tests {
		if got := joinPrefix(tt.prefix, tt.key); got != tt.expected {
			t.Errorf("joinPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.expected)
		}
	}
}

func TestDetectContentType(t *testing.T) {
	if got := detectContentType("png"); got != "image/png" {
		t.Errorf("detectContentType(png) = %q", got)
	}
	if got := detectContentType("unknown-ext"); got != "application/octet-stream" {
		t.Errorf("detectContentType(unknown-ext) = %q", got)
	}
}
