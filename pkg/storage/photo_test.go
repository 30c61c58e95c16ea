package storage

import (
	"errors"
	"strings"
	"testing"

	"skillswap/pkg/utils"
)

func TestValidatePhoto(t *testing.T) {
	cases := []struct {
		name string
		size int64
		want error
	}{
		{"me.png", 1024, nil},
		{"me.JPG", 1024, nil},
		{"me.jpeg", MaxPhotoSize, nil},
		{"me.webp", 10, nil},
		{"me.gif", 10, utils.ErrInvalidFileType},
		{"noext", 10, utils.ErrInvalidFileType},
		{"me.png", MaxPhotoSize + 1, utils.ErrFileTooLarge},
		{"me.gif", 6 * 1024 * 1024, utils.ErrFileTooLarge},
	}
	for _, tc := range cases {
		err := ValidatePhoto(tc.name, tc.size)
		if !errors.Is(err, tc.want) {
			t.Errorf("ValidatePhoto(%q, %d) = %v, want %v", tc.name, tc.size, err, tc.want)
		}
	}
}

func TestNewPhotoNameKeepsExtension(t *testing.T) {
	a := NewPhotoName("Portrait.JPEG")
	b := NewPhotoName("Portrait.JPEG")

	if !strings.HasSuffix(a, ".jpeg") {
		t.Fatalf("expected lower-cased extension, got %s", a)
	}
	if a == b {
		t.Fatal("expected random names")
	}
	if strings.Contains(a, "Portrait") {
		t.Fatal("original name must not leak into stored name")
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType("a.webp"); got != "image/webp" {
		t.Fatalf("got %s", got)
	}
	if got := ContentType("a.exe"); got != "application/octet-stream" {
		t.Fatalf("got %s", got)
	}
}
