package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		id       string
		fileName string
		expected string
	}{
		{"plain", "documents", "abc", "report.pdf", "documents/abc/report.pdf"},
		{"strips directories", "documents", "abc", "../../etc/passwd", "documents/abc/passwd"},
		{"strips windows directories", "media", "abc", `C:\Users\me\photo.jpg`, "media/abc/photo.jpg"},
		{"empty name", "media", "abc", "", "media/abc/file"},
		{"dot dot", "media", "abc", "..", "media/abc/file"},
		{"spaces kept", "documents", "abc", "annual report.pdf", "documents/abc/annual report.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ObjectKey(tt.kind, tt.id, tt.fileName))
		})
	}
}
