package fsprobe

import (
	"testing"

	"github.com/spf13/afero"
)

func TestFileChecker_Exists(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/project/src/app/main.ts", nil, 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	checker := NewFileChecker(fs)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", "/project/src/app/main.ts", true},
		{"existing directory", "/project/src/app", true},
		{"missing file", "/project/src/app/main", false},
		{"missing directory", "/project/lib", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Exists(tt.path); got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewFileChecker_PanicsOnNilFs(t *testing.T) {
	defer func() {
		if r := recover(); r != "fs cannot be nil" {
			t.Errorf("NewFileChecker(nil) panic = %v, want %q", r, "fs cannot be nil")
		}
	}()
	NewFileChecker(nil)
}
