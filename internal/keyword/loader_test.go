package keyword

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile creates a phrase file in a temporary directory.
func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "keywords.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write keyword file: %v", err)
	}
	return path
}

// TestLoad tests loading phrases from a file.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("returns non-blank lines in order", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "Acme\n\n  Globex  \n\t\n   \nInitech\n")

		phrases, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"Acme", "Globex", "Initech"}
		if len(phrases) != len(want) {
			t.Fatalf("expected %d phrases, got %d: %v", len(want), len(phrases), phrases)
		}
		for i := range want {
			if phrases[i] != want[i] {
				t.Errorf("phrase %d: expected %q, got %q", i, want[i], phrases[i])
			}
		}
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "Acme\nAcme\n")

		phrases, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(phrases) != 2 {
			t.Errorf("expected 2 phrases, got %d", len(phrases))
		}
	})

	t.Run("handles CRLF line endings", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "Acme\r\nGlobex Corp\r\n")

		phrases, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(phrases) != 2 || phrases[1] != "Globex Corp" {
			t.Errorf("unexpected phrases: %q", phrases)
		}
	})

	t.Run("empty file returns no phrases", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "")

		phrases, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(phrases) != 0 {
			t.Errorf("expected 0 phrases, got %d", len(phrases))
		}
	})

	t.Run("missing file returns ErrResourceUnavailable", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.txt")

		phrases, err := Load(path)
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !errors.Is(err, ErrResourceUnavailable) {
			t.Errorf("expected ErrResourceUnavailable, got %v", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected wrapped fs.ErrNotExist, got %v", err)
		}
		if phrases != nil {
			t.Error("expected nil phrases on error")
		}

		var resErr *ResourceError
		if !errors.As(err, &resErr) {
			t.Fatalf("expected *ResourceError, got %T", err)
		}
		if resErr.Path != path {
			t.Errorf("expected path %q, got %q", path, resErr.Path)
		}
	})

	t.Run("directory returns ErrResourceUnavailable", func(t *testing.T) {
		t.Parallel()

		_, err := Load(t.TempDir())
		if !errors.Is(err, ErrResourceUnavailable) {
			t.Errorf("expected ErrResourceUnavailable, got %v", err)
		}
	})
}

// TestParse tests the property that N non-blank lines yield N phrases.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single phrase without newline",
			input: "Acme",
			want:  []string{"Acme"},
		},
		{
			name:  "inner whitespace is preserved",
			input: "  Acme   Corp  \n",
			want:  []string{"Acme   Corp"},
		},
		{
			name:  "blank lines only",
			input: "\n\n \n\t\n",
			want:  []string{},
		},
		{
			name:  "utf-8 phrases",
			input: "Müller GmbH\n株式会社\n",
			want:  []string{"Müller GmbH", "株式会社"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d phrases, got %d: %q", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("phrase %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}
