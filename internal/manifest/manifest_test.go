package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quadra-lang/quadra/internal/manifest"
)

func TestParse(t *testing.T) {
	m, err := manifest.Parse([]byte(`name: my_circuit
version: 0.1.0
deps:
  crypto: ./vendor/crypto
`), "Quadra.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "my_circuit" || m.Version != "0.1.0" {
		t.Errorf("manifest = %+v", m)
	}
	if m.Deps["crypto"] != "./vendor/crypto" {
		t.Errorf("deps = %v", m.Deps)
	}
}

func TestParseRejectsInvalidManifests(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"missing name", `version: 0.1.0`, "name is required"},
		{"type-cased name", `name: MyCircuit`, "lowercase"},
		{"type-cased dep", "name: c\ndeps:\n  Crypto: ./x", "lowercase"},
		{"empty dep path", "name: c\ndeps:\n  crypto: \"\"", "empty path"},
		{"bad yaml", `name: [`, "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.content), "Quadra.yaml")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "lib")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, "Quadra.yaml")
	if err := os.WriteFile(path, []byte("name: c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := manifest.Find(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != path {
		t.Errorf("found %q, want %q", found, path)
	}
}

func TestFindMissing(t *testing.T) {
	found, err := manifest.Find(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != "" {
		t.Errorf("found %q, want none", found)
	}
}
