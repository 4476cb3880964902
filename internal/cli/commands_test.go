package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSheet = `{
  "frames": {
    "run 0.ase": {
      "frame": {"x": 0, "y": 0, "w": 32, "h": 32},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 32},
      "sourceSize": {"w": 32, "h": 32},
      "duration": 120
    }
  },
  "meta": {
    "app": "https://www.aseprite.org/",
    "version": "1.3.7",
    "format": "RGBA8888",
    "size": {"w": 32, "h": 32},
    "scale": "1"
  }
}`

// writeSheet writes a test document and returns its path.
func writeSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and returns the error.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestValidateCommand(t *testing.T) {
	path := writeSheet(t, testSheet)
	if err := execute(t, "validate", path); err != nil {
		t.Errorf("validate error = %v, want nil", err)
	}
}

func TestValidateCommandRejectsMalformed(t *testing.T) {
	path := writeSheet(t, `{"frames": "nope"}`)
	if err := execute(t, "validate", path); err == nil {
		t.Error("validate error = nil, want failure")
	}
}

func TestValidateCommandStrict(t *testing.T) {
	// Tag range exceeds the single frame: passes plain, fails strict.
	lintable := strings.Replace(testSheet, `"scale": "1"`,
		`"scale": "1", "frameTags": [{"name": "run", "from": 0, "to": 5, "direction": "forward"}]`, 1)
	path := writeSheet(t, lintable)

	if err := execute(t, "validate", path); err != nil {
		t.Errorf("validate error = %v, want nil", err)
	}
	if err := execute(t, "validate", "--strict", path); err == nil {
		t.Error("validate --strict error = nil, want failure")
	}
}

func TestValidateCommandMissingFile(t *testing.T) {
	if err := execute(t, "validate", filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("validate error = nil, want failure")
	}
}

func TestConvertCommand(t *testing.T) {
	path := writeSheet(t, testSheet)
	out := filepath.Join(t.TempDir(), "out.json")

	if err := execute(t, "convert", path, "-o", out); err != nil {
		t.Fatalf("convert error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `"frames": [`) {
		t.Errorf("output keeps object shape:\n%s", data)
	}
	if !strings.Contains(string(data), `"filename": "run 0.ase"`) {
		t.Errorf("output missing filename:\n%s", data)
	}
}

func TestConvertCommandCompact(t *testing.T) {
	path := writeSheet(t, testSheet)
	out := filepath.Join(t.TempDir(), "out.json")

	if err := execute(t, "convert", path, "-o", out, "--compact"); err != nil {
		t.Fatalf("convert error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(data), "\n  ") {
		t.Errorf("compact output is indented:\n%s", data)
	}
}

func TestQueryCommand(t *testing.T) {
	path := writeSheet(t, testSheet)
	if err := execute(t, "query", path, "frames.0.duration"); err != nil {
		t.Errorf("query error = %v, want nil", err)
	}
}

func TestQueryCommandMissingPath(t *testing.T) {
	path := writeSheet(t, testSheet)
	if err := execute(t, "query", path, "meta.nonexistent"); err == nil {
		t.Error("query error = nil, want failure")
	}
}

func TestInfoCommand(t *testing.T) {
	path := writeSheet(t, testSheet)
	if err := execute(t, "info", path); err != nil {
		t.Errorf("info error = %v, want nil", err)
	}
	if err := execute(t, "info", "--json", path); err != nil {
		t.Errorf("info --json error = %v, want nil", err)
	}
}
