package aseprite

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	first, err := DecodeBytes([]byte(fullSheet))
	if err != nil {
		t.Fatalf("DecodeBytes() error: %v", err)
	}

	encoded, err := EncodeBytes(first)
	if err != nil {
		t.Fatalf("EncodeBytes() error: %v", err)
	}

	second, err := DecodeBytes(encoded)
	if err != nil {
		t.Fatalf("DecodeBytes(encoded) error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip mismatch:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestEncodeIsStable(t *testing.T) {
	sheet, err := DecodeBytes([]byte(fullSheet))
	if err != nil {
		t.Fatalf("DecodeBytes() error: %v", err)
	}

	a, err := EncodeBytes(sheet)
	if err != nil {
		t.Fatalf("EncodeBytes() error: %v", err)
	}
	b, err := EncodeBytes(sheet)
	if err != nil {
		t.Fatalf("EncodeBytes() error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("EncodeBytes() produced different bytes for the same value")
	}

	// Re-encoding the decoded output reproduces it exactly.
	again, err := DecodeBytes(a)
	if err != nil {
		t.Fatalf("DecodeBytes(encoded) error: %v", err)
	}
	c, err := EncodeBytes(again)
	if err != nil {
		t.Fatalf("EncodeBytes() error: %v", err)
	}
	if !bytes.Equal(a, c) {
		t.Errorf("canonical form is not a fixed point:\n%s\nvs\n%s", a, c)
	}
}

func TestEncodeCanonicalizesObjectShape(t *testing.T) {
	doc := `{
	 "frames": {
	  "run 0.ase": {
	   "frame": { "x": 0, "y": 0, "w": 4, "h": 4 },
	   "rotated": false,
	   "trimmed": false,
	   "spriteSourceSize": { "x": 0, "y": 0, "w": 4, "h": 4 },
	   "sourceSize": { "w": 4, "h": 4 },
	   "duration": 50
	  }
	 },
	 "meta": {
	  "app": "a", "version": "1", "format": "I8",
	  "size": { "w": 4, "h": 4 }, "scale": "1"
	 }
	}`

	sheet, err := DecodeBytes([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeBytes() error: %v", err)
	}

	encoded, err := EncodeBytes(sheet)
	if err != nil {
		t.Fatalf("EncodeBytes() error: %v", err)
	}

	out := string(encoded)
	if !strings.Contains(out, `"frames": [`) {
		t.Errorf("map-decoded sheet did not re-encode as an array:\n%s", out)
	}
	if !strings.Contains(out, `"filename": "run 0.ase"`) {
		t.Errorf("object key did not become a filename field:\n%s", out)
	}

	// The canonical form round-trips back to the same value.
	again, err := DecodeBytes(encoded)
	if err != nil {
		t.Fatalf("DecodeBytes(encoded) error: %v", err)
	}
	if !reflect.DeepEqual(sheet, again) {
		t.Error("object-shaped input did not survive the canonical round trip")
	}
}

func TestEncodeEmptyListsAsArrays(t *testing.T) {
	doc := `{
	 "frames": [],
	 "meta": {
	  "app": "a", "version": "1", "format": "I8",
	  "size": { "w": 0, "h": 0 }, "scale": "1"
	 }
	}`

	sheet, err := DecodeBytes([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeBytes() error: %v", err)
	}

	encoded, err := EncodeCompact(sheet)
	if err != nil {
		t.Fatalf("EncodeCompact() error: %v", err)
	}

	out := string(encoded)
	for _, want := range []string{`"frames":[]`, `"frameTags":[]`, `"layers":[]`, `"slices":[]`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"image"`) {
		t.Errorf("absent image was encoded:\n%s", out)
	}
	if strings.Contains(out, "null") {
		t.Errorf("output contains null:\n%s", out)
	}
}

func TestEncodeLowercasesColors(t *testing.T) {
	doc := `{
	 "frames": [],
	 "meta": {
	  "app": "a", "version": "1", "format": "I8",
	  "size": { "w": 0, "h": 0 }, "scale": "1",
	  "layers": [ { "name": "l", "color": "#6ACD5BFF" } ]
	 }
	}`

	sheet, err := DecodeBytes([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeBytes() error: %v", err)
	}

	encoded, err := EncodeCompact(sheet)
	if err != nil {
		t.Fatalf("EncodeCompact() error: %v", err)
	}
	if !strings.Contains(string(encoded), `"color":"#6acd5bff"`) {
		t.Errorf("uppercase input was not canonicalized:\n%s", encoded)
	}
}

func TestEncodeWriter(t *testing.T) {
	sheet, err := DecodeBytes([]byte(fullSheet))
	if err != nil {
		t.Fatalf("DecodeBytes() error: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, sheet); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Encode() output does not end in a newline")
	}

	again, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes(written) error: %v", err)
	}
	if !reflect.DeepEqual(sheet, again) {
		t.Error("writer output did not round-trip")
	}
}
