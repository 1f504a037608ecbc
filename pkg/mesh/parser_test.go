package mesh

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

const asciiSTL = `solid roof
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid roof
`

func TestParseASCII(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiSTL))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if model.Name != "roof" {
		t.Errorf("expected name %q, got %q", "roof", model.Name)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", model.TriangleCount())
	}
	if math.Abs(model.SurfaceArea()-0.5) > 1e-10 {
		t.Errorf("expected area 0.5, got %v", model.SurfaceArea())
	}
}

func TestParseBinary(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(1))

	facet := struct {
		Normal     [3]float32
		V1, V2, V3 [3]float32
		Attribute  uint16
	}{
		Normal: [3]float32{0, 0, 1},
		V1:     [3]float32{0, 0, 0},
		V2:     [3]float32{2, 0, 0},
		V3:     [3]float32{0, 2, 0},
	}
	binary.Write(&buf, binary.LittleEndian, facet)

	model, err := ParseReader(&buf)
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", model.TriangleCount())
	}
	if math.Abs(model.SurfaceArea()-2.0) > 1e-6 {
		t.Errorf("expected area 2.0, got %v", model.SurfaceArea())
	}
}

func TestParseBinaryWithSolidHeader(t *testing.T) {
	// Binary file whose header happens to begin with "solid"
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "solid exported-binary")
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(1))

	facet := struct {
		Normal     [3]float32
		V1, V2, V3 [3]float32
		Attribute  uint16
	}{
		V1: [3]float32{0, 0, 0},
		V2: [3]float32{1, 0, 0},
		V3: [3]float32{0, 1, 0},
	}
	binary.Write(&buf, binary.LittleEndian, facet)

	model, err := ParseReader(&buf)
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if model.TriangleCount() != 1 {
		t.Errorf("expected binary fallback to find 1 triangle, got %d", model.TriangleCount())
	}
}
