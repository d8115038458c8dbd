package geometry

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/goshaft/internal/shaft"
	"github.com/hschendel/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func designed(t *testing.T) *shaft.Result {
	t.Helper()
	r, err := shaft.Design(shaft.DefaultInput(1000, 500))
	require.NoError(t, err)
	return r
}

func TestFromResult(t *testing.T) {
	r := designed(t)

	c, err := FromResult(r, DefaultSegments)
	require.NoError(t, err)
	assert.InDelta(t, r.RequiredDiameter, c.Diameter(), 1e-12)
	assert.Equal(t, 500.0, c.Length)
}

func TestFromResultRejectsZeroDiameter(t *testing.T) {
	r, err := shaft.Design(shaft.DefaultInput(0, 500))
	require.NoError(t, err)

	_, err = FromResult(r, DefaultSegments)
	assert.ErrorContains(t, err, "invalid shaft radius")

	_, err = FromResult(nil, DefaultSegments)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Cylinder
		ok   bool
	}{
		{"valid", Cylinder{Radius: 10, Length: 100, Segments: 16}, true},
		{"zero radius", Cylinder{Radius: 0, Length: 100, Segments: 16}, false},
		{"NaN radius", Cylinder{Radius: math.NaN(), Length: 100, Segments: 16}, false},
		{"zero length", Cylinder{Radius: 10, Length: 0, Segments: 16}, false},
		{"two segments", Cylinder{Radius: 10, Length: 100, Segments: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTrianglesFormClosedSolid(t *testing.T) {
	c := Cylinder{Radius: 10, Length: 100, Segments: 128}
	tris := c.Triangles()
	require.Len(t, tris, 4*c.Segments)

	// Divergence theorem: V = Σ (v1 · (v2 × v3)) / 6 for an outward-oriented closed mesh.
	var vol float64
	for _, tr := range tris {
		cr := tr.V2.cross(tr.V3)
		vol += tr.V1.X*cr.X + tr.V1.Y*cr.Y + tr.V1.Z*cr.Z
	}
	vol /= 6
	assert.InDelta(t, c.Volume(), vol, c.Volume()*0.001)

	// Cap normals point out of the body.
	assert.InDelta(t, -1.0, tris[0].Normal.Z, 1e-12)
	assert.InDelta(t, 1.0, tris[1].Normal.Z, 1e-12)
}

func TestMass(t *testing.T) {
	c := Cylinder{Radius: 10, Length: 1000, Segments: 16}
	// π·100·1000 mm³ = 3.1416e-4 m³ → 2.466 kg at 7850 kg/m³
	assert.InDelta(t, 2.466, c.Mass(7850), 1e-3)
}

func TestDimensions(t *testing.T) {
	c := Cylinder{Radius: 11.0644, Length: 500, Segments: 16}
	dims := c.Dimensions()
	require.Len(t, dims, 2)

	assert.Equal(t, DiameterDimension, dims[0].Kind)
	assert.InDelta(t, 22.1288, dims[0].Value, 1e-9)
	assert.Equal(t, "Ø22.13", dims[0].Label)
	assert.Equal(t, Vec3{c.Radius + 10, 0, 250}, dims[0].TextPoint)

	assert.Equal(t, LengthDimension, dims[1].Kind)
	assert.Equal(t, 500.0, dims[1].Value)
	assert.Equal(t, Vec3{0, 0, 500}, dims[1].End)
}

func TestWriteSTL(t *testing.T) {
	c := Cylinder{Radius: 5, Length: 20, Segments: 8}

	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, "drive shaft", c))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "solid drive_shaft"))
	assert.Contains(t, out, "endsolid drive_shaft")
	assert.Equal(t, 4*8, strings.Count(out, "facet normal"))
	assert.Equal(t, 3*4*8, strings.Count(out, "vertex"))

	solid, err := stl.ReadAll(strings.NewReader(out))
	require.NoError(t, err)
	assert.True(t, solid.IsAscii)
	assert.Equal(t, "drive_shaft", solid.Name)
	assert.Len(t, solid.Triangles, 32)
}

func TestSolidNormalsPointOutward(t *testing.T) {
	c := Cylinder{Radius: 5, Length: 20, Segments: 8}
	solid, err := Solid("", c, false)
	require.NoError(t, err)
	assert.Equal(t, "shaft", solid.Name)

	for _, tri := range solid.Triangles {
		var cx, cy, cz float32
		for _, v := range tri.Vertices {
			cx += v[0] / 3
			cy += v[1] / 3
			cz += v[2] / 3
		}
		// direction from the axis midpoint to the facet centroid
		dot := tri.Normal[0]*cx + tri.Normal[1]*cy + tri.Normal[2]*(cz-10)
		assert.Positive(t, dot)
	}
}

func TestWriteSTLInvalid(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSTL(&buf, "x", Cylinder{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestExportSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "shaft.stl")
	c, err := FromResult(designed(t), 16)
	require.NoError(t, err)

	require.NoError(t, ExportSTL(path, "", c, false))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "solid shaft"))
}

func TestExportBinarySTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shaft.stl")
	c, err := FromResult(designed(t), 16)
	require.NoError(t, err)

	require.NoError(t, ExportSTL(path, "drive shaft", c, true))

	info, err := os.Stat(path)
	require.NoError(t, err)
	// 80 byte header, uint32 count, 50 bytes per facet
	assert.Equal(t, int64(84+50*4*16), info.Size())

	solid, err := stl.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, solid.IsAscii)
	assert.Len(t, solid.Triangles, 64)
	assert.True(t, bytes.HasPrefix(solid.BinaryHeader, []byte("goshaft drive_shaft")))
}
