package geometry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hschendel/stl"
)

// Solid converts the shaft body into an STL solid. Coordinates are in mm.
// Binary solids carry the name in their 80 byte header.
func Solid(name string, c Cylinder, binary bool) (*stl.Solid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		name = "shaft"
	}

	tris := c.Triangles()
	s := &stl.Solid{
		Name:      name,
		IsAscii:   !binary,
		Triangles: make([]stl.Triangle, len(tris)),
	}
	for i, t := range tris {
		s.Triangles[i] = stl.Triangle{
			Normal:   toSTL(t.Normal),
			Vertices: [3]stl.Vec3{toSTL(t.V1), toSTL(t.V2), toSTL(t.V3)},
		}
	}
	if binary {
		s.BinaryHeader = make([]byte, 80)
		copy(s.BinaryHeader, "goshaft "+name)
	}
	return s, nil
}

func toSTL(v Vec3) stl.Vec3 {
	return stl.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// WriteSTL writes the shaft as an ASCII STL solid.
func WriteSTL(w io.Writer, name string, c Cylinder) error {
	s, err := Solid(name, c, false)
	if err != nil {
		return err
	}
	return s.WriteAll(w)
}

// ExportSTL writes the shaft to an STL file, creating the directory if needed.
func ExportSTL(filename, name string, c Cylinder, binary bool) error {
	s, err := Solid(name, c, binary)
	if err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := s.WriteFile(filename); err != nil {
		return fmt.Errorf("write stl file: %w", err)
	}
	return nil
}
