package geodome

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type Format int

const (
	FormatPLY Format = iota
	FormatDXF
	FormatSTL
	FormatOBJ
)

func (f Format) String() string {
	switch f {
	case FormatPLY:
		return "ply"
	case FormatDXF:
		return "dxf"
	case FormatSTL:
		return "stl"
	case FormatOBJ:
		return "obj"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts a format name or file extension, case insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "ply":
		return FormatPLY, nil
	case "dxf":
		return FormatDXF, nil
	case "stl":
		return FormatSTL, nil
	case "obj":
		return FormatOBJ, nil
	}
	return 0, fmt.Errorf("unknown mesh format %q", s)
}

// Save writes the mesh to fileName in the given format.
func (m *Mesh) Save(fileName string, format Format) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create %s file %s: %w", format, fileName, err)
	}

	if err := m.Write(file, format); err != nil {
		file.Close()
		return fmt.Errorf("could not write %s file %s: %w", format, fileName, err)
	}
	return file.Close()
}

func (m *Mesh) Write(w io.Writer, format Format) error {
	switch format {
	case FormatPLY:
		return m.WritePLY(w)
	case FormatDXF:
		return m.WriteDXF(w)
	case FormatSTL:
		return m.WriteSTL(w, "geodome")
	case FormatOBJ:
		return m.WriteOBJ(w)
	}
	return fmt.Errorf("unknown mesh format %v", format)
}

// WritePLY writes an ASCII PLY file with one vertex element and one face
// element.
func (m *Mesh) WritePLY(w io.Writer) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintln(writer, "comment Generated by geodome")
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", m.VertexCount())
	_, _ = fmt.Fprintln(writer, "property float x")
	_, _ = fmt.Fprintln(writer, "property float y")
	_, _ = fmt.Fprintln(writer, "property float z")
	_, _ = fmt.Fprintf(writer, "element face %d\n", m.FaceCount())
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	_, _ = fmt.Fprintln(writer, "end_header")

	for _, v := range m.Vertices {
		_, _ = fmt.Fprintf(writer, "%f %f %f\n", v[0], v[1], v[2])
	}
	for _, f := range m.Faces {
		_, _ = fmt.Fprintf(writer, "3 %d %d %d\n", f[0], f[1], f[2])
	}

	return writer.Flush()
}

// WriteDXF writes every face as a 3DFACE entity. 3DFACE always has four
// corners, so the third one is repeated.
func (m *Mesh) WriteDXF(w io.Writer) error {
	writer := bufio.NewWriter(w)

	writePair := func(code int, value interface{}) {
		_, _ = fmt.Fprintf(writer, "%d\n%v\n", code, value)
	}

	writePair(0, "SECTION")
	writePair(2, "HEADER")
	writePair(0, "ENDSEC")

	writePair(0, "SECTION")
	writePair(2, "ENTITIES")

	for i := range m.Faces {
		p1, p2, p3 := m.FacePoints(i)

		writePair(0, "3DFACE")
		writePair(8, "0") // layer
		for corner, p := range [4][3]float64{p1, p2, p3, p3} {
			writePair(10+corner, p[0])
			writePair(20+corner, p[1])
			writePair(30+corner, p[2])
		}
	}

	writePair(0, "ENDSEC")
	writePair(0, "EOF")

	return writer.Flush()
}

// WriteSTL writes an ASCII STL solid. STL has no shared vertices, so each
// facet repeats its corners.
func (m *Mesh) WriteSTL(w io.Writer, name string) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintf(writer, "solid %s\n", name)
	for i := range m.Faces {
		n := m.Normal(i)
		p1, p2, p3 := m.FacePoints(i)
		_, _ = fmt.Fprintf(writer, "  facet normal %e %e %e\n", n[0], n[1], n[2])
		_, _ = fmt.Fprintln(writer, "    outer loop")
		for _, p := range [3][3]float64{p1, p2, p3} {
			_, _ = fmt.Fprintf(writer, "      vertex %e %e %e\n", p[0], p[1], p[2])
		}
		_, _ = fmt.Fprintln(writer, "    endloop")
		_, _ = fmt.Fprintln(writer, "  endfacet")
	}
	_, _ = fmt.Fprintf(writer, "endsolid %s\n", name)

	return writer.Flush()
}

// WriteOBJ writes a Wavefront OBJ file. OBJ face indices start at 1.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(writer, "# geodome")
	for _, v := range m.Vertices {
		_, _ = fmt.Fprintf(writer, "v %f %f %f\n", v[0], v[1], v[2])
	}
	for _, f := range m.Faces {
		_, _ = fmt.Fprintf(writer, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}

	return writer.Flush()
}
