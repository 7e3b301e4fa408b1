package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrMalformedOFF = errors.New("mesh: malformed OFF data")

// LoadOFF reads a mesh from an OFF file on disk.
func LoadOFF(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadOFF(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadOFF parses the Object File Format:
//
//	OFF
//	nv nf ne
//	x y z          (nv lines)
//	k i0 i1 ... ik (nf lines)
//
// The OFF header is optional, '#' starts a comment, trailing values on a line
// (colors) are ignored. Faces with more than 3 vertices are split into a fan.
func ReadOFF(r io.Reader) (*Mesh, error) {
	lines := offLines{scanner: bufio.NewScanner(r)}

	fields, err := lines.next()
	if err != nil {
		return nil, err
	}
	if fields[0] == "OFF" {
		fields = fields[1:]
		if len(fields) == 0 {
			if fields, err = lines.next(); err != nil {
				return nil, err
			}
		}
	}

	counts, err := parseInts(fields, 2)
	if err != nil {
		return nil, fmt.Errorf("line %d: counts: %w", lines.number, err)
	}
	nv, nf := counts[0], counts[1]
	if nv < 0 || nf < 0 {
		return nil, fmt.Errorf("line %d: negative counts: %w", lines.number, ErrMalformedOFF)
	}

	// counts come from the file, append grows past the hint
	positions := make([]mgl64.Vec3, 0, min(nv, maxPrealloc))
	for range nv {
		if fields, err = lines.next(); err != nil {
			return nil, err
		}
		coords, err := parseFloats(fields, 3)
		if err != nil {
			return nil, fmt.Errorf("line %d: vertex: %w", lines.number, err)
		}
		positions = append(positions, mgl64.Vec3{coords[0], coords[1], coords[2]})
	}

	triangles := make([][3]int, 0, min(nf, maxPrealloc))
	for range nf {
		if fields, err = lines.next(); err != nil {
			return nil, err
		}
		k, err := parseInts(fields, 1)
		if err != nil || k[0] < 3 {
			return nil, fmt.Errorf("line %d: face size: %w", lines.number, ErrMalformedOFF)
		}
		indices, err := parseInts(fields[1:], k[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: face: %w", lines.number, err)
		}
		for i := 1; i+1 < len(indices); i++ {
			triangles = append(triangles, [3]int{indices[0], indices[i], indices[i+1]})
		}
	}

	return New(positions, triangles)
}

// WriteOFF encodes the mesh as an OFF document readable by ReadOFF.
func (m *Mesh) WriteOFF(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "OFF")
	fmt.Fprintf(bw, "%d %d 0\n", len(m.Vertices), len(m.Triangles))
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "%s %s %s\n",
			strconv.FormatFloat(v.Position.X(), 'g', -1, 64),
			strconv.FormatFloat(v.Position.Y(), 'g', -1, 64),
			strconv.FormatFloat(v.Position.Z(), 'g', -1, 64))
	}
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "3 %d %d %d\n", t.A, t.B, t.C)
	}
	return bw.Flush()
}

// maxPrealloc bounds the capacity reserved from the header counts.
const maxPrealloc = 1 << 16

// offLines yields the non-empty, comment-stripped lines of an OFF document.
type offLines struct {
	scanner *bufio.Scanner
	number  int
}

func (l *offLines) next() ([]string, error) {
	for l.scanner.Scan() {
		l.number++
		line := l.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := l.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("unexpected end of data after line %d: %w", l.number, ErrMalformedOFF)
}

func parseInts(fields []string, n int) ([]int, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d: %w", n, len(fields), ErrMalformedOFF)
	}
	values := make([]int, n)
	for i := range n {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%q: %w", fields[i], ErrMalformedOFF)
		}
		values[i] = v
	}
	return values, nil
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d: %w", n, len(fields), ErrMalformedOFF)
	}
	values := make([]float64, n)
	for i := range n {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", fields[i], ErrMalformedOFF)
		}
		values[i] = v
	}
	return values, nil
}
