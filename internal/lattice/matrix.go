package lattice

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DefaultPattern is the configuration filename written by the simulation.
const DefaultPattern = "config_L={L}_T={T}.txt"

// SpinMatrix is a lattice configuration indexed by (row, column).
type SpinMatrix [][]int

// ReadMatrix reads the configuration stored at path.
func ReadMatrix(path string) (SpinMatrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m, err := ParseMatrix(file)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return m, nil
}

// ParseMatrix reads one row per line. A blank line yields an empty row.
func ParseMatrix(r io.Reader) (SpinMatrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	m := make(SpinMatrix, 0)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		row := make([]int, len(fields))
		for i, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{Line: line, Token: tok, Wrapped: err}
			}
			row[i] = v
		}
		m = append(m, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Filename expands {L} and {T} in pattern.
func Filename(pattern string, size int, temperature string) string {
	r := strings.NewReplacer("{L}", strconv.Itoa(size), "{T}", temperature)
	return r.Replace(pattern)
}

func (m SpinMatrix) Rows() int {
	return len(m)
}

// Cols returns the length of the first row.
func (m SpinMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m SpinMatrix) IsRectangular() bool {
	for _, row := range m {
		if len(row) != m.Cols() {
			return false
		}
	}
	return true
}

// Flipped returns a copy with the row order reversed.
func (m SpinMatrix) Flipped() SpinMatrix {
	out := make(SpinMatrix, len(m))
	for i, row := range m {
		cp := make([]int, len(row))
		copy(cp, row)
		out[len(m)-1-i] = cp
	}
	return out
}

// Dense converts m to a gonum matrix with the same row order.
func (m SpinMatrix) Dense() (*mat.Dense, error) {
	if m.Rows() == 0 {
		return nil, ErrEmpty
	}
	if !m.IsRectangular() {
		return nil, ErrRagged
	}
	if m.Cols() == 0 {
		return nil, ErrEmpty
	}

	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	for _, row := range m {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	return mat.NewDense(r, c, data), nil
}
