package series

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// Series is a labelled sequence of (x, y) samples in file order.
type Series struct {
	Label string
	X     []float64
	Y     []float64
	Style Style
}

func (s Series) Len() int {
	return len(s.X)
}

// XY returns the i-th sample; it satisfies gonum's plotter.XYer.
func (s Series) XY(i int) (float64, float64) {
	return s.X[i], s.Y[i]
}

// ExpandTemplate substitutes label for the {} placeholder; {l} is accepted too.
func ExpandTemplate(template, label string) string {
	r := strings.NewReplacer("{}", label, "{l}", label)
	return r.Replace(template)
}

// Load reads one series per label from the files named by template.
func Load(labels []string, template string) ([]Series, error) {
	return DefaultPalette.Load(labels, template)
}

// Load reads one series per label, styled by p in label order.
func (p Palette) Load(labels []string, template string) ([]Series, error) {
	out := make([]Series, 0, len(labels))
	for i, label := range labels {
		style, err := p.At(i)
		if err != nil {
			return nil, err
		}

		x, y, err := ReadXY(ExpandTemplate(template, label))
		if err != nil {
			return nil, err
		}

		out = append(out, Series{
			Label: "L=" + label,
			X:     x,
			Y:     y,
			Style: style,
		})
	}
	return out, nil
}

// ReadXY reads a two-column sample file.
func ReadXY(path string) ([]float64, []float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	x, y, err := ParseXY(file)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, nil, err
	}
	return x, y, nil
}

// ParseXY reads x from the first column and y from the second. Extra columns
// are ignored. Every line, blank ones included, must hold a sample.
func ParseXY(r io.Reader) ([]float64, []float64, error) {
	scanner := bufio.NewScanner(r)

	x := make([]float64, 0)
	y := make([]float64, 0)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, nil, &ParseError{Line: line, Text: text, Wrapped: ErrShortLine}
		}

		xv, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, &ParseError{Line: line, Text: text, Wrapped: err}
		}
		yv, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, &ParseError{Line: line, Text: text, Wrapped: err}
		}

		x = append(x, xv)
		y = append(y, yv)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
