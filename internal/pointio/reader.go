package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/banshee-data/pointexpand/internal/expand"
	"github.com/banshee-data/pointexpand/internal/fsutil"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrTooFewFields is returned for records with fewer than four fields.
var ErrTooFewFields = errors.New("expected label and three coordinates")

// maxLineBytes bounds a single input record.
const maxLineBytes = 1024 * 1024

// LineError describes an input record that was skipped.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ParseLine parses a single "label X Y Z" record. Fields may be separated
// by commas, whitespace or both. Fields after Z are ignored.
func ParseLine(line string) (expand.Point, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) < 4 {
		return expand.Point{}, fmt.Errorf("%w: got %d", ErrTooFewFields, len(fields))
	}

	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return expand.Point{}, fmt.Errorf("invalid coordinate %q: %w", fields[i+1], err)
		}
		xyz[i] = v
	}
	return expand.Point{
		Label: fields[0],
		Pos:   r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]},
	}, nil
}

// ReadPoints reads every record from r in order. Blank lines and lines
// starting with '#' are skipped. If the first record does not parse it is
// treated as a column header and dropped silently; any later record that
// does not parse is skipped and reported in the returned LineErrors. The
// error result is non-nil only when r itself fails.
func ReadPoints(r io.Reader) ([]expand.Point, []LineError, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		points  []expand.Point
		skipped []LineError
		lineNo  int
		first   = true
	)
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := ParseLine(text)
		isHeader := first
		first = false
		if err != nil {
			if isHeader {
				continue
			}
			skipped = append(skipped, LineError{Line: lineNo, Text: text, Err: err})
			continue
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return points, skipped, fmt.Errorf("failed to read points: %w", err)
	}
	return points, skipped, nil
}

// ReadPointsFile opens path on fsys and reads it with ReadPoints.
func ReadPointsFile(fsys fsutil.FileSystem, path string) ([]expand.Point, []LineError, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()
	return ReadPoints(f)
}
