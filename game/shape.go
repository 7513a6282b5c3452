package game

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies one of the seven tetrominoes
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindZ
	KindS
	KindCount
)

// RotationCount is the number of distinct 90 degree orientations tracked per kind
const RotationCount = 4

func (k Kind) String() string {
	if k < KindCount {
		return "IOTLJZS"[k : k+1]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Point is a grid coordinate, row-major
type Point struct {
	Row, Col int
}

// Matrix is one orientation of a tetromino inside its bounding box
// Cells are kept sorted row-major so equal patterns compare equal with ==
type Matrix struct {
	Width, Height int
	cells         [4]Point
}

// canonical spawn orientations, '#' is filled
var canonical = [KindCount][]string{
	KindI: {"####"},
	KindO: {"##", "##"},
	KindT: {"###", ".#."},
	KindL: {"###", "#.."},
	KindJ: {"###", "..#"},
	KindZ: {"##.", ".##"},
	KindS: {".##", "##."},
}

// rotations holds every kind x orientation, built once at init
var rotations [KindCount][RotationCount]Matrix

func init() {
	for k := Kind(0); k < KindCount; k++ {
		m := parseMatrix(canonical[k])
		for r := 0; r < RotationCount; r++ {
			rotations[k][r] = m
			m = m.Rotate()
		}
	}
}

// Rotation returns the precomputed orientation r (mod 4) of kind k
func Rotation(k Kind, r int) Matrix {
	return rotations[k][((r%RotationCount)+RotationCount)%RotationCount]
}

func parseMatrix(rows []string) Matrix {
	m := Matrix{Height: len(rows)}
	n := 0
	for r, line := range rows {
		m.Width = max(m.Width, len(line))
		for c, ch := range line {
			if ch != '#' {
				continue
			}
			if n == len(m.cells) {
				panic(fmt.Sprintf("tetromino %q has more than %d cells", rows, len(m.cells)))
			}
			m.cells[n] = Point{Row: r, Col: c}
			n++
		}
	}
	if n != len(m.cells) {
		panic(fmt.Sprintf("tetromino %q has %d cells", rows, n))
	}
	return m
}

// Rotate returns the clockwise quarter turn: new[c][h-1-r] = old[r][c]
func (m Matrix) Rotate() Matrix {
	out := Matrix{Width: m.Height, Height: m.Width}
	for i, p := range m.cells {
		out.cells[i] = Point{Row: p.Col, Col: m.Height - 1 - p.Row}
	}
	sort.Slice(out.cells[:], func(i, j int) bool {
		a, b := out.cells[i], out.cells[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	return out
}

// Cells returns the filled offsets relative to the anchor
func (m Matrix) Cells() [4]Point {
	return m.cells
}

// Filled reports whether offset (r, c) is part of the shape
func (m Matrix) Filled(r, c int) bool {
	for _, p := range m.cells {
		if p.Row == r && p.Col == c {
			return true
		}
	}
	return false
}

func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.Height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < m.Width; c++ {
			if m.Filled(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
