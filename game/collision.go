package game

// CanMove reports whether every filled cell of p, shifted by (dx, dy), lands
// inside the board on an empty cell
// (0, 0) validates a candidate orientation or a fresh spawn
func CanMove(p Piece, b *Board, dx, dy int) bool {
	for _, pt := range p.Cells() {
		row, col := pt.Row+dy, pt.Col+dx
		if !b.InBounds(row, col) || b.IsOccupied(row, col) {
			return false
		}
	}
	return true
}

// TryRotate returns p turned one quarter clockwise if the turned shape fits
// at the same anchor. No wall kicks: on failure p is returned unchanged
func TryRotate(p Piece, b *Board) (Piece, bool) {
	r := p.Rotated()
	shape := r.Shape()
	if !CanMove(r, b, 0, 0) ||
		r.X+shape.Width > b.Cols() ||
		r.Y+shape.Height > b.Rows() {
		return p, false
	}
	return r, true
}
