package tapes

// View is a copied window of the tape around the pointer.
type View struct {
	Position int // pointer relative to the origin
	Pointer  int
	Start    int // tape index of Cells[0]
	Cells    []byte
	Len      int
}

func (t *Tape) View(radius int) View {
	radius = max(radius, 0)
	start := max(t.pointer-radius, 0)
	end := min(t.pointer+radius+1, len(t.cells))
	cells := make([]byte, end-start)
	copy(cells, t.cells[start:end])
	return View{
		Position: t.pointer - t.origin,
		Pointer:  t.pointer,
		Start:    start,
		Cells:    cells,
		Len:      len(t.cells),
	}
}

func (v View) Current() byte {
	return v.Cells[v.Pointer-v.Start]
}

func (v View) TruncatedLeft() bool {
	return v.Start > 0
}

func (v View) TruncatedRight() bool {
	return v.Start+len(v.Cells) < v.Len
}
