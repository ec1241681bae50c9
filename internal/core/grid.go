package core

// Layer is a double-buffered per-cell array. Components read Current and
// write Next; only the epoch driver calls Commit.
type Layer[T any] struct {
	cur  []T
	next []T
}

// NewLayer allocates both generations for n cells.
func NewLayer[T any](n int) *Layer[T] {
	if n < 0 {
		n = 0
	}
	return &Layer[T]{cur: make([]T, n), next: make([]T, n)}
}

// Current is the committed generation observed by every read this epoch.
func (l *Layer[T]) Current() []T { return l.cur }

// Next is the generation being written this epoch.
func (l *Layer[T]) Next() []T { return l.next }

// Len reports the number of cells in the layer.
func (l *Layer[T]) Len() int { return len(l.cur) }

// Commit copies Next into Current. Next keeps its values, so cells that a
// slower layer skips this epoch carry their state forward unchanged.
func (l *Layer[T]) Commit() { copy(l.cur, l.next) }

// Fill sets every cell of both generations to v.
func (l *Layer[T]) Fill(v T) {
	for i := range l.cur {
		l.cur[i] = v
		l.next[i] = v
	}
}

// Index returns the linear slice index for coordinates (x, y) on a grid of
// width w.
func Index(w, x, y int) int { return y*w + x }

// Coords splits a linear index back into (x, y) for a grid of width w.
func Coords(w, xy int) (int, int) { return xy % w, xy / w }

// Wrap applies toroidal wrapping to v over [0, n).
func Wrap(v, n int) int {
	return (v%n + n) % n
}
