package core

// Size describes the dimensions of a surface or grid.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// CeilDiv returns ceil(n / d) for positive d.
func CeilDiv(n, d int) int {
	return (n + d - 1) / d
}
