package model

import "fmt"

// Rect is a half-open rectangle [MinX, MaxX) x [MinY, MaxY) on the fabric.
type Rect struct {
	MinX uint32 `yaml:"min_x"`
	MinY uint32 `yaml:"min_y"`
	MaxX uint32 `yaml:"max_x"`
	MaxY uint32 `yaml:"max_y"`
}

func NewRect(minX, minY, maxX, maxY uint32) *Rect {
	return &Rect{minX, minY, maxX, maxY}
}

// Empty reports whether the rectangle covers no cell.
func (r *Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

func (r *Rect) Width() uint32 {
	if r.Empty() {
		return 0
	}
	return r.MaxX - r.MinX
}

func (r *Rect) Height() uint32 {
	if r.Empty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Fusion returns the smallest rectangle containing all the non-empty rects.
// It returns nil if there is none.
func Fusion(rects []*Rect) *Rect {
	var ret *Rect
	for _, r := range rects {
		if r == nil || r.Empty() {
			continue
		}
		if ret == nil {
			ret = &Rect{r.MinX, r.MinY, r.MaxX, r.MaxY}
			continue
		}
		ret.MinX = min(ret.MinX, r.MinX)
		ret.MinY = min(ret.MinY, r.MinY)
		ret.MaxX = max(ret.MaxX, r.MaxX)
		ret.MaxY = max(ret.MaxY, r.MaxY)
	}
	return ret
}

// HasOverlap reports whether r1 and r2 share at least one cell.
func HasOverlap(r1, r2 *Rect) bool {
	if r1.Empty() || r2.Empty() {
		return false
	}
	noOverlap := r1.MaxX <= r2.MinX || r2.MaxX <= r1.MinX ||
		r1.MaxY <= r2.MinY || r2.MaxY <= r1.MinY
	return !noOverlap
}

func (r *Rect) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.MinX, r.MaxX, r.MinY, r.MaxY)
}
