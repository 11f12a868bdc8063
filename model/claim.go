package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// claimFields is the number of integers a claim line must hold:
// id, left, top, width and height.
const claimFields = 5

// ErrMalformedClaim is matched by every error returned from Parse.
var ErrMalformedClaim = errors.New("malformed claim line")

// Cell is one unit square of the fabric.
type Cell struct {
	X uint32
	Y uint32
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Claim is a rectangle of fabric claimed by an elf.
//
// It covers the cells {(x, y) : Left <= x < Left+Width, Top <= y < Top+Height}.
type Claim struct {
	ID     uint32
	Left   uint32
	Top    uint32
	Width  uint32
	Height uint32
}

func NewClaim(id, left, top, width, height uint32) Claim {
	return Claim{
		ID:     id,
		Left:   left,
		Top:    top,
		Width:  width,
		Height: height,
	}
}

// Area returns the number of cells covered by the claim.
func (c Claim) Area() int {
	return int(c.Width) * int(c.Height)
}

// Rect returns the half-open rectangle covered by the claim.
func (c Claim) Rect() *Rect {
	return NewRect(c.Left, c.Top, c.Left+c.Width, c.Top+c.Height)
}

// Cells visits every cell of the claim, row by row. It stops as soon as fn returns false.
func (c Claim) Cells(fn func(Cell) bool) {
	for y := c.Top; y < c.Top+c.Height; y++ {
		for x := c.Left; x < c.Left+c.Width; x++ {
			if !fn(Cell{X: x, Y: y}) {
				return
			}
		}
	}
}

// String renders the claim in the input format, so Parse(c.String()) == c.
func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.ID, c.Left, c.Top, c.Width, c.Height)
}

// ParseError describes a line which can't be turned into a Claim.
type ParseError struct {
	Line  string
	Count int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v %q: %v", ErrMalformedClaim, e.Line, e.Err)
	}
	return fmt.Sprintf("%v %q: got %d integers, want %d", ErrMalformedClaim, e.Line, e.Count, claimFields)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedClaim
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse turns a line like "#1 @ 1,3: 4x4" into a Claim.
//
// Any run of non-digit characters separates two integers, so only the five
// integers and their order matter. A line holding more or fewer than five
// integers is rejected.
func Parse(line string) (Claim, error) {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if len(tokens) != claimFields {
		return Claim{}, &ParseError{Line: line, Count: len(tokens)}
	}

	var fields [claimFields]uint32
	for i, tok := range tokens {
		n, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return Claim{}, &ParseError{Line: line, Count: len(tokens), Err: err}
		}
		fields[i] = uint32(n)
	}
	return NewClaim(fields[0], fields[1], fields[2], fields[3], fields[4]), nil
}
