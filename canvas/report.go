package canvas

import (
	"strconv"
	"strings"

	"github.com/liznear/fabric-overlap/model"
)

// Report is a snapshot of the results of a canvas.
type Report struct {
	DuplicateCells int         `yaml:"duplicate_cells"`
	NonOverlapping []uint32    `yaml:"non_overlapping"`
	Claims         int         `yaml:"claims"`
	Bounds         *model.Rect `yaml:"bounds,omitempty"`
}

// Report reads all results of the canvas at once.
func (c *Canvas) Report() Report {
	return Report{
		DuplicateCells: c.DuplicateCellCount(),
		NonOverlapping: c.NonOverlappingClaimIDs(),
		Claims:         c.ClaimCount(),
		Bounds:         c.Bounds(),
	}
}

func (r Report) String() string {
	ids := make([]string, 0, len(r.NonOverlapping))
	for _, id := range r.NonOverlapping {
		ids = append(ids, strconv.FormatUint(uint64(id), 10))
	}
	sb := strings.Builder{}
	sb.WriteString("Canvas with ")
	sb.WriteString(strconv.Itoa(r.DuplicateCells))
	sb.WriteString(" covered more than once square inches\n")
	sb.WriteString("fabrics with no recovered square inches: #")
	sb.WriteString(strings.Join(ids, ", "))
	return sb.String()
}
