package canvas

import (
	"errors"

	"github.com/emirpasic/gods/v2/maps/hashmap"
	"github.com/emirpasic/gods/v2/sets/hashset"
	"github.com/emirpasic/gods/v2/sets/treeset"
	"go.uber.org/zap"

	"github.com/liznear/fabric-overlap/model"
)

// ErrFinalized is returned by Ingest once the results of the canvas have been read.
var ErrFinalized = errors.New("canvas: finalized")

type state int

const (
	accepting state = iota
	finalized
)

// Canvas accumulates claims and tracks which cells are claimed more than once.
//
// Canvas is not safe for concurrent use. Claims are expected to be ingested
// one after another by a single caller, and results are read after the whole
// batch is ingested.
type Canvas struct {
	cfg   *Config
	state state

	// cellOwner only remembers the last claim covering each cell. It is not
	// the full history of owners.
	cellOwner           *hashmap.Map[model.Cell, uint32]
	duplicateCells      *hashset.Set[model.Cell]
	duplicateCount      int
	allClaimIDs         *hashset.Set[uint32]
	overlappingClaimIDs *hashset.Set[uint32]
	bounds              *model.Rect
}

func New(opts ...Option) *Canvas {
	config := &Config{
		Logger:         zap.NewNop(),
		FinalizeOnRead: true,
	}
	for _, opt := range opts {
		opt(config)
	}
	return &Canvas{
		cfg:                 config,
		cellOwner:           hashmap.New[model.Cell, uint32](),
		duplicateCells:      hashset.New[model.Cell](),
		allClaimIDs:         hashset.New[uint32](),
		overlappingClaimIDs: hashset.New[uint32](),
	}
}

// Ingest puts the claim on the canvas.
//
// Every cell of the claim already owned by another claim marks both claims as
// overlapping, and the cell as a duplicate. The order in which claims are
// ingested doesn't change the results.
func (c *Canvas) Ingest(claim model.Claim) error {
	if c.state == finalized {
		return ErrFinalized
	}

	c.allClaimIDs.Add(claim.ID)
	claim.Cells(func(cell model.Cell) bool {
		owner, ok := c.cellOwner.Get(cell)
		c.cellOwner.Put(cell, claim.ID)
		if !ok {
			return true
		}
		c.overlappingClaimIDs.Add(owner, claim.ID)
		if !c.duplicateCells.Contains(cell) {
			c.duplicateCells.Add(cell)
			c.duplicateCount++
		}
		return true
	})
	c.bounds = model.Fusion([]*model.Rect{c.bounds, claim.Rect()})

	c.cfg.Logger.Debug("Ingest claim",
		zap.Uint32("id", claim.ID),
		zap.Int("area", claim.Area()),
		zap.Int("duplicates", c.duplicateCount))
	return nil
}

// Finalize stops the canvas from accepting more claims. It is safe to call it more than once.
func (c *Canvas) Finalize() {
	if c.state == finalized {
		return
	}
	c.state = finalized
	c.cfg.Logger.Debug("Finalize canvas",
		zap.Int("claims", c.allClaimIDs.Size()),
		zap.Int("duplicates", c.duplicateCount))
}

func (c *Canvas) Finalized() bool {
	return c.state == finalized
}

// DuplicateCellCount returns the number of cells covered by two or more claims.
func (c *Canvas) DuplicateCellCount() int {
	c.read()
	return c.duplicateCount
}

// NonOverlappingClaimIDs returns, in ascending order, the ids of the claims
// which share no cell with any other claim.
func (c *Canvas) NonOverlappingClaimIDs() []uint32 {
	c.read()
	ids := treeset.New[uint32]()
	for _, id := range c.allClaimIDs.Values() {
		if !c.overlappingClaimIDs.Contains(id) {
			ids.Add(id)
		}
	}
	ret := make([]uint32, 0, ids.Size())
	iter := ids.Iterator()
	for iter.Next() {
		ret = append(ret, iter.Value())
	}
	return ret
}

// ClaimCount returns the number of distinct claim ids ingested.
func (c *Canvas) ClaimCount() int {
	return c.allClaimIDs.Size()
}

// Bounds returns the smallest rectangle containing every ingested claim, or
// nil if no claim covers any cell.
func (c *Canvas) Bounds() *model.Rect {
	if c.bounds == nil {
		return nil
	}
	b := *c.bounds
	return &b
}

func (c *Canvas) read() {
	if c.cfg.FinalizeOnRead {
		c.Finalize()
	}
}
