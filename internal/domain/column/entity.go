package column

import "errors"

var (
	ErrInvalidNumber = errors.New("column number must be positive")
)

// Column is a physical dispensing pump. The offered fuel ids come from the
// column-fuel link table and are read-only from this core's perspective;
// the administrative side maintains the links.
type Column struct {
	id           int64
	number       int
	isAvailable  bool
	offeredFuels map[int64]struct{}
}

func NewColumn(id int64, number int, isAvailable bool, offeredFuelIDs []int64) (*Column, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}

	offered := make(map[int64]struct{}, len(offeredFuelIDs))
	for _, fuelID := range offeredFuelIDs {
		offered[fuelID] = struct{}{}
	}

	return &Column{
		id:           id,
		number:       number,
		isAvailable:  isAvailable,
		offeredFuels: offered,
	}, nil
}

func (c *Column) Offers(fuelID int64) bool {
	_, ok := c.offeredFuels[fuelID]
	return ok
}

func (c *Column) OfferedFuelIDs() []int64 {
	ids := make([]int64, 0, len(c.offeredFuels))
	for id := range c.offeredFuels {
		ids = append(ids, id)
	}
	return ids
}

func (c *Column) ID() int64         { return c.id }
func (c *Column) Number() int       { return c.number }
func (c *Column) IsAvailable() bool { return c.isAvailable }
