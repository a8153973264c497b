package booking

import "hotel-inventory/internal/pkg/errs"

var ErrNegativeOccupancy = errs.Mark(errs.New("occupancy counts cannot be negative"), errs.ErrInvalidArgument)

type Occupancy struct {
	adults   int
	children int
	infants  int
}

func NewOccupancy(adults, children, infants int) (Occupancy, error) {
	if adults < 0 || children < 0 || infants < 0 {
		return Occupancy{}, ErrNegativeOccupancy
	}
	return Occupancy{adults: adults, children: children, infants: infants}, nil
}

func (o Occupancy) Adults() int   { return o.adults }
func (o Occupancy) Children() int { return o.children }
func (o Occupancy) Infants() int  { return o.infants }

// lineDefault is the occupancy a new line inherits: at least one adult, no children.
func (o Occupancy) lineDefault() Occupancy {
	return Occupancy{adults: max(1, o.adults)}
}
