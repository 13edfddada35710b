package cell

//go:generate mockgen -source provider.go -destination cell_provider_mocks.go -package cell

import "fmt"

// StatusKind is the liveness classification of a cell lookup.
type StatusKind byte

const (
	Unknown StatusKind = iota
	Live
	Dead
)

func (k StatusKind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Live:
		return "live"
	case Dead:
		return "dead"
	}
	return fmt.Sprintf("StatusKind(%d)", byte(k))
}

// CellStatus is the result of a cell lookup. Meta is only set for live cells.
type CellStatus struct {
	Kind StatusKind
	Meta *CellMeta
}

// LiveCell creates the status of a live cell.
func LiveCell(meta *CellMeta) CellStatus {
	return CellStatus{Kind: Live, Meta: meta}
}

var (
	UnknownCell = CellStatus{Kind: Unknown}
	DeadCell    = CellStatus{Kind: Dead}
)

func (s CellStatus) IsLive() bool {
	return s.Kind == Live && s.Meta != nil
}

// CellProvider resolves out-points to cells. Implementations must be safe
// for concurrent use since a provider may serve several resolutions at once.
type CellProvider interface {
	// Cell looks up the given out-point. If withData is set, the returned
	// meta data of a live cell carries the cell content and its hash.
	Cell(outPoint OutPoint, withData bool) CellStatus
}
