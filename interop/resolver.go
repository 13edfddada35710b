// Package interop materializes cell-model transactions so that they can be
// verified and consumed by the account-model execution layer.
package interop

import (
	"github.com/axonweb3/axon-exec/cell"
	"github.com/axonweb3/axon-exec/protocol"
	"github.com/axonweb3/axon-exec/types"
	"github.com/pkg/errors"
)

var (
	ErrUnknownCell       = errors.New("unknown cell")
	ErrInvalidDummyInput = errors.New("invalid dummy input")
	ErrInvalidDepGroup   = errors.New("invalid dependency group")
)

// ResolveTransaction looks up every input and cell dependency of tx through
// the given provider. An input referring to protocol.DummyInputOutPoint is
// replaced by a synthetic cell built from dummyInput; at most one such input
// is accepted per transaction. Lookups are issued strictly in declaration
// order and the first failure aborts the resolution.
func ResolveTransaction(provider cell.CellProvider, tx *cell.TransactionView, dummyInput *types.InputLock) (*cell.ResolvedTransaction, error) {
	var (
		inputs          = tx.InputPoints()
		deps            = tx.CellDeps()
		resolvedInputs  = make([]*cell.CellMeta, 0, len(inputs))
		resolvedDeps    = make([]*cell.CellMeta, 0, len(deps))
		resolvedGroups  = make([]*cell.CellMeta, 0, len(deps))
		dummyInputFound = false
	)

	for _, outPoint := range inputs {
		if IsDummyOutPoint(outPoint) {
			if dummyInput == nil {
				return nil, errors.Wrap(ErrInvalidDummyInput, "no virtual input supplied")
			}
			if dummyInputFound {
				return nil, errors.Wrap(ErrInvalidDummyInput, "more than one virtual input")
			}
			dummyInputFound = true
			resolvedInputs = append(resolvedInputs, dummyCell(outPoint, dummyInput))
			continue
		}
		meta, err := resolveCell(provider, outPoint)
		if err != nil {
			return nil, err
		}
		resolvedInputs = append(resolvedInputs, meta)
	}

	for _, dep := range deps {
		if dep.DepType != cell.DepGroup {
			meta, err := resolveCell(provider, dep.OutPoint)
			if err != nil {
				return nil, err
			}
			resolvedDeps = append(resolvedDeps, meta)
			continue
		}

		group, err := resolveCell(provider, dep.OutPoint)
		if err != nil {
			return nil, err
		}
		members, err := ParseDepGroupData(group.MemCellData)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidDepGroup, "%v: %v", dep.OutPoint, err)
		}
		for _, member := range members {
			meta, err := resolveCell(provider, member)
			if err != nil {
				return nil, err
			}
			resolvedDeps = append(resolvedDeps, meta)
		}
		resolvedGroups = append(resolvedGroups, group)
	}

	return &cell.ResolvedTransaction{
		Transaction:       tx,
		ResolvedInputs:    resolvedInputs,
		ResolvedCellDeps:  resolvedDeps,
		ResolvedDepGroups: resolvedGroups,
	}, nil
}

func resolveCell(provider cell.CellProvider, outPoint cell.OutPoint) (*cell.CellMeta, error) {
	status := provider.Cell(outPoint, true)
	if !status.IsLive() {
		return nil, errors.Wrapf(ErrUnknownCell, "%v (%v)", outPoint, status.Kind)
	}
	return status.Meta, nil
}

// dummyCell synthesizes the cell of a virtual input. It is not backed by an
// on-chain transaction.
func dummyCell(outPoint cell.OutPoint, lock *types.InputLock) *cell.CellMeta {
	output := cell.CellOutput{
		Capacity: lock.TotalCapacity(),
		Lock:     lock.LockScript(),
	}
	return cell.NewCellMeta(outPoint, output, lock.Data, nil, true)
}

// ParseDepGroupData decodes the content of a dependency group cell. Empty
// content, malformed content and an empty list are all rejected.
func ParseDepGroupData(data []byte) ([]cell.OutPoint, error) {
	if len(data) == 0 {
		return nil, errors.New("data is empty")
	}
	points, err := cell.UnpackOutPointVec(data)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, errors.New("dep group is empty")
	}
	return points, nil
}

// IsDummyOutPoint reports whether the out-point is the virtual input sentinel.
func IsDummyOutPoint(outPoint cell.OutPoint) bool {
	return outPoint == protocol.DummyInputOutPoint
}
