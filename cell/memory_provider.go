package cell

import "sync"

// MemoryProvider is an in-memory CellProvider.
type MemoryProvider struct {
	mu    sync.RWMutex
	cells map[OutPoint]*memoryCell
}

type memoryCell struct {
	output CellOutput
	data   []byte
	info   *TransactionInfo
	dead   bool
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{cells: map[OutPoint]*memoryCell{}}
}

// Insert registers a live cell, replacing any previous entry.
func (p *MemoryProvider) Insert(outPoint OutPoint, output CellOutput, data []byte, info *TransactionInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cells[outPoint] = &memoryCell{
		output: output,
		data:   append([]byte{}, data...),
		info:   info,
	}
}

// Kill marks a known cell as consumed. It reports whether the cell was known.
func (p *MemoryProvider) Kill(outPoint OutPoint) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.cells[outPoint]
	if !ok {
		return false
	}
	c.dead = true
	return true
}

func (p *MemoryProvider) Cell(outPoint OutPoint, withData bool) CellStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.cells[outPoint]
	if !ok {
		return UnknownCell
	}
	if c.dead {
		return DeadCell
	}
	return LiveCell(NewCellMeta(outPoint, c.output, c.data, c.info, withData))
}
