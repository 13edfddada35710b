package cell

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

var cellPrefix = []byte("cell")

// CellStore is a CellProvider persisting cells in a LevelDB instance.
type CellStore struct {
	db *leveldb.DB
}

type storedCell struct {
	Output CellOutput
	Data   []byte
	Info   *TransactionInfo `rlp:"nil"`
	Dead   bool
}

// OpenCellStore opens (or creates) the cell store in the given directory.
func OpenCellStore(path string, readOnly bool) (*CellStore, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{ReadOnly: readOnly})
	if err != nil {
		return nil, fmt.Errorf("cannot open cell db %v; %v", path, err)
	}
	return &CellStore{db: db}, nil
}

func cellKey(outPoint OutPoint) []byte {
	return append(append([]byte{}, cellPrefix...), outPoint.Pack()...)
}

// Put stores a live cell.
func (s *CellStore) Put(outPoint OutPoint, output CellOutput, data []byte, info *TransactionInfo) error {
	return s.write(outPoint, &storedCell{Output: output, Data: data, Info: info})
}

// Kill marks a stored cell as consumed.
func (s *CellStore) Kill(outPoint OutPoint) error {
	rec, err := s.read(outPoint)
	if err != nil {
		return err
	}
	rec.Dead = true
	return s.write(outPoint, rec)
}

func (s *CellStore) write(outPoint OutPoint, rec *storedCell) error {
	enc, err := rlp.EncodeToBytes(rec)
	if err != nil {
		return fmt.Errorf("cannot encode cell %v; %v", outPoint, err)
	}
	if err = s.db.Put(cellKey(outPoint), enc, nil); err != nil {
		return fmt.Errorf("cannot store cell %v; %v", outPoint, err)
	}
	return nil
}

func (s *CellStore) read(outPoint OutPoint) (*storedCell, error) {
	enc, err := s.db.Get(cellKey(outPoint), nil)
	if err != nil {
		return nil, err
	}
	rec := new(storedCell)
	if err = rlp.DecodeBytes(enc, rec); err != nil {
		return nil, fmt.Errorf("corrupted cell record %v; %v", outPoint, err)
	}
	return rec, nil
}

// Cell reports missing as well as unreadable records as unknown.
func (s *CellStore) Cell(outPoint OutPoint, withData bool) CellStatus {
	rec, err := s.read(outPoint)
	if err != nil {
		return UnknownCell
	}
	if rec.Dead {
		return DeadCell
	}
	return LiveCell(NewCellMeta(outPoint, rec.Output, rec.Data, rec.Info, withData))
}

// Has reports whether the store holds a record, live or dead, for the out-point.
func (s *CellStore) Has(outPoint OutPoint) (bool, error) {
	_, err := s.read(outPoint)
	if errors.Is(err, leveldb.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *CellStore) Close() error {
	return s.db.Close()
}
