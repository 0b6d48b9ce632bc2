package packing

import (
	"github.com/dargueta/textpack/errors"
	"github.com/dargueta/textpack/symbols"
)

// symbolQueue hands out symbols from a sequence of blocks, unpacking blocks
// only as they're needed.
//
// Whenever fewer than [SymbolsPerGroup] symbols are buffered and there are
// blocks left, the next block is unpacked. Lookahead never needs more than two
// symbols past the current one, so this keeps peeks from running dry anywhere
// except the real end of the data.
type symbolQueue struct {
	pending []symbols.Symbol
	blocks  []Block
}

func newSymbolQueue(blocks []Block) symbolQueue {
	return symbolQueue{
		pending: make([]symbols.Symbol, 0, 2*SymbolsPerGroup),
		blocks:  blocks,
	}
}

// refill unpacks blocks until the buffer holds at least a group's worth of
// symbols or there's nothing left to unpack.
func (queue *symbolQueue) refill() error {
	for len(queue.pending) < SymbolsPerGroup && len(queue.blocks) > 0 {
		group, err := Unpack(queue.blocks[0])
		if err != nil {
			return err
		}
		queue.pending = append(queue.pending, group[:]...)
		queue.blocks = queue.blocks[1:]
	}
	return nil
}

// Empty reports whether every symbol has been consumed.
func (queue *symbolQueue) Empty() bool {
	return len(queue.pending) == 0 && len(queue.blocks) == 0
}

// Pop removes and returns the next symbol. Popping past the end of the data
// fails with [errors.ErrTruncatedSequence].
func (queue *symbolQueue) Pop() (symbols.Symbol, error) {
	err := queue.refill()
	if err != nil {
		return symbols.Space, err
	}
	if len(queue.pending) == 0 {
		return symbols.Space, errors.ErrTruncatedSequence
	}

	next := queue.pending[0]
	queue.pending = queue.pending[1:]
	return next, nil
}

// Peek returns the next symbol without consuming it. The boolean is false if
// there are no symbols left.
func (queue *symbolQueue) Peek() (symbols.Symbol, bool, error) {
	err := queue.refill()
	if err != nil {
		return symbols.Space, false, err
	}
	if len(queue.pending) == 0 {
		return symbols.Space, false, nil
	}
	return queue.pending[0], true, nil
}
