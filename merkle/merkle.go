// Package merkle combines ordered lists of hashes into a single root.
package merkle

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Tree is a binary merkle tree over a list of leaf hashes. Inner nodes are
// keccak256(left || right); an odd node at the end of a level is promoted to
// the next level unchanged.
type Tree struct {
	levels [][]common.Hash
}

// FromHashes builds the tree over the given leaves, keeping their order.
func FromHashes(hashes []common.Hash) *Tree {
	if len(hashes) == 0 {
		return &Tree{}
	}
	level := append([]common.Hash{}, hashes...)
	levels := [][]common.Hash{level}
	for len(level) > 1 {
		next := make([]common.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			next = append(next, merge(level[i], level[i+1]))
		}
		levels = append(levels, next)
		level = next
	}
	return &Tree{levels: levels}
}

func merge(left, right common.Hash) common.Hash {
	return crypto.Keccak256Hash(left[:], right[:])
}

// RootHash returns the root of the tree. A tree without leaves has no root.
func (t *Tree) RootHash() (common.Hash, bool) {
	if len(t.levels) == 0 {
		return common.Hash{}, false
	}
	return t.levels[len(t.levels)-1][0], true
}

// Len returns the number of leaves.
func (t *Tree) Len() int {
	if len(t.levels) == 0 {
		return 0
	}
	return len(t.levels[0])
}

// Proof lists the sibling hashes needed to recompute the root from the leaf
// at the given index, bottom up. Levels where the node is promoted without a
// sibling contribute no entry.
func (t *Tree) Proof(index int) ([]ProofNode, bool) {
	if index < 0 || index >= t.Len() {
		return nil, false
	}
	var proof []ProofNode
	for _, level := range t.levels[:len(t.levels)-1] {
		sibling := index ^ 1
		if sibling < len(level) {
			proof = append(proof, ProofNode{Hash: level[sibling], Left: sibling < index})
		}
		index /= 2
	}
	return proof, true
}

// ProofNode is a sibling on the path from a leaf to the root. Left is set if
// the sibling is the left operand of the merge.
type ProofNode struct {
	Hash common.Hash
	Left bool
}

// VerifyProof checks that leaf and proof lead to the given root.
func VerifyProof(root, leaf common.Hash, proof []ProofNode) bool {
	cur := leaf
	for _, node := range proof {
		if node.Left {
			cur = merge(node.Hash, cur)
		} else {
			cur = merge(cur, node.Hash)
		}
	}
	return cur == root
}
