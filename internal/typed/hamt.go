package typed

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Persistent hash array mapped trie backing Context. Nodes are copied on
// the way down during put, so existing contexts keep observing their own
// root. Keys are UUIDs; the 32-bit hash is taken straight from the leading
// identity bytes, which are uniformly random.

const (
	hamtBits = 5
	hamtSize = 1 << hamtBits
	hamtMask = hamtSize - 1
)

type hamtNode struct {
	bitmap uint32 // which branch indices are populated
	nodes  []any  // hamtEntry or *hamtNode
}

type hamtEntry struct {
	hash uint32
	key  uuid.UUID
	ty   Type
}

func hashID(id uuid.UUID) uint32 {
	return binary.BigEndian.Uint32(id[:4])
}

func (n *hamtNode) get(hash uint32, key uuid.UUID, shift uint) (Type, bool) {
	if shift >= 32 {
		// Collision bucket search.
		for _, node := range n.nodes {
			if entry, ok := node.(hamtEntry); ok && entry.key == key {
				return entry.ty, true
			}
		}
		return nil, false
	}

	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx
	if n.bitmap&bit == 0 {
		return nil, false
	}

	pos := popcount(n.bitmap & (bit - 1))
	switch v := n.nodes[pos].(type) {
	case hamtEntry:
		if v.key == key {
			return v.ty, true
		}
		return nil, false
	case *hamtNode:
		return v.get(hash, key, shift+hamtBits)
	}
	return nil, false
}

func (n *hamtNode) put(hash uint32, key uuid.UUID, ty Type, shift uint) (*hamtNode, bool) {
	// Hash bits exhausted: store entries side by side in a collision bucket.
	if shift >= 32 {
		newNode := n.clone()
		for i, node := range newNode.nodes {
			if entry, ok := node.(hamtEntry); ok && entry.key == key {
				newNode.nodes[i] = hamtEntry{hash: hash, key: key, ty: ty}
				return newNode, false
			}
		}
		newNode.nodes = append(newNode.nodes, hamtEntry{hash: hash, key: key, ty: ty})
		return newNode, true
	}

	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx
	newNode := n.clone()

	if n.bitmap&bit == 0 {
		newNode.bitmap |= bit
		pos := popcount(newNode.bitmap & (bit - 1))
		newNode.nodes = append(newNode.nodes, nil)
		copy(newNode.nodes[pos+1:], newNode.nodes[pos:])
		newNode.nodes[pos] = hamtEntry{hash: hash, key: key, ty: ty}
		return newNode, true
	}

	pos := popcount(n.bitmap & (bit - 1))
	switch v := newNode.nodes[pos].(type) {
	case hamtEntry:
		if v.key == key {
			newNode.nodes[pos] = hamtEntry{hash: hash, key: key, ty: ty}
			return newNode, false
		}
		// Partial hash collision: push both entries one level down.
		child := &hamtNode{}
		child, _ = child.put(v.hash, v.key, v.ty, shift+hamtBits)
		child, _ = child.put(hash, key, ty, shift+hamtBits)
		newNode.nodes[pos] = child
		return newNode, true
	case *hamtNode:
		newChild, added := v.put(hash, key, ty, shift+hamtBits)
		newNode.nodes[pos] = newChild
		return newNode, added
	}
	return newNode, false
}

func (n *hamtNode) clone() *hamtNode {
	c := &hamtNode{
		bitmap: n.bitmap,
		nodes:  make([]any, len(n.nodes)),
	}
	copy(c.nodes, n.nodes)
	return c
}

func popcount(x uint32) int {
	x = x - ((x >> 1) & 0x55555555)
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f
	x = x + (x >> 8)
	x = x + (x >> 16)
	return int(x & 0x3f)
}
