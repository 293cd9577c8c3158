package molecule

import (
	"container/list"

	"github.com/signadot/stoik/debug"
	"github.com/signadot/stoik/parse"
	"github.com/signadot/stoik/token"
)

type queueItem struct {
	node *parse.Node
	mul  int64
}

// FromTree reduces the syntax tree rooted at root. A root MoleType node
// sets the mole count of the result.
//
// Reduction uses a work queue rather than recursion. Multiplied nodes are
// pushed to the front of the queue so that they are reduced before the
// siblings queued after them.
func FromTree(root *parse.Node) (*Molecule, error) {
	m := New()
	switch root.Type {
	case parse.MoleType:
		m.Moles = root.Mul
		root = root.Node
	case parse.EmptyType:
		return nil, ErrEmptyMolecule
	}

	q := list.New()
	q.PushBack(queueItem{node: root, mul: 1})
	for q.Len() != 0 {
		it := q.Remove(q.Front()).(queueItem)
		if debug.Reduce() {
			debug.Logf("reduce %s x%d\n", it.node, it.mul)
		}
		switch it.node.Type {
		case parse.SubcompoundType:
			for _, c := range it.node.Children {
				q.PushBack(queueItem{node: c, mul: it.mul})
			}
		case parse.MultiplierType:
			mul, ok := MulCount(it.node.Mul, it.mul)
			if !ok {
				return nil, token.NewLocErr(ErrCountRange, it.node.Loc)
			}
			q.PushFront(queueItem{node: it.node.Node, mul: mul})
		case parse.AtomType:
			if err := m.IncreaseAtom(it.node.Atom, it.mul); err != nil {
				return nil, token.NewLocErr(err, it.node.Loc)
			}
		case parse.EmptyType:
		default:
			return nil, &InvalidNodeErr{Node: it.node, Molecule: m}
		}
	}
	return m, nil
}
