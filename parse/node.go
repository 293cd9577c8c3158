package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/stoik/token"
)

type NodeType int

const (
	EmptyType NodeType = iota
	AtomType
	SubcompoundType
	MultiplierType
	MoleType
)

func (t NodeType) String() string {
	switch t {
	case EmptyType:
		return "Empty"
	case AtomType:
		return "Atom"
	case SubcompoundType:
		return "Subcompound"
	case MultiplierType:
		return "Multiplier"
	case MoleType:
		return "Mole"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Node is a node of a formula syntax tree.
//
// Atom is set for AtomType, Children for SubcompoundType, and Node and Mul
// for MultiplierType and MoleType. Loc is the location of the atom or number
// token an AtomType, MultiplierType or MoleType node was built from; it
// plays no part in Equal.
type Node struct {
	Type     NodeType
	Atom     string
	Children []*Node
	Node     *Node
	Mul      int64
	Loc      token.Loc
}

func Empty() *Node {
	return &Node{Type: EmptyType}
}

func Atom(name string) *Node {
	return &Node{Type: AtomType, Atom: name}
}

func Subcompound(children ...*Node) *Node {
	return &Node{Type: SubcompoundType, Children: children}
}

func Multiplier(n *Node, mul int64) *Node {
	return &Node{Type: MultiplierType, Node: n, Mul: mul}
}

// Mole wraps the root of a formula with its leading coefficient.
func Mole(n *Node, mul int64) *Node {
	return &Node{Type: MoleType, Node: n, Mul: mul}
}

func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type {
		return false
	}
	switch n.Type {
	case AtomType:
		return n.Atom == o.Atom
	case SubcompoundType:
		if len(n.Children) != len(o.Children) {
			return false
		}
		for i := range n.Children {
			if !n.Children[i].Equal(o.Children[i]) {
				return false
			}
		}
		return true
	case MultiplierType, MoleType:
		return n.Mul == o.Mul && n.Node.Equal(o.Node)
	default:
		return true
	}
}

func (n *Node) String() string {
	b := &strings.Builder{}
	n.write(b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	switch n.Type {
	case AtomType:
		fmt.Fprintf(b, "Atom(%s)", n.Atom)
	case SubcompoundType:
		b.WriteString("Subcompound[")
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			c.write(b)
		}
		b.WriteString("]")
	case MultiplierType, MoleType:
		b.WriteString(n.Type.String())
		b.WriteString("{")
		n.Node.write(b)
		fmt.Fprintf(b, ", %d}", n.Mul)
	default:
		b.WriteString(n.Type.String())
	}
}
