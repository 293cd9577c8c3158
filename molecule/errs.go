package molecule

import (
	"errors"
	"fmt"

	"github.com/signadot/stoik/parse"
)

var (
	ErrEmptyMolecule = errors.New("cannot have an empty molecule")
	ErrInvalidNode   = errors.New("invalid syntax node")
	ErrCountRange    = errors.New("atom count out of range")
)

// InvalidNodeErr reports a node which cannot occur where it was found,
// along with the molecule reduced up to that point.
type InvalidNodeErr struct {
	Node     *parse.Node
	Molecule *Molecule
}

func (e *InvalidNodeErr) Unwrap() error {
	return ErrInvalidNode
}

func (e *InvalidNodeErr) Error() string {
	return fmt.Sprintf("%s %s. molecule: %s", ErrInvalidNode.Error(), e.Node, e.Molecule)
}
