package emit

import (
	"fmt"
	"strings"

	"github.com/nodetree/boolrank/rgs"
	"github.com/nodetree/boolrank/shape"
)

// opNames maps an operator code (0=AND, 1=OR, 2=XOR) to its spelling in
// the expression grammar.
var opNames = [3]string{"AND", "OR", "XOR"}

// Emit renders sh as a prefix-notation expression string, consuming ops in
// preorder at each Binary node and r in preorder at each Leaf. len(ops)
// must equal sh.BinaryCount() and len(r) must equal sh.LeafCount().
func Emit(sh *shape.Shape, ops []int, r rgs.RGS) (string, error) {
	if len(ops) != sh.BinaryCount() {
		return "", fmt.Errorf("%w: %d operators for %d binary nodes", ErrOperator, len(ops), sh.BinaryCount())
	}
	if len(r) != sh.LeafCount() {
		return "", fmt.Errorf("emit: %d labels for %d leaves", len(r), sh.LeafCount())
	}

	var b strings.Builder
	opIdx, leafIdx := 0, 0
	if err := writeNode(&b, sh, ops, r, &opIdx, &leafIdx); err != nil {
		return "", err
	}

	return b.String(), nil
}

func writeNode(b *strings.Builder, sh *shape.Shape, ops []int, r rgs.RGS, opIdx, leafIdx *int) error {
	switch sh.Root() {
	case shape.Leaf:
		b.WriteString(VarName(r[*leafIdx]))
		*leafIdx++

		return nil
	case shape.Unary:
		b.WriteString("NOT(")
		if err := writeNode(b, sh.Left(), ops, r, opIdx, leafIdx); err != nil {
			return err
		}
		b.WriteByte(')')

		return nil
	case shape.Binary:
		op := ops[*opIdx]
		*opIdx++
		if op < 0 || op > 2 {
			return fmt.Errorf("%w: %d", ErrOperator, op)
		}
		b.WriteString(opNames[op])
		b.WriteByte('(')
		if err := writeNode(b, sh.Left(), ops, r, opIdx, leafIdx); err != nil {
			return err
		}
		b.WriteByte(',')
		if err := writeNode(b, sh.Right(), ops, r, opIdx, leafIdx); err != nil {
			return err
		}
		b.WriteByte(')')

		return nil
	default:
		return fmt.Errorf("emit: unknown node kind %v", sh.Root())
	}
}
