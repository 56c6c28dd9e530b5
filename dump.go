package fingertree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump returns a multi-line rendering of the nesting structure of t, intended for
// debugging. Each level of the tree is shown as a branch, with its digits as leaves:
//
//     Tree(len=6, depth=2)
//     .
//     └── deep
//         ├── [1,2]
//         ├── single((3,4,5))
//         └── [6]
//
func Dump[T any](t Tree[T]) string {
	header := fmt.Sprintf("Tree(len=%d, depth=%d)\n", t.Len(), t.Depth())
	printer := tp.New()
	dumpLevel(printer, t.tree())
	return header + printer.String()
}

func dumpLevel[T any](printer tp.Tree, ft fingerTree[T]) {
	switch x := ft.(type) {
	case empty[T], single[T]:
		printer.AddNode(x.describe())
	case deep[T]:
		branch := printer.AddBranch("deep")
		branch.AddNode(x.left.describe())
		dumpLevel(branch, x.middle)
		branch.AddNode(x.right.describe())
	default:
		assertThat(false, "unknown tree shape %T", ft)
	}
}
