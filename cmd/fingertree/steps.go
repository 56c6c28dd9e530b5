package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/fingertree"
)

var (
	stepColor  = color.New(color.FgHiBlack)
	treeColor  = color.New(color.FgCyan)
	labelColor = color.New(color.Bold)
)

// build inserts 1…n into an empty tree, one by one, and writes every intermediate
// tree to w. If front is set, values n…1 are prepended, otherwise 1…n are appended.
// Either way, the resulting sequence is 1…n.
func build(w io.Writer, n int, front bool) fingertree.Tree[int] {
	tree := fingertree.Empty[int]()
	for i := 1; i <= n; i++ {
		if front {
			tree = tree.Prepend(n + 1 - i)
		} else {
			tree = tree.Append(i)
		}
		fmt.Fprintf(w, "%s %s\n", stepColor.Sprintf("%4d", i), treeColor.Sprint(tree))
	}
	return tree
}

// bulk creates a tree of 1…n in one go and writes it to w.
func bulk(w io.Writer, n int) fingertree.Tree[int] {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	tree := fingertree.Of(values...)
	fmt.Fprintf(w, "%s %s\n", stepColor.Sprintf("%4d", n), treeColor.Sprint(tree))
	return tree
}

func summarize(w io.Writer, tree fingertree.Tree[int], dump bool) {
	sum := tree.Reduce(func(a, b int) int { return a + b }, 0)
	fmt.Fprintf(w, "%s %d\n", labelColor.Sprint("size: "), tree.Len())
	fmt.Fprintf(w, "%s %d\n", labelColor.Sprint("depth:"), tree.Depth())
	fmt.Fprintf(w, "%s %d\n", labelColor.Sprint("sum:  "), sum)
	if dump {
		fmt.Fprintln(w, fingertree.Dump(tree))
	}
}
