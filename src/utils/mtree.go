package utils

import (
	"fmt"
	"io"
	"strings"
)

const (
	pipe     = "│   "
	tee      = "├── "
	lasttee  = "└── "
	rootName = "."
)

type Node struct {
	Level    int
	Name     string
	Children []*Node
	Parent   *Node
	Left     *Node
	Right    *Node
}

// Add appends a child named name and links it to its left sibling.
func (node *Node) Add(name string) *Node {
	var pre *Node
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}

	child := &Node{
		Level:  node.Level + 1,
		Name:   name,
		Parent: node,
		Left:   pre,
	}

	if pre != nil {
		pre.Right = child
	}

	node.Children = append(node.Children, child)
	return child
}

// ShowTree writes the tree to w, using prefix to determine the indentation and
// the tee or lasttee characters to mark whether a branch continues or ends.
func (node *Node) ShowTree(w io.Writer, prefix string) {
	if node.Level == 0 {
		if node.Name != "" {
			fmt.Fprintln(w, node.Name)
		} else {
			fmt.Fprintln(w, rootName)
		}
	} else {
		subFix := lasttee
		if node.Right != nil {
			subFix = tee
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, subFix, node.Name)

		if node.Right != nil {
			prefix += pipe
		} else {
			prefix += "    "
		}
	}

	for _, child := range node.Children {
		child.ShowTree(w, prefix)
	}
}

// LTree builds nested children from slash separated paths, reusing the
// children that already exist.
func (node *Node) LTree(paths []string) {
	for _, path := range paths {
		node.Path(path)
	}
}

// Path returns the node for a slash separated path below node, creating the
// missing levels.
func (node *Node) Path(path string) *Node {
	current := node
	for _, name := range strings.Split(path, "/") {
		if name == "" {
			continue
		}
		current = current.GetChild(name)
	}
	return current
}

func (node *Node) GetChild(name string) *Node {
	for _, child := range node.Children {
		if child.Name == name {
			return child
		}
	}
	return node.Add(name)
}
