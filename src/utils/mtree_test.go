package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowTree(t *testing.T) {
	root := &Node{}
	root.LTree([]string{"data/a.txt", "data/b.txt", "c.txt"})

	var buf bytes.Buffer
	root.ShowTree(&buf, "")
	assert.Equal(t, ".\n"+
		"├── data\n"+
		"│   ├── a.txt\n"+
		"│   └── b.txt\n"+
		"└── c.txt\n", buf.String())
}

func TestPathReusesChildren(t *testing.T) {
	root := &Node{Name: "runs"}
	a := root.Path("x/y")
	b := root.Path("/x//y/")
	require.Same(t, a, b)
	assert.Len(t, root.Children, 1)
	assert.Equal(t, 2, a.Level)
	assert.Equal(t, "x", a.Parent.Name)
}

func TestAddLinksSiblings(t *testing.T) {
	root := &Node{}
	first := root.Add("first")
	second := root.Add("second")
	assert.Same(t, second, first.Right)
	assert.Same(t, first, second.Left)
	assert.Nil(t, second.Right)
}
