package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 32
)

// treeNode is one entry in a rendered file tree.
type treeNode struct {
	name        string
	description string
	isDir       bool
	children    []*treeNode
}

// RenderFileTree renders project files as a tree rooted at rootName.
// files maps slash-separated relative paths to optional descriptions.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, isDir: true}

	for path, desc := range files {
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *treeNode
			for _, c := range current.children {
				if c.name == part {
					child = c
					break
				}
			}
			if child == nil {
				child = &treeNode{name: part, isDir: !isLast}
				current.children = append(current.children, child)
			}
			if isLast {
				child.description = desc
			}
			current = child
		}
	}

	sortTree(root)

	var sb strings.Builder
	sb.WriteString(StyleAction.Render(root.name + "/"))
	sb.WriteString("\n")
	for i, child := range root.children {
		renderNode(&sb, child, "", i == len(root.children)-1)
	}
	return sb.String()
}

// sortTree orders directories first, then alphabetically.
func sortTree(node *treeNode) {
	sort.Slice(node.children, func(i, j int) bool {
		if node.children[i].isDir != node.children[j].isDir {
			return node.children[i].isDir
		}
		return node.children[i].name < node.children[j].name
	})
	for _, child := range node.children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *treeNode, prefix string, isLast bool) {
	connector := treeEdge
	childPrefix := prefix + treeVert
	if isLast {
		connector = treeLast
		childPrefix = prefix + treeSpace
	}

	name := node.name
	if node.isDir {
		name += "/"
	}
	line := prefix + connector + name

	if node.description != "" {
		padding := descriptionColumn - len([]rune(line))
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding) + StyleDim.Render(node.description)
	}

	sb.WriteString(line)
	sb.WriteString("\n")

	for i, child := range node.children {
		renderNode(sb, child, childPrefix, i == len(node.children)-1)
	}
}
