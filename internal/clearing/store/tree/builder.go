package tree

import (
	"clearview/internal/clearing/ports"
	id "clearview/pkg/domain"
)

// Node describes one entry of an upload listing. Items are numbered by the
// caller; Children are visited in the given order.
type Node struct {
	ItemID   id.ItemID `yaml:"item"`
	Name     string    `yaml:"name"`
	Children []Node    `yaml:"children"`
}

// Build assigns nested-set bounds to root and its descendants and inserts
// them into s.
func (s *InMemory) Build(upload id.UploadID, root Node) error {
	var bounds []ports.TreeBounds
	next := int64(1)
	var walk func(n Node)
	walk = func(n Node) {
		left := next
		next++
		at := len(bounds)
		bounds = append(bounds, ports.TreeBounds{ItemID: n.ItemID, UploadID: upload, Left: left})
		for _, c := range n.Children {
			walk(c)
		}
		bounds[at].Right = next
		next++
	}
	walk(root)

	for _, b := range bounds {
		if err := s.Insert(b); err != nil {
			return err
		}
	}
	return nil
}
