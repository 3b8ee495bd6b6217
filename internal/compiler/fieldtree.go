package compiler

import (
	"fmt"
	"strings"

	"github.com/vk/typecodec/internal/descriptor"
)

// fieldTree collects resolved parameters under their dotted paths and
// flattens them into one record descriptor.
type fieldTree struct {
	order []string
	nodes map[string]*fieldNode
}

// fieldNode is either a leaf holding a descriptor or a nested tree. path is
// the parameter that created the node, for collision messages.
type fieldNode struct {
	path string
	leaf string
	sub  *fieldTree
}

type collisionError struct {
	path, existing string
}

func (e *collisionError) Error() string {
	if e.path == e.existing {
		return fmt.Sprintf("parameter %s is declared more than once", e.path)
	}
	return fmt.Sprintf("parameter %s collides with parameter %s", e.path, e.existing)
}

func newFieldTree() *fieldTree {
	return &fieldTree{nodes: map[string]*fieldNode{}}
}

// insert attaches desc at the dotted path. A path that would turn an existing
// leaf into a record, or a record into a leaf, is rejected and leaves the
// tree unchanged.
func (t *fieldTree) insert(path, desc string) error {
	segments := strings.Split(path, ".")
	if err := t.check(segments, path); err != nil {
		return err
	}
	t.attach(segments, path, desc)
	return nil
}

func (t *fieldTree) check(segments []string, path string) error {
	n, ok := t.nodes[segments[0]]
	switch {
	case !ok:
		return nil
	case len(segments) == 1 || n.sub == nil:
		return &collisionError{path: path, existing: n.path}
	default:
		return n.sub.check(segments[1:], path)
	}
}

func (t *fieldTree) attach(segments []string, path, desc string) {
	name := segments[0]
	if len(segments) == 1 {
		t.add(name, &fieldNode{path: path, leaf: desc})
		return
	}
	n, ok := t.nodes[name]
	if !ok {
		n = &fieldNode{path: path, sub: newFieldTree()}
		t.add(name, n)
	}
	n.sub.attach(segments[1:], path, desc)
}

func (t *fieldTree) add(name string, n *fieldNode) {
	t.order = append(t.order, name)
	t.nodes[name] = n
}

// descriptor flattens the tree. Fields appear in the order their first
// parameter was declared.
func (t *fieldTree) descriptor() string {
	fields := make([]descriptor.Field[string], 0, len(t.order))
	for _, name := range t.order {
		n := t.nodes[name]
		value := n.leaf
		if n.sub != nil {
			value = n.sub.descriptor()
		}
		fields = append(fields, descriptor.Field[string]{Name: name, Value: value})
	}
	return descriptor.RecordOf(fields...)
}
