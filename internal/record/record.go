package record

import (
	"errors"
	"fmt"
)

var (
	// ErrChildNotFound indicates that a required child is missing from a group
	ErrChildNotFound = errors.New("child not found")

	// ErrMissingID indicates that a record carries no id
	ErrMissingID = errors.New("record has no id")

	// ErrMissingType indicates that a record carries no type
	ErrMissingType = errors.New("record has no type")

	// ErrEmptyLink indicates a link without a linked record id
	ErrEmptyLink = errors.New("link has no linked record id")
)

// Child is an element of a Group: an *Atomic, a *Group or a *Link
type Child interface {
	NameInData() string
}

// Atomic is a named leaf holding a single string value
type Atomic struct {
	Name  string
	Value string
}

// NameInData returns the name of the atomic
func (a *Atomic) NameInData() string { return a.Name }

// Link is a named reference to another record by (type, id)
type Link struct {
	Name       string
	LinkedType string
	LinkedID   string
}

// NameInData returns the name of the link
func (l *Link) NameInData() string { return l.Name }

// Group is a named, ordered container of children.
// A top level group is a record and additionally carries Type and ID.
type Group struct {
	Name     string
	Type     string
	ID       string
	Children []Child
}

// NameInData returns the name of the group
func (g *Group) NameInData() string { return g.Name }

// NewRecord creates a record group of the given type and id.
// The group name equals the record type.
func NewRecord(recordType, id string, children ...Child) *Group {
	return &Group{
		Name:     recordType,
		Type:     recordType,
		ID:       id,
		Children: children,
	}
}

// NewGroup creates a nested group
func NewGroup(name string, children ...Child) *Group {
	return &Group{Name: name, Children: children}
}

// NewAtomic creates an atomic child
func NewAtomic(name, value string) *Atomic {
	return &Atomic{Name: name, Value: value}
}

// NewLink creates a link child pointing at recordType/id
func NewLink(name, linkedType, linkedID string) *Link {
	return &Link{Name: name, LinkedType: linkedType, LinkedID: linkedID}
}

// AddChild appends a child to the group
func (g *Group) AddChild(child Child) {
	g.Children = append(g.Children, child)
}

// RecordID returns the id of the record.
// Returns ErrMissingID if the group has no id.
func (g *Group) RecordID() (string, error) {
	if g == nil || g.ID == "" {
		return "", ErrMissingID
	}
	return g.ID, nil
}

// RecordType returns the type of the record.
// Returns ErrMissingType if the group has no type.
func (g *Group) RecordType() (string, error) {
	if g == nil || g.Type == "" {
		return "", ErrMissingType
	}
	return g.Type, nil
}

// ContainsChild reports whether any child has the given name
func (g *Group) ContainsChild(name string) bool {
	for _, child := range g.Children {
		if child.NameInData() == name {
			return true
		}
	}
	return false
}

// AtomicValue returns the value of the first atomic with the given name
func (g *Group) AtomicValue(name string) (string, bool) {
	for _, child := range g.Children {
		if atomic, ok := child.(*Atomic); ok && atomic.Name == name {
			return atomic.Value, true
		}
	}
	return "", false
}

// FirstAtomicValue returns the value of the first atomic with the given name.
// Returns ErrChildNotFound if there is no such atomic.
func (g *Group) FirstAtomicValue(name string) (string, error) {
	value, ok := g.AtomicValue(name)
	if !ok {
		return "", fmt.Errorf("%w: atomic %q in %q", ErrChildNotFound, name, g.Name)
	}
	return value, nil
}

// Groups returns all nested groups with the given name.
// Returns an empty slice if none found.
func (g *Group) Groups(name string) []*Group {
	groups := []*Group{}
	for _, child := range g.Children {
		if group, ok := child.(*Group); ok && group.Name == name {
			groups = append(groups, group)
		}
	}
	return groups
}

// FirstGroup returns the first nested group with the given name.
// Returns ErrChildNotFound if there is no such group.
func (g *Group) FirstGroup(name string) (*Group, error) {
	for _, child := range g.Children {
		if group, ok := child.(*Group); ok && group.Name == name {
			return group, nil
		}
	}
	return nil, fmt.Errorf("%w: group %q in %q", ErrChildNotFound, name, g.Name)
}

// ContainsLink reports whether the group has a link child with the given name
func (g *Group) ContainsLink(name string) bool {
	_, err := g.FirstLink(name)
	return err == nil
}

// FirstLink returns the first link child with the given name.
// Returns ErrChildNotFound if there is no such link.
func (g *Group) FirstLink(name string) (*Link, error) {
	for _, child := range g.Children {
		if link, ok := child.(*Link); ok && link.Name == name {
			return link, nil
		}
	}
	return nil, fmt.Errorf("%w: link %q in %q", ErrChildNotFound, name, g.Name)
}

// Links returns all link children with the given name
func (g *Group) Links(name string) []*Link {
	links := []*Link{}
	for _, child := range g.Children {
		if link, ok := child.(*Link); ok && link.Name == name {
			links = append(links, link)
		}
	}
	return links
}
