package record

import (
	"encoding/json"
	"fmt"
)

// wireChild is the JSON shape of every element of a record.
// A child with linkedRecordId or linkedRecordType is a link, a child with
// value is an atomic, anything else is a group.
type wireChild struct {
	Value            *string     `json:"value,omitempty"`
	Name             string      `json:"name"`
	Type             string      `json:"type,omitempty"`
	ID               string      `json:"id,omitempty"`
	LinkedRecordType string      `json:"linkedRecordType,omitempty"`
	LinkedRecordID   string      `json:"linkedRecordId,omitempty"`
	Children         []wireChild `json:"children,omitempty"`
}

// MarshalJSON encodes the group in the wire format.
// A link without a linked id cannot be encoded and yields ErrEmptyLink.
func (g *Group) MarshalJSON() ([]byte, error) {
	if err := CheckLinks(g); err != nil {
		return nil, err
	}
	return json.Marshal(groupToWire(g))
}

// UnmarshalJSON decodes a group from the wire format
func (g *Group) UnmarshalJSON(data []byte) error {
	var w wireChild
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if w.Value != nil || w.isLink() {
		return fmt.Errorf("element %q is not a group", w.Name)
	}
	*g = *wireToGroup(w)
	return nil
}

func groupToWire(g *Group) wireChild {
	w := wireChild{Name: g.Name, Type: g.Type, ID: g.ID}
	for _, child := range g.Children {
		switch c := child.(type) {
		case *Atomic:
			value := c.Value
			w.Children = append(w.Children, wireChild{Name: c.Name, Value: &value})
		case *Link:
			w.Children = append(w.Children, wireChild{
				Name:             c.Name,
				LinkedRecordType: c.LinkedType,
				LinkedRecordID:   c.LinkedID,
			})
		case *Group:
			w.Children = append(w.Children, groupToWire(c))
		}
	}
	return w
}

func wireToGroup(w wireChild) *Group {
	g := &Group{Name: w.Name, Type: w.Type, ID: w.ID}
	for _, c := range w.Children {
		switch {
		case c.isLink():
			g.Children = append(g.Children, NewLink(c.Name, c.LinkedRecordType, c.LinkedRecordID))
		case c.Value != nil:
			g.Children = append(g.Children, NewAtomic(c.Name, *c.Value))
		default:
			g.Children = append(g.Children, wireToGroup(c))
		}
	}
	return g
}

func (w wireChild) isLink() bool {
	return w.LinkedRecordID != "" || w.LinkedRecordType != ""
}
