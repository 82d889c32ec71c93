package record

import (
	"errors"
	"fmt"
)

// Record types read by the user storage view
const (
	TypeUser         = "user"
	TypeAppToken     = "appToken"
	TypeSystemSecret = "systemSecret"
)

// Field names of a user record
const (
	UserLoginID        = "loginId"
	UserActiveStatus   = "activeStatus"
	UserFirstName      = "userFirstname"
	UserLastName       = "userLastname"
	UserAppTokens      = "appTokens"
	UserAppToken       = "appToken"
	UserAppTokenLink   = "appTokenLink"
	UserRole           = "userRole"
	UserPasswordLink   = "passwordLink"
	UserPermissionUnit = "permissionUnit"

	// StatusActive is the only activeStatus value that marks a user active
	StatusActive = "active"
)

// Field names of appToken and systemSecret records
const (
	AppTokenToken      = "token"
	SystemSecretSecret = "secret"
)

// ErrSchemaMismatch indicates that a child has a different kind than the schema expects
var ErrSchemaMismatch = errors.New("record does not match schema")

// Kind is the structural kind of a child
type Kind int

const (
	KindAtomic Kind = iota
	KindGroup
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindAtomic:
		return "atomic"
	case KindGroup:
		return "group"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// Field describes one expected child of a group
type Field struct {
	Children []Field // only for KindGroup
	Name     string
	Kind     Kind
}

// Schema lists the children a record kind is expected to have.
// Every field is optional; absent children mean "no data".
type Schema struct {
	Type   string
	Fields []Field
}

// Schemas holds the schema of every record kind read by the view
var Schemas = map[string]Schema{
	TypeUser: {
		Type: TypeUser,
		Fields: []Field{
			{Name: UserLoginID, Kind: KindAtomic},
			{Name: UserActiveStatus, Kind: KindAtomic},
			{Name: UserFirstName, Kind: KindAtomic},
			{Name: UserLastName, Kind: KindAtomic},
			{Name: UserAppTokens, Kind: KindGroup, Children: []Field{
				{Name: UserAppToken, Kind: KindGroup, Children: []Field{
					{Name: UserAppTokenLink, Kind: KindLink},
				}},
			}},
			{Name: UserRole, Kind: KindGroup, Children: []Field{
				{Name: UserRole, Kind: KindLink},
			}},
			{Name: UserPasswordLink, Kind: KindLink},
			{Name: UserPermissionUnit, Kind: KindLink},
		},
	},
	TypeAppToken: {
		Type:   TypeAppToken,
		Fields: []Field{{Name: AppTokenToken, Kind: KindAtomic}},
	},
	TypeSystemSecret: {
		Type:   TypeSystemSecret,
		Fields: []Field{{Name: SystemSecretSecret, Kind: KindAtomic}},
	},
}

// Check verifies that every known child of g has the kind the schema expects.
// Unknown children are ignored.
func (s Schema) Check(g *Group) error {
	return checkFields(s.Fields, g)
}

func checkFields(fields []Field, g *Group) error {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	for _, child := range g.Children {
		field, ok := byName[child.NameInData()]
		if !ok {
			continue
		}
		if kind := kindOf(child); kind != field.Kind {
			return fmt.Errorf("%w: %q in %q is %s, expected %s",
				ErrSchemaMismatch, field.Name, g.Name, kind, field.Kind)
		}
		if group, ok := child.(*Group); ok {
			if err := checkFields(field.Children, group); err != nil {
				return err
			}
		}
	}
	return nil
}

func kindOf(child Child) Kind {
	switch child.(type) {
	case *Atomic:
		return KindAtomic
	case *Link:
		return KindLink
	default:
		return KindGroup
	}
}

// CheckLinks verifies that every link in g, at any depth, has a linked id
func CheckLinks(g *Group) error {
	for _, child := range g.Children {
		switch c := child.(type) {
		case *Link:
			if c.LinkedID == "" {
				return fmt.Errorf("%w: %q in %q", ErrEmptyLink, c.Name, g.Name)
			}
		case *Group:
			if err := CheckLinks(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckRecord validates the links of g and checks g against the schema of
// its type. Records of types without a schema only get the link check.
func CheckRecord(g *Group) error {
	if err := CheckLinks(g); err != nil {
		return err
	}

	schema, ok := Schemas[g.Type]
	if !ok {
		return nil
	}
	return schema.Check(g)
}
