// Package convert translates generic user records into the User domain model.
package convert

import (
	"github.com/iudanet/userstorage/internal/models"
	"github.com/iudanet/userstorage/internal/record"
)

//go:generate moq -out converter_mock.go . Converter

// Converter translates a user record into a User
type Converter interface {
	// GroupToUser converts a user record group into a User.
	// Fails only when the record has no id or a present child is malformed.
	GroupToUser(g *record.Group) (*models.User, error)
}

// step extracts one aspect of a user from its record.
// Steps are independent and read from the same input.
type step func(g *record.Group, user *models.User) error

// UserConverter is the default Converter
type UserConverter struct {
	steps []step
}

// New creates a UserConverter
func New() *UserConverter {
	return &UserConverter{
		steps: []step{
			setActiveStatus,
			setLoginID,
			setNames,
			setAppTokenIDs,
			setRoleIDs,
			setPasswordID,
			setPermissionUnitIDs,
		},
	}
}

// GroupToUser converts a user record group into a User
func (c *UserConverter) GroupToUser(g *record.Group) (*models.User, error) {
	id, err := g.RecordID()
	if err != nil {
		return nil, err
	}

	user := models.NewUser(id)
	for _, s := range c.steps {
		if err := s(g, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func setActiveStatus(g *record.Group, user *models.User) error {
	status, _ := g.AtomicValue(record.UserActiveStatus)
	user.Active = status == record.StatusActive
	return nil
}

// loginId is required by convention; a record without it yields an empty login id
func setLoginID(g *record.Group, user *models.User) error {
	user.LoginID, _ = g.AtomicValue(record.UserLoginID)
	return nil
}

func setNames(g *record.Group, user *models.User) error {
	if firstName, ok := g.AtomicValue(record.UserFirstName); ok {
		user.FirstName = models.Some(firstName)
	}
	if lastName, ok := g.AtomicValue(record.UserLastName); ok {
		user.LastName = models.Some(lastName)
	}
	return nil
}

func setAppTokenIDs(g *record.Group, user *models.User) error {
	if !g.ContainsChild(record.UserAppTokens) {
		return nil
	}

	appTokens, err := g.FirstGroup(record.UserAppTokens)
	if err != nil {
		return err
	}

	for _, appToken := range appTokens.Groups(record.UserAppToken) {
		link, err := appToken.FirstLink(record.UserAppTokenLink)
		if err != nil {
			return err
		}
		user.AppTokenIDs.Add(link.LinkedID)
	}
	return nil
}

func setRoleIDs(g *record.Group, user *models.User) error {
	for _, role := range g.Groups(record.UserRole) {
		link, err := role.FirstLink(record.UserRole)
		if err != nil {
			return err
		}
		user.Roles.Add(link.LinkedID)
	}
	return nil
}

func setPasswordID(g *record.Group, user *models.User) error {
	if !g.ContainsLink(record.UserPasswordLink) {
		return nil
	}

	link, err := g.FirstLink(record.UserPasswordLink)
	if err != nil {
		return err
	}
	user.PasswordID = models.Some(link.LinkedID)
	return nil
}

func setPermissionUnitIDs(g *record.Group, user *models.User) error {
	for _, link := range g.Links(record.UserPermissionUnit) {
		user.PermissionUnitIDs.Add(link.LinkedID)
	}
	return nil
}
