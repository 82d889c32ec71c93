package models

// User is the identity projected from a user record
type User struct {
	FirstName         Optional[string] `json:"first_name"`          // userFirstname, если есть
	LastName          Optional[string] `json:"last_name"`           // userLastname, если есть
	PasswordID        Optional[string] `json:"password_id"`         // id связанной systemSecret записи
	Password          Optional[string] `json:"-"`                   // хеш пароля, только при PasswordResolved
	Roles             StringSet        `json:"roles"`               // id ролей
	AppTokenIDs       StringSet        `json:"app_token_ids"`       // id связанных appToken записей
	PermissionUnitIDs StringSet        `json:"permission_unit_ids"` // id permission units
	ID                string           `json:"id"`                  // id записи
	LoginID           string           `json:"login_id"`            // логин пользователя
	Active            bool             `json:"active"`              // activeStatus == "active"
}

// NewUser creates an inactive user with the given id and empty sets
func NewUser(id string) *User {
	return &User{
		ID:                id,
		Roles:             NewStringSet(),
		AppTokenIDs:       NewStringSet(),
		PermissionUnitIDs: NewStringSet(),
	}
}

// AppToken is an application token read from an appToken record
type AppToken struct {
	ID          string `json:"id"`
	TokenString string `json:"token_string"`
}
