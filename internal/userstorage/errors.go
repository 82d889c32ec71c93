package userstorage

import "fmt"

const (
	errMsgReadByID      = "Error reading %s with id: %s from storage."
	errMsgReadByLoginID = "Error reading user with login id: %s from storage."
)

// StorageViewError is the single error kind returned by View operations.
// Err holds the original fault and is nil for semantic errors such as a
// login id matching zero or several users.
type StorageViewError struct {
	Err     error
	Message string
}

// Error returns the message naming the operation and identifier
func (e *StorageViewError) Error() string {
	return e.Message
}

// Unwrap returns the original fault
func (e *StorageViewError) Unwrap() error {
	return e.Err
}

// wrapError wraps err into a StorageViewError naming the failed read
func wrapError(message string, err error) *StorageViewError {
	return &StorageViewError{Message: message, Err: err}
}

func readByIDMessage(recordType, id string) string {
	return fmt.Sprintf(errMsgReadByID, recordType, id)
}

func readByLoginIDMessage(loginID string) string {
	return fmt.Sprintf(errMsgReadByLoginID, loginID)
}
