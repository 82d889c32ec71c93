package validation

import (
	"fmt"
	"regexp"
)

// RecordTypePattern определяет допустимый формат типа записи
// Начинается с буквы, далее буквы и цифры (например appToken, systemSecret)
var RecordTypePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)

// RecordIDPattern определяет допустимый формат id записи
// Латинские буквы, цифры, а также - _ . :
var RecordIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.:\-]+$`)

const (
	// MaxRecordTypeLen максимальная длина типа записи
	MaxRecordTypeLen = 64
	// MaxRecordIDLen максимальная длина id записи
	MaxRecordIDLen = 255
	// MinSecretLen минимальная длина секрета для хеширования
	MinSecretLen = 8
)

// ValidateRecordType проверяет тип записи
func ValidateRecordType(recordType string) error {
	if recordType == "" {
		return fmt.Errorf("record type cannot be empty")
	}

	if len(recordType) > MaxRecordTypeLen {
		return fmt.Errorf("record type must not exceed %d characters", MaxRecordTypeLen)
	}

	if !RecordTypePattern.MatchString(recordType) {
		return fmt.Errorf("record type %q must start with a letter and contain only letters and digits", recordType)
	}

	return nil
}

// ValidateRecordID проверяет id записи
func ValidateRecordID(id string) error {
	if id == "" {
		return fmt.Errorf("record id cannot be empty")
	}

	if len(id) > MaxRecordIDLen {
		return fmt.Errorf("record id must not exceed %d characters", MaxRecordIDLen)
	}

	if !RecordIDPattern.MatchString(id) {
		return fmt.Errorf("record id %q can only contain letters, numbers and the characters - _ . :", id)
	}

	return nil
}

// ValidateSecret проверяет минимальные требования к секрету
func ValidateSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("secret cannot be empty")
	}

	if len(secret) < MinSecretLen {
		return fmt.Errorf("secret must be at least %d characters long", MinSecretLen)
	}

	return nil
}
