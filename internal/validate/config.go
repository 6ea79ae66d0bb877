package validate

import (
	"fmt"
	"time"
)

// ValidatePortRange checks that port is in 1-65535.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString checks that a named string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateNonNegativeTimeout accepts zero, which means "no timeout".
func ValidateNonNegativeTimeout(timeout time.Duration, name string) error {
	if timeout < 0 {
		return fmt.Errorf("%s cannot be negative", name)
	}
	return nil
}

// ValidateLabID checks that a lab identifier is a positive integer.
func ValidateLabID(id int) error {
	if err := ValidateField(id, "min=1"); err != nil {
		return fmt.Errorf("lab id must be positive, got %d", id)
	}
	return nil
}

// ValidateURL checks that raw is an absolute URL.
func ValidateURL(raw, fieldName string) error {
	if err := ValidateField(raw, "required,url"); err != nil {
		return fmt.Errorf("invalid %s '%s': must be an absolute URL", fieldName, raw)
	}
	return nil
}
