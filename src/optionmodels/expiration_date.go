package optionmodels

import (
	"fmt"
	"time"
)

const ExpirationDateLayout = "2006-01-02"

type ExpirationDate string

func (e ExpirationDate) String() string {
	return string(e)
}

func (e ExpirationDate) ToTime() (time.Time, error) {
	t, err := time.Parse(ExpirationDateLayout, string(e))
	if err != nil {
		return time.Time{}, fmt.Errorf("ExpirationDate: ToTime: failed to parse %s: %w", e, err)
	}

	return t, nil
}

func (e ExpirationDate) Validate() error {
	if e == "" {
		return fmt.Errorf("ExpirationDate: Validate: expiration date is empty")
	}

	if _, err := e.ToTime(); err != nil {
		return fmt.Errorf("ExpirationDate: Validate: %w", err)
	}

	return nil
}
