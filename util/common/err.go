package common

import (
	"errors"
	"fmt"
	"strings"

	"thinker-ui/logger"
)

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

func NewError(a ...any) error {
	msg := fmt.Sprintln(a...)
	return errors.New(msg)
}

// Combine merges multiple errors into one, ignoring nils.
func Combine(errs ...error) error {
	errorsText := []string{}
	for _, err := range errs {
		if err != nil {
			errorsText = append(errorsText, err.Error())
		}
	}
	if len(errorsText) > 0 {
		return errors.New(strings.Join(errorsText, ", "))
	}
	return nil
}

func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}
