package forecast

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is matched by every InsufficientDataError via errors.Is.
var ErrInsufficientData = errors.New("not enough data points to forecast next price")

// InsufficientDataError reports a sequence shorter than the forecast window.
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: have %d, need %d", ErrInsufficientData, e.Have, e.Need)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// InvalidWindowError reports a non-positive window size.
type InvalidWindowError struct {
	Size int
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("window size must be positive, got %d", e.Size)
}
