package utils

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/smartchessacademy/website/src/oops"
)

// Returns the provided value, or a default value if the input was zero.
func OrDefault[T comparable](v T, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func Min[T ~int | ~int64](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T ~int | ~int64](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Clamp[T ~int | ~int64](min, t, max T) T {
	return Max(min, Min(t, max))
}

func NumPages(numThings, thingsPerPage int) int {
	return Max(int(math.Ceil(float64(numThings)/float64(thingsPerPage))), 1)
}

// TruncateText shortens a string to at most maxRunes runes, adding an
// ellipsis when anything was cut.
func TruncateText(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "…"
}

// Panics if the provided error is not nil. Helps to avoid `if err != nil`
// in cases where errors are truly unexpected.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

/*
Recover a panic and convert it to a returned error. Call it like so:

	func MyFunc() (err error) {
		defer utils.RecoverPanicAsError(&err)
	}

If an error was already present, the panicked error takes precedence. There is
no good way to keep both chains of errors and still play nice with the
standard library's Unwrap behavior, but in practice the panic happens before a
meaningful error value was set.
*/
func RecoverPanicAsError(err *error) {
	if r := recover(); r != nil {
		var recoveredErr error
		if rerr, ok := r.(error); ok {
			recoveredErr = rerr
		} else {
			recoveredErr = fmt.Errorf("panic with value: %v", r)
		}
		*err = oops.New(recoveredErr, "panic recovered as error")
	}
}

var ErrSleepInterrupted = errors.New("sleep interrupted by context cancellation")

func SleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ErrSleepInterrupted
	case <-time.After(d):
		return nil
	}
}
