package scenario

import (
	"fmt"
	"strings"
)

// AssertionError describes one failed expectation.
type AssertionError struct {
	Field    string
	Expected any
	Actual   any
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %v, got %v", e.Field, e.Expected, e.Actual)
}

// Assert checks a result against a case's expectations and returns every
// failure.
func Assert(res Result, expect Expectation) []error {
	var errs []error

	if res.ExitCode != expect.ExitCode {
		errs = append(errs, &AssertionError{
			Field:    "exit_code",
			Expected: expect.ExitCode,
			Actual:   fmt.Sprintf("%d (stderr: %s)", res.ExitCode, truncate(res.Stderr, 200)),
		})
	}

	for _, want := range expect.StdoutContains {
		if !strings.Contains(res.Stdout, want) {
			errs = append(errs, &AssertionError{
				Field:    "stdout",
				Expected: fmt.Sprintf("contains %q", want),
				Actual:   truncate(res.Stdout, 200),
			})
		}
	}

	for _, want := range expect.StderrContains {
		if !strings.Contains(res.Stderr, want) {
			errs = append(errs, &AssertionError{
				Field:    "stderr",
				Expected: fmt.Sprintf("contains %q", want),
				Actual:   truncate(res.Stderr, 200),
			})
		}
	}

	pos := 0
	for _, want := range expect.StdoutSequence {
		i := strings.Index(res.Stdout[pos:], want)
		if i < 0 {
			errs = append(errs, &AssertionError{
				Field:    "stdout",
				Expected: fmt.Sprintf("%q after offset %d", want, pos),
				Actual:   truncate(res.Stdout, 200),
			})
			break
		}
		pos += i + len(want)
	}

	return errs
}

// FormatErrors formats multiple assertion failures into a single string.
func FormatErrors(errs []error) string {
	if len(errs) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
