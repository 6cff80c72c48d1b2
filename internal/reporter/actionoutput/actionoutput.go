// Package actionoutput writes GitHub Actions step outputs.
package actionoutput

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// EnvVar names the file GitHub Actions collects step outputs from.
const EnvVar = "GITHUB_OUTPUT"

// ReportCommentOutput is the output the rendered report is published under.
const ReportCommentOutput = "report-comment"

// newDelimiter is replaced in tests.
var newDelimiter = func() string {
	return "ghadelimiter_" + uuid.NewString()
}

// Write writes name=value using the multi-line delimiter syntax.
func Write(w io.Writer, name, value string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("output name is empty")
	}
	delimiter := newDelimiter()
	if strings.Contains(name, delimiter) || strings.Contains(value, delimiter) {
		return fmt.Errorf("output %q: value contains the delimiter %q", name, delimiter)
	}
	_, err := fmt.Fprintf(w, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	return err
}

// AppendFile appends name=value to the outputs file at path.
func AppendFile(path, name, value string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open outputs file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close outputs file %s: %w", path, cerr)
		}
	}()
	if err := Write(f, name, value); err != nil {
		return fmt.Errorf("write output %s: %w", name, err)
	}
	return nil
}

// Publish appends the report as the report-comment output when running
// under GitHub Actions. It reports whether an output was written.
func Publish(report string) (bool, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return false, nil
	}
	if err := AppendFile(path, ReportCommentOutput, report); err != nil {
		return false, err
	}
	return true, nil
}
