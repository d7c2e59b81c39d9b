// Package numio loads and stores operand files and generates random
// operands of an exact byte size.
//
// Operand files carry one decimal number. Blank lines and lines starting
// with '#' are skipped, so result files written with a commented header can
// be fed back in as operands.
package numio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/4310V343k/labs-project-stuffs/internal/bignum"
	apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"
)

// LoadOperand reads the first non-blank, non-comment line of the file at
// path, trims surrounding whitespace, and validates it as an unsigned
// decimal number.
//
// Returns:
//   - string: The validated decimal text, ready for bignum.FromDecimal.
//   - error: A wrapped I/O error, or a ValidationError for malformed content.
func LoadOperand(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", apperrors.WrapError(err, "failed to open operand file %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Operands can run to millions of digits; a single line must fit.
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !bignum.IsValidDecimal(line) {
			return "", apperrors.ValidationError{
				Field:   path,
				Message: "operand must contain only decimal digits",
			}
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", apperrors.WrapError(err, "failed to read operand file %s", path)
	}

	return "", apperrors.ValidationError{
		Field:   path,
		Message: "operand file contains no number",
	}
}

// WriteOperand stores a decimal number as a single line, creating parent
// directories as needed. The format is accepted by LoadOperand unchanged.
func WriteOperand(path, decimal string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create operand file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, decimal); err != nil {
		return fmt.Errorf("failed to write operand: %w", err)
	}
	return nil
}
