package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gencomp/gencomp-cli/pkg/models"
)

// ValidateFramework parses a framework flag value; empty means the default
func ValidateFramework(value string) (models.Framework, error) {
	if strings.TrimSpace(value) == "" {
		return models.DefaultFramework, nil
	}
	return models.ParseFramework(value)
}

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateDirectoryPath validates that a directory path exists
func ValidateDirectoryPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", path)
		}
		return fmt.Errorf("error accessing directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path is a file, expected directory: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format
func ValidateOutputFormat(format string) error {
	validFormats := []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: %s)", format, strings.Join(validFormats, ", "))
}

// ValidateDescription rejects blank descriptions before any call is made
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return models.NewValidationError("description cannot be empty")
	}
	return nil
}

// Contains checks if a string slice contains a specific item
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
