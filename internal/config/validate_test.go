package config

import (
	"strings"
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		keyword string
	}{
		{"invalid-configuration.yaml", "enum"},
		{"invalid-unknown-key.yaml", "additionalProperties"},
		{"invalid-type.yaml", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s, but got valid", tt.file)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no %q issue in %+v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidate_Empty(t *testing.T) {
	result, err := Validate(nil)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("empty settings should be valid, got %+v", result.Issues)
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}

func TestInvalidFileError(t *testing.T) {
	err := &InvalidFileError{
		Path: "fake-toolchain.yaml",
		Issues: []ValidationIssue{
			{Path: "/configuration", Message: "value must be one of 'debug', 'release'", Keyword: "enum"},
			{Message: "additional properties 'x' not allowed", Keyword: "additionalProperties"},
		},
	}
	msg := err.Error()
	for _, want := range []string{"fake-toolchain.yaml", "(2 issues)", "/configuration:", "/: additional"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q lacks %q", msg, want)
		}
	}
}
