package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		valid     bool
		wantPath  string
		wantKWord string
	}{
		{name: "empty document", doc: "", valid: true},
		{name: "all keys", doc: "node_location: /usr/bin/node\nclaude_location: ''\ndebug_context: false\nprobe_timeout: 2s\n", valid: true},
		{name: "compound duration", doc: "probe_timeout: 1m30s\n", valid: true},
		{name: "unknown key", doc: "node_path: /usr/bin/node\n", wantKWord: "additionalProperties"},
		{name: "bool as string", doc: "debug_context: \"yes\"\n", wantPath: "/debug_context", wantKWord: "type"},
		{name: "bad duration", doc: "probe_timeout: soon\n", wantPath: "/probe_timeout", wantKWord: "pattern"},
		{name: "duration as number", doc: "probe_timeout: 2\n", wantPath: "/probe_timeout", wantKWord: "type"},
		{name: "not a mapping", doc: "- a\n- b\n", wantKWord: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if result.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (issues %+v)", result.Valid, tt.valid, result.Issues)
			}
			if tt.valid {
				return
			}
			if len(result.Issues) == 0 {
				t.Fatal("invalid result has no issues")
			}
			issue := result.Issues[0]
			if issue.Keyword != tt.wantKWord {
				t.Errorf("Keyword = %q, want %q", issue.Keyword, tt.wantKWord)
			}
			if tt.wantPath != "" && issue.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", issue.Path, tt.wantPath)
			}
			if issue.Message == "" {
				t.Error("issue has no message")
			}
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	if _, err := Validate([]byte("node_location: [unclosed\n")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidateFile_Missing(t *testing.T) {
	if _, err := ValidateFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestValidateFile_Testdata(t *testing.T) {
	tests := []struct {
		file  string
		valid bool
	}{
		{"valid.yaml", true},
		{"invalid-timeout.yaml", false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			if _, err := os.Stat(filepath.Join("testdata", tt.file)); err != nil {
				t.Fatal(err)
			}
			result, err := ValidateFile(filepath.Join("testdata", tt.file))
			if err != nil {
				t.Fatalf("ValidateFile: %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (issues %+v)", result.Valid, tt.valid, result.Issues)
			}
		})
	}
}
