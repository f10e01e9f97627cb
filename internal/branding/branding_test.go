package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "toolpath"},
		{"DisplayName", DisplayName(), "Toolpath"},
		{"HomeDir", HomeDir(), ".toolpath"},
		{"EnvPrefix", EnvPrefix(), "TOOLPATH"},
		{"GoModule", GoModule(), "github.com/agentx-labs/toolpath"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if Description() == "" {
		t.Error("Description() is empty")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("node_location"); got != "TOOLPATH_NODE_LOCATION" {
		t.Errorf("EnvVar = %q", got)
	}
}
