package resolver

import (
	"testing"
)

func TestLatestVersion(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"numeric not lexicographic", []string{"9.0.0", "10.2.0", "2.1.0"}, "10.2.0"},
		{"nvm v prefix", []string{"v18.19.0", "v20.11.1", "v8.17.0"}, "v20.11.1"},
		{"patch ordering", []string{"v20.9.0", "v20.10.0"}, "v20.10.0"},
		// semver precedence, unlike `sort -V` which would pick the rc.
		{"release beats prerelease", []string{"v21.0.0-rc.1", "v21.0.0"}, "v21.0.0"},
		{"versions beat non-versions", []string{"system", "v16.0.0", "lts"}, "v16.0.0"},
		{"natural order for non-versions", []string{"build-9", "build-10", "build-2"}, "build-10"},
		{"single entry", []string{"v22.3.0"}, "v22.3.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := latestVersion(tt.names)
			if !ok {
				t.Fatal("latestVersion returned ok = false")
			}
			if got != tt.want {
				t.Errorf("latestVersion(%v) = %q, want %q", tt.names, got, tt.want)
			}
		})
	}
}

func TestLatestVersion_Empty(t *testing.T) {
	if _, ok := latestVersion(nil); ok {
		t.Error("latestVersion(nil) returned ok = true")
	}
}

func TestLatestVersion_DoesNotReorderInput(t *testing.T) {
	in := []string{"9.0.0", "10.2.0", "2.1.0"}
	latestVersion(in)
	if in[0] != "9.0.0" || in[1] != "10.2.0" || in[2] != "2.1.0" {
		t.Errorf("input reordered: %v", in)
	}
}

func TestCompareNatural(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a2", "a10", -1},
		{"a10", "a2", 1},
		{"a010", "a10", 0},
		{"abc", "abd", -1},
		{"x1", "x1y", -1},
		{"", "", 0},
	}
	for _, tt := range tests {
		if got := compareNatural(tt.a, tt.b); got != tt.want {
			t.Errorf("compareNatural(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
