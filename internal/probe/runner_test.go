package probe

import (
	"context"
	"runtime"
	"testing"
	"time"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("probe tests use sh")
	}
}

func TestExecRunner_Output(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		name   string
		args   []string
		want   string
		wantOK bool
	}{
		{"trims stdout", []string{"-c", "echo '  /usr/bin/node  '"}, "/usr/bin/node", true},
		{"multi-line output kept", []string{"-c", "printf 'a\\nb\\n'"}, "a\nb", true},
		{"non-zero exit fails", []string{"-c", "echo partial; exit 3"}, "", false},
		{"stderr only is empty success", []string{"-c", "echo oops >&2"}, "", true},
	}

	r := NewExecRunner(0, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Output(context.Background(), "sh", tt.args...)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Output = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewExecRunner(0, nil)
	if out, ok := r.Output(context.Background(), "toolpath-definitely-not-installed"); ok || out != "" {
		t.Errorf("Output = (%q, %v), want failure", out, ok)
	}
}

func TestExecRunner_Timeout(t *testing.T) {
	skipOnWindows(t)

	r := NewExecRunner(100*time.Millisecond, nil)
	start := time.Now()
	_, ok := r.Output(context.Background(), "sh", "-c", "sleep 5")
	if ok {
		t.Fatal("Output succeeded past its deadline")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("Output took %v, want it bounded by the timeout", elapsed)
	}
}

func TestExecRunner_ForcesCLocale(t *testing.T) {
	skipOnWindows(t)

	r := NewExecRunner(0, nil)
	got, ok := r.Output(context.Background(), "sh", "-c", "echo $LC_ALL")
	if !ok || got != "C" {
		t.Errorf("LC_ALL = (%q, %v), want C", got, ok)
	}
}

func TestCommandLine(t *testing.T) {
	if got := CommandLine("wsl"); got != "wsl" {
		t.Errorf("CommandLine(wsl) = %q", got)
	}
	if got := CommandLine("wsl", "--", "which", "node"); got != "wsl -- which node" {
		t.Errorf("CommandLine = %q", got)
	}
}
