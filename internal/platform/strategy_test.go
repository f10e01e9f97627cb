package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/agentx-labs/toolpath/internal/probe/probetest"
)

func TestClassify(t *testing.T) {
	always := func(context.Context) bool { return true }
	never := func(context.Context) bool { return false }

	tests := []struct {
		name       string
		goos       string
		probe      SubsystemProbe
		wantKind   Kind
		wantPrefix []string
	}{
		{"darwin is native", "darwin", never, Native, nil},
		{"linux is native", "linux", never, Native, nil},
		{"freebsd is native", "freebsd", nil, Native, nil},
		{"windows with wsl", "windows", always, Subsystem, []string{"wsl"}},
		{"windows without wsl", "windows", never, Unsupported, nil},
		{"windows with nil probe", "windows", nil, Unsupported, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Classify(context.Background(), tt.goos, tt.probe)
			if s.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", s.Kind, tt.wantKind)
			}
			if len(s.Prefix) != len(tt.wantPrefix) {
				t.Fatalf("Prefix = %v, want %v", s.Prefix, tt.wantPrefix)
			}
			for i := range tt.wantPrefix {
				if s.Prefix[i] != tt.wantPrefix[i] {
					t.Errorf("Prefix[%d] = %q, want %q", i, s.Prefix[i], tt.wantPrefix[i])
				}
			}
			if s.GOOS != tt.goos {
				t.Errorf("GOOS = %q, want %q", s.GOOS, tt.goos)
			}
		})
	}
}

func TestClassify_ProbeOnlyOnWindows(t *testing.T) {
	called := false
	probe := func(context.Context) bool {
		called = true
		return true
	}
	Classify(context.Background(), "linux", probe)
	if called {
		t.Error("subsystem probe ran on a non-Windows host")
	}
}

func TestStrategyErr(t *testing.T) {
	if err := (Strategy{Kind: Native}).Err(); err != nil {
		t.Errorf("Native.Err() = %v, want nil", err)
	}
	if err := (Strategy{Kind: Subsystem}).Err(); err != nil {
		t.Errorf("Subsystem.Err() = %v, want nil", err)
	}
	err := (Strategy{Kind: Unsupported}).Err()
	if !errors.Is(err, ErrSubsystemRequired) {
		t.Fatalf("Unsupported.Err() = %v, want ErrSubsystemRequired", err)
	}
}

func TestWSLProbe(t *testing.T) {
	r := probetest.New()
	p := WSLProbe(r)
	if p(context.Background()) {
		t.Error("probe reported WSL available when `wsl --status` is unscripted")
	}

	r.Succeed("wsl --status", "Default Distribution: Ubuntu")
	if !p(context.Background()) {
		t.Error("probe reported WSL unavailable when `wsl --status` succeeded")
	}
	if got := r.Count("wsl --status"); got != 2 {
		t.Errorf("wsl --status ran %d times, want 2", got)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Native:      "native",
		Subsystem:   "subsystem",
		Unsupported: "unsupported",
		Kind(42):    "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
