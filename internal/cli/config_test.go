package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/tristim/pkg/illuminant"
)

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadEnvConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			want: DefaultConfig(),
		},
		{
			name: "illuminant",
			env:  map[string]string{EnvIlluminant: " d50 "},
			want: Config{Illuminant: illuminant.D50, PreviewWidth: 8},
		},
		{
			name: "preview width",
			env:  map[string]string{EnvPreviewWidth: "3"},
			want: Config{Illuminant: illuminant.D65, PreviewWidth: 3},
		},
		{
			name: "no colour set but empty",
			env:  map[string]string{EnvNoColour: ""},
			want: Config{Illuminant: illuminant.D65, PreviewWidth: 8, NoColour: true},
		},
		{
			name:    "unknown illuminant",
			env:     map[string]string{EnvIlluminant: "D99"},
			wantErr: true,
		},
		{
			name:    "zero width",
			env:     map[string]string{EnvPreviewWidth: "0"},
			wantErr: true,
		},
		{
			name:    "non numeric width",
			env:     map[string]string{EnvPreviewWidth: "wide"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvIlluminant, EnvPreviewWidth, EnvNoColour} {
				unsetenv(t, key)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := LoadEnvConfig()
			if tt.wantErr {
				if err == nil {
					t.Errorf("LoadEnvConfig() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadEnvConfig() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LoadEnvConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadEnvConfigUnknownIlluminantIsWrapped(t *testing.T) {
	t.Setenv(EnvIlluminant, "D99")
	_, err := LoadEnvConfig()
	if !errors.Is(err, illuminant.ErrUnknown) {
		t.Errorf("LoadEnvConfig() error = %v, want illuminant.ErrUnknown", err)
	}
}

func TestIlluminantFlag(t *testing.T) {
	var il illuminant.Illuminant
	f := newIlluminantFlag(&il, illuminant.F7)

	if il != illuminant.F7 || f.String() != "F7" {
		t.Fatalf("default = %v (%q), want F7", il, f.String())
	}
	if f.Type() != "illuminant" {
		t.Errorf("Type() = %q, want illuminant", f.Type())
	}
	if err := f.Set("a"); err != nil {
		t.Fatalf("Set(a) unexpected error: %v", err)
	}
	if il != illuminant.A {
		t.Errorf("after Set(a) value = %v, want A", il)
	}
	if err := f.Set("sunset"); !errors.Is(err, illuminant.ErrUnknown) {
		t.Errorf("Set(sunset) error = %v, want illuminant.ErrUnknown", err)
	}
	if il != illuminant.A {
		t.Errorf("failed Set changed value to %v", il)
	}
	if got := (illuminantFlag{}).String(); got != "" {
		t.Errorf("zero flag String() = %q, want empty", got)
	}
}
