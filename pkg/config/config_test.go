package config

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/portfolio-fx/internal/particlefield"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultFieldConfig_MatchesParams(t *testing.T) {
	cfg := DefaultFieldConfig()
	got := cfg.Params()
	want := particlefield.DefaultParams()

	if got != want {
		t.Errorf("Params() = %+v\nwant %+v", got, want)
	}
}

func TestFieldConfig_LinkOpacityToParams(t *testing.T) {
	cfg, err := ParseConfig([]byte("field:\n  linkOpacity: 0.3\n"))
	if err != nil {
		t.Fatal(err)
	}
	p := cfg.Field.Params()
	if p.LinkMaxOpacity != 0.3 {
		t.Errorf("LinkMaxOpacity = %v, want 0.3", p.LinkMaxOpacity)
	}
	if got := p.LinkOpacity(0); got != 0.3 {
		t.Errorf("LinkOpacity(0) = %v, want 0.3", got)
	}
}

// TestShippedConfigFile 确保 data/config.yaml 与代码默认值一致
func TestShippedConfigFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", DefaultConfigPath))
	if err != nil {
		t.Fatalf("LoadConfig(%s) error: %v", DefaultConfigPath, err)
	}

	if *cfg != *DefaultConfig() {
		t.Errorf("shipped config differs from defaults:\n got %+v\nwant %+v", *cfg, *DefaultConfig())
	}
}

func TestParseConfig_PartialOverride(t *testing.T) {
	data := []byte(`
field:
  maxParticles: 40
  linkColor: "#ff0000"
window:
  width: 800
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}

	if cfg.Field.MaxParticles != 40 {
		t.Errorf("MaxParticles = %d, want 40", cfg.Field.MaxParticles)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("Width = %d, want 800", cfg.Window.Width)
	}
	// 未出现的字段保留默认值
	if cfg.Field.LinkDistance != 140 {
		t.Errorf("LinkDistance = %v, want default 140", cfg.Field.LinkDistance)
	}
	if cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("Height = %d, want default %d", cfg.Window.Height, DefaultWindowHeight)
	}
	if cfg.Cursor.FollowFactor != 0.15 {
		t.Errorf("FollowFactor = %v, want default 0.15", cfg.Cursor.FollowFactor)
	}

	p := cfg.Field.Params()
	if p.LinkColor != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("LinkColor = %+v, want red", p.LinkColor)
	}
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig(nil) error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Error("empty YAML should yield the default config")
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed yaml", "field: [", "failed to parse config"},
		{"zero spacing", "field: {spacing: 0}", "spacing must be positive"},
		{"negative particles", "field: {maxParticles: -1}", "maxParticles"},
		{"radius range reversed", "field: {radius: {min: 3, max: 1}}", "radius range invalid"},
		{"alpha above one", "field: {alpha: {min: 0.1, max: 1.5}}", "alpha range invalid"},
		{"damping above one", "field: {damping: 1.01}", "damping"},
		{"bad particle color", "field: {particleColor: purple}", "particleColor"},
		{"bad follow factor", "cursor: {followFactor: 0}", "followFactor"},
		{"zero window", "window: {width: 0}", "window size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v should wrap fs.ErrNotExist", err)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cursor:\n  enabled: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Cursor.Enabled {
		t.Error("cursor should be disabled by the file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_FX_FIELD_MAX_PARTICLES", "12")
	t.Setenv("PORTFOLIO_FX_FIELD_RADIUS_MAX", "3.5")
	t.Setenv("PORTFOLIO_FX_CURSOR_ENABLED", "false")
	t.Setenv("PORTFOLIO_FX_WINDOW_TITLE", "Hello")

	cfg := DefaultConfig()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}

	if cfg.Field.MaxParticles != 12 {
		t.Errorf("MaxParticles = %d, want 12", cfg.Field.MaxParticles)
	}
	if cfg.Field.Radius.Max != 3.5 {
		t.Errorf("Radius.Max = %v, want 3.5", cfg.Field.Radius.Max)
	}
	if cfg.Cursor.Enabled {
		t.Error("cursor should be disabled by env")
	}
	if cfg.Window.Title != "Hello" {
		t.Errorf("Title = %q, want Hello", cfg.Window.Title)
	}
	// 未设置的变量不改变现有值
	if cfg.Field.Spacing != 18 {
		t.Errorf("Spacing = %v, want 18", cfg.Field.Spacing)
	}
}

func TestApplyEnv_InvalidValue(t *testing.T) {
	t.Setenv("PORTFOLIO_FX_FIELD_DAMPING", "2")
	if err := ApplyEnv(DefaultConfig()); err == nil {
		t.Error("expected validation error for damping 2")
	}

	t.Setenv("PORTFOLIO_FX_FIELD_DAMPING", "not-a-number")
	if err := ApplyEnv(DefaultConfig()); err == nil {
		t.Error("expected parse error for non-numeric damping")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#a29bfe", color.RGBA{R: 162, G: 155, B: 254, A: 255}, false},
		{"#6c5ce7", color.RGBA{R: 108, G: 92, B: 231, A: 255}, false},
		{"#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"a29bfe", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	c := color.RGBA{R: 1, G: 128, B: 254, A: 255}
	got, err := ParseHexColor(HexColor(c))
	if err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}
