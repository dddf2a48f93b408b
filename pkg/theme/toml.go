package theme

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the TOML-serializable representation of a Theme.
type tomlTheme struct {
	Name  string    `toml:"name"`
	Page  tomlPage  `toml:"page"`
	Chart tomlChart `toml:"chart"`
}

type tomlPage struct {
	Background  string `toml:"background"`
	Foreground  string `toml:"foreground"`
	Title       string `toml:"title"`
	Placeholder string `toml:"placeholder"`
}

type tomlChart struct {
	Axis    string   `toml:"axis"`
	Single  string   `toml:"single"`
	Palette []string `toml:"palette"`
}

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if len(tt.Chart.Palette) != len(Theme{}.Palette) {
		return Theme{}, fmt.Errorf("theme: palette has %d colors, want %d", len(tt.Chart.Palette), len(Theme{}.Palette))
	}

	t := Theme{
		Name:        tt.Name,
		Background:  tt.Page.Background,
		Foreground:  tt.Page.Foreground,
		Title:       tt.Page.Title,
		Placeholder: tt.Page.Placeholder,

		Axis:   tt.Chart.Axis,
		Single: tt.Chart.Single,
	}
	copy(t.Palette[:], tt.Chart.Palette)

	if err := validateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a TOML theme from path and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	register(t)
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := tomlTheme{
		Name: t.Name,
		Page: tomlPage{
			Background:  t.Background,
			Foreground:  t.Foreground,
			Title:       t.Title,
			Placeholder: t.Placeholder,
		},
		Chart: tomlChart{
			Axis:    t.Axis,
			Single:  t.Single,
			Palette: t.Palette[:],
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// validateTheme checks that all required fields are present and every
// color parses. Background may be empty for a transparent canvas.
func validateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colors := []struct {
		field, value string
	}{
		{"foreground", t.Foreground},
		{"title", t.Title},
		{"placeholder", t.Placeholder},
		{"axis", t.Axis},
		{"single", t.Single},
		{"palette[0]", t.Palette[0]},
		{"palette[1]", t.Palette[1]},
		{"palette[2]", t.Palette[2]},
	}
	if t.Background != "" {
		colors = append(colors, struct{ field, value string }{"background", t.Background})
	}

	for _, c := range colors {
		if c.value == "" {
			return fmt.Errorf("theme: missing required field %q", c.field)
		}
		if _, ok := ParseColor(c.value); !ok {
			return fmt.Errorf("theme: invalid color %q for field %q (expected #RRGGBB, rgb() or a color name)", c.value, c.field)
		}
	}
	return nil
}
