package config

import (
	"fmt"
	"strings"

	"go.withmatt.com/themes"
)

// DefaultThemeName is used when the config names no palette.
const DefaultThemeName = "Nord"

// Theme colors accept hex values or palette names such as "bright_magenta".
// Empty colors are derived from the palette.
type Theme struct {
	Name   string      `toml:"name"`
	Status ThemeStatus `toml:"status"`
	List   ThemeList   `toml:"list"`
	Detail ThemeDetail `toml:"detail"`
	Modal  ThemeModal  `toml:"modal"`
}

type ThemeStatus struct {
	Bg     string `toml:"bg"`
	Fg     string `toml:"fg"`
	Dim    string `toml:"dim"`
	ModeBg string `toml:"mode_bg"`
	ModeFg string `toml:"mode_fg"`
	PathBg string `toml:"path_bg"`
	PathFg string `toml:"path_fg"`
}

type ThemeList struct {
	UnseenFg   string `toml:"unseen_fg"`
	SeenFg     string `toml:"seen_fg"`
	SelectedFg string `toml:"selected_fg"`
	SelectedBg string `toml:"selected_bg"`
	DateFg     string `toml:"date_fg"`
}

type ThemeDetail struct {
	LabelFg    string `toml:"label_fg"`
	ValueFg    string `toml:"value_fg"`
	LinkFg     string `toml:"link_fg"`
	BorderFg   string `toml:"border_fg"`
	BodyModeBg string `toml:"body_mode_bg"`
	BodyModeFg string `toml:"body_mode_fg"`
	WarningFg  string `toml:"warning_fg"`
}

type ThemeModal struct {
	BorderFg string `toml:"border_fg"`
	TitleFg  string `toml:"title_fg"`
	KeyFg    string `toml:"key_fg"`
	FooterFg string `toml:"footer_fg"`
	DangerFg string `toml:"danger_fg"`
}

// colors lists every color slot of t in a fixed order.
func (t *Theme) colors() []*string {
	return []*string{
		&t.Status.Bg, &t.Status.Fg, &t.Status.Dim,
		&t.Status.ModeBg, &t.Status.ModeFg, &t.Status.PathBg, &t.Status.PathFg,

		&t.List.UnseenFg, &t.List.SeenFg, &t.List.SelectedFg, &t.List.SelectedBg, &t.List.DateFg,

		&t.Detail.LabelFg, &t.Detail.ValueFg, &t.Detail.LinkFg, &t.Detail.BorderFg,
		&t.Detail.BodyModeBg, &t.Detail.BodyModeFg, &t.Detail.WarningFg,

		&t.Modal.BorderFg, &t.Modal.TitleFg, &t.Modal.KeyFg, &t.Modal.FooterFg, &t.Modal.DangerFg,
	}
}

// ResolveTheme fills unset colors from the named palette and turns palette
// color names into concrete values.
func ResolveTheme(theme Theme) (Theme, error) {
	palette, err := paletteForTheme(theme.Name)
	if err != nil {
		return Theme{}, err
	}

	base := themeFromPalette(palette)
	out := theme
	baseColors := base.colors()
	for i, slot := range out.colors() {
		if strings.TrimSpace(*slot) == "" {
			*slot = *baseColors[i]
		}
		*slot = resolveColorName(*slot, palette)
	}
	return out, nil
}

func themeFromPalette(p *themes.Theme) Theme {
	fg := p.Foreground
	bg := p.Background
	accent := firstNonEmpty(p.Magenta, fg)
	dim := firstNonEmpty(p.BrightBlack, fg)
	if dim == bg {
		dim = fg
	}
	return Theme{
		Status: ThemeStatus{
			Bg:     bg,
			Fg:     fg,
			Dim:    dim,
			ModeBg: accent,
			ModeFg: bg,
			PathBg: firstNonEmpty(p.Blue, accent),
			PathFg: bg,
		},
		List: ThemeList{
			UnseenFg:   firstNonEmpty(p.BrightMagenta, p.Magenta, fg),
			SeenFg:     fg,
			SelectedFg: firstNonEmpty(p.BrightGreen, p.Green, fg),
			SelectedBg: bg,
			DateFg:     dim,
		},
		Detail: ThemeDetail{
			LabelFg:    dim,
			ValueFg:    fg,
			LinkFg:     firstNonEmpty(p.Cyan, p.BrightCyan, p.Blue, fg),
			BorderFg:   accent,
			BodyModeBg: firstNonEmpty(p.Green, fg),
			BodyModeFg: bg,
			WarningFg:  firstNonEmpty(p.Yellow, p.Red, fg),
		},
		Modal: ThemeModal{
			BorderFg: accent,
			TitleFg:  accent,
			KeyFg:    firstNonEmpty(p.Cyan, fg),
			FooterFg: dim,
			DangerFg: firstNonEmpty(p.Red, fg),
		},
	}
}

func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

// ResolveColor resolves a single color value against theme's palette.
func ResolveColor(value string, theme Theme) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	palette, err := paletteForTheme(theme.Name)
	if err != nil {
		return "", err
	}
	return resolveColorName(value, palette), nil
}

func paletteForTheme(name string) (*themes.Theme, error) {
	themeName := strings.TrimSpace(name)
	if themeName == "" {
		themeName = DefaultThemeName
	}
	palette, err := themes.GetTheme(themeName)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", themeName, err)
	}
	return palette, nil
}

func paletteColors(p *themes.Theme) map[string]string {
	return map[string]string{
		"foreground":    p.Foreground,
		"background":    p.Background,
		"cursor":        p.Cursor,
		"black":         p.Black,
		"red":           p.Red,
		"green":         p.Green,
		"yellow":        p.Yellow,
		"blue":          p.Blue,
		"magenta":       p.Magenta,
		"cyan":          p.Cyan,
		"white":         p.White,
		"brightblack":   p.BrightBlack,
		"brightred":     p.BrightRed,
		"brightgreen":   p.BrightGreen,
		"brightyellow":  p.BrightYellow,
		"brightblue":    p.BrightBlue,
		"brightmagenta": p.BrightMagenta,
		"brightcyan":    p.BrightCyan,
		"brightwhite":   p.BrightWhite,
	}
}

func resolveColorName(value string, palette *themes.Theme) string {
	if palette == nil {
		return value
	}
	key := normalizeColorName(value)
	if key == "" {
		return value
	}
	if color, ok := paletteColors(palette)[key]; ok {
		return color
	}
	return value
}

var colorNameReplacer = strings.NewReplacer("_", "", "-", "", " ", "")

func normalizeColorName(value string) string {
	return colorNameReplacer.Replace(strings.ToLower(strings.TrimSpace(value)))
}
