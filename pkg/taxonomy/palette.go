package taxonomy

import (
	"sort"
	"strings"
)

// palette maps the built-in color tokens to hex colors.
var palette = map[string]string{
	"color-core":        "#4f8cff",
	"color-graficos":    "#e0567a",
	"color-design":      "#f4a340",
	"color-redes":       "#35b9a7",
	"color-negocios":    "#9b6dff",
	"color-ferramentas": "#7fbf4d",
	DefaultColor:        "#06b6d4",
}

// Hex resolves a color token to a hex color. Tokens that already are hex
// colors are returned as is; unknown tokens resolve like DefaultColor.
func Hex(token string) string {
	if strings.HasPrefix(token, "#") {
		return token
	}
	if hex, ok := palette[token]; ok {
		return hex
	}
	return palette[DefaultColor]
}

// PaletteTokens lists the tokens with a built-in hex color, sorted.
func PaletteTokens() []string {
	tokens := make([]string, 0, len(palette))
	for t := range palette {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}
