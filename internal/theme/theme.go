package theme

import "strings"

// tokens is the design-token tree shared with the web client. It is built
// once at compile time and never mutated; colors are hex strings, sizes and
// durations are CSS-ready strings, weights are plain integers.
var tokens = map[string]any{
	"colors": map[string]any{
		"primary": map[string]any{
			"DEFAULT":  "#0B1F3B",
			"light":    "#16365E",
			"dark":     "#060F1D",
			"contrast": "#FFFFFF",
		},
		"accent": map[string]any{
			"DEFAULT": "#C9A227",
			"light":   "#E0BE55",
		},
		"background": "#F4F6FA",
		"surface":    "#FFFFFF",
		"border":     "#D8DEE9",
		"text": map[string]any{
			"primary":   "#101828",
			"secondary": "#475467",
			"inverse":   "#FFFFFF",
		},
		"success": "#12805C",
		"warning": "#B54708",
		"danger":  "#B42318",
	},
	"spacing": map[string]any{
		"xs": "4px",
		"sm": "8px",
		"md": "16px",
		"lg": "24px",
		"xl": "32px",
	},
	"typography": map[string]any{
		"fontFamily": "'Inter', 'Helvetica Neue', sans-serif",
		"size": map[string]any{
			"sm":   "13px",
			"base": "15px",
			"lg":   "18px",
			"xl":   "24px",
		},
		"weight": map[string]any{
			"regular": 400,
			"medium":  500,
			"bold":    700,
		},
	},
	"radius": map[string]any{
		"sm":   "6px",
		"md":   "10px",
		"pill": "999px",
	},
	"motion": map[string]any{
		"duration": map[string]any{
			"fast": "120ms",
			"base": "200ms",
		},
	},
}

// Value resolves a dotted token path such as "colors.primary.DEFAULT". The
// second return is false when any segment is absent; the function never
// panics, whatever the input.
func Value(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = tokens
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Tokens returns the full token tree for serialization to the web client.
// Callers must treat the result as read-only.
func Tokens() map[string]any {
	return tokens
}
