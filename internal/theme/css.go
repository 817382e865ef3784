package theme

import (
	"fmt"
	"strings"
)

// cssVariables fixes which tokens are exported as CSS custom properties and
// in which order, so the rendered stylesheet is stable across builds.
var cssVariables = []struct {
	name string
	path string
}{
	{"--color-primary", "colors.primary.DEFAULT"},
	{"--color-primary-light", "colors.primary.light"},
	{"--color-primary-dark", "colors.primary.dark"},
	{"--color-accent", "colors.accent.DEFAULT"},
	{"--color-background", "colors.background"},
	{"--color-surface", "colors.surface"},
	{"--color-border", "colors.border"},
	{"--color-text", "colors.text.primary"},
	{"--color-text-secondary", "colors.text.secondary"},
	{"--color-success", "colors.success"},
	{"--color-warning", "colors.warning"},
	{"--color-danger", "colors.danger"},
	{"--font-family", "typography.fontFamily"},
	{"--font-size-base", "typography.size.base"},
	{"--radius-md", "radius.md"},
	{"--spacing-md", "spacing.md"},
	{"--duration-base", "motion.duration.base"},
}

// CSSVariables renders the exported tokens as a ":root" custom-property
// block. Pure: same output on every call.
func CSSVariables() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range cssVariables {
		value, ok := Value(v.path)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s: %v;\n", v.name, value)
	}
	b.WriteString("}\n")
	return b.String()
}
