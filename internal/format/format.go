package format

import (
	"fmt"
	"net/url"
	"strings"
)

// Percent clamps level to [0,100] and renders it as a CSS/display percentage.
// Example: Percent(72) => "72%"
func Percent(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	return fmt.Sprintf("%d%%", level)
}

// Mailto builds a mailto: URL, percent-encoding the address.
func Mailto(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	return "mailto:" + url.PathEscape(addr)
}

// WhatsApp builds a wa.me deep link from a phone number in any common
// notation; everything but digits is stripped.
func WhatsApp(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + digits.String()
}

// PlaceholderImage returns a generated placeholder URL used when a project
// has no thumbnail or its image fails to load. The label is percent-encoded.
func PlaceholderImage(width, height int, label string) string {
	if width <= 0 {
		width = 600
	}
	if height <= 0 {
		height = 400
	}
	u := fmt.Sprintf("https://placehold.co/%dx%d", width, height)
	if label = strings.TrimSpace(label); label != "" {
		u += "?text=" + url.QueryEscape(label)
	}
	return u
}
