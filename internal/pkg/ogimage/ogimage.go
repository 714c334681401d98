// Package ogimage renders the social preview card as an SVG document.
package ogimage

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Card geometry and text limits
const (
	Width  = 1200
	Height = 630

	MaxLines            = 2
	TitleCharsPerLine   = 50
	DescriptionPerLine  = 55
	titleBaseline       = 180
	titleLineHeight     = 60
	descriptionBaseline = 380
	descriptionLineStep = 45
)

// Defaults used when a parameter is absent or empty.
const (
	DefaultTitle       = "KARTAVYA NGO Incubator"
	DefaultDescription = "Building tomorrow's social change leaders"
	DefaultDomain      = "kartavya.org"
)

// ContentType is the media type of Render's output.
const ContentType = "image/svg+xml"

// WrapText packs words greedily into lines of at most max characters,
// counting the joining space, and keeps the first MaxLines lines. A word
// longer than max is split into max-sized pieces.
func WrapText(text string, max int) []string {
	if max <= 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		for _, chunk := range splitRunes(word, max) {
			switch {
			case current == "":
				current = chunk
			case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(chunk) <= max:
				current += " " + chunk
			default:
				lines = append(lines, current)
				current = chunk
			}
			if len(lines) >= MaxLines {
				return lines[:MaxLines]
			}
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) > MaxLines {
		lines = lines[:MaxLines]
	}
	return lines
}

func splitRunes(word string, size int) []string {
	if utf8.RuneCountInString(word) <= size {
		return []string{word}
	}
	runes := []rune(word)
	var out []string
	for len(runes) > size {
		out = append(out, string(runes[:size]))
		runes = runes[size:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes the five XML special characters.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// Renderer draws preview cards for one site domain.
type Renderer struct {
	Domain string
}

// Render draws a card with the default domain.
func Render(title, description string) string {
	return Renderer{Domain: DefaultDomain}.Render(title, description)
}

// Render returns the SVG card. Empty title or description fall back to the defaults.
func (r Renderer) Render(title, description string) string {
	if title == "" {
		title = DefaultTitle
	}
	if description == "" {
		description = DefaultDescription
	}
	domain := r.Domain
	if domain == "" {
		domain = DefaultDomain
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", Width, Height)
	b.WriteString(`  <defs>
    <linearGradient id="grad" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#10b981;stop-opacity:1" />
      <stop offset="100%" style="stop-color:#06b6d4;stop-opacity:1" />
    </linearGradient>
  </defs>
`)
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="url(#grad)"/>`+"\n", Width, Height)
	b.WriteString(`  <circle cx="100" cy="100" r="80" fill="rgba(255,255,255,0.1)"/>` + "\n")
	fmt.Fprintf(&b, `  <circle cx="%d" cy="%d" r="120" fill="rgba(255,255,255,0.08)"/>`+"\n", Width-100, Height-100)
	fmt.Fprintf(&b, `  <rect x="60" y="80" width="%d" height="%d" fill="white" rx="20" opacity="0.95"/>`+"\n", Width-120, Height-160)
	b.WriteString(`  <rect x="80" y="100" width="40" height="40" fill="#10b981" rx="8"/>` + "\n")
	b.WriteString(`  <text x="100" y="128" font-size="24" font-weight="bold" fill="white" text-anchor="middle" font-family="Arial, sans-serif">K</text>` + "\n")

	for i, line := range WrapText(title, TitleCharsPerLine) {
		fmt.Fprintf(&b, `  <text x="120" y="%d" font-size="56" font-weight="bold" fill="#1f2937" font-family="Arial, sans-serif">%s</text>`+"\n",
			titleBaseline+i*titleLineHeight, EscapeXML(line))
	}
	for i, line := range WrapText(description, DescriptionPerLine) {
		fmt.Fprintf(&b, `  <text x="120" y="%d" font-size="36" fill="#6b7280" font-family="Arial, sans-serif">%s</text>`+"\n",
			descriptionBaseline+i*descriptionLineStep, EscapeXML(line))
	}

	fmt.Fprintf(&b, `  <rect x="80" y="%d" width="100" height="4" fill="#10b981" rx="2"/>`+"\n", Height-60)
	fmt.Fprintf(&b, `  <text x="200" y="%d" font-size="24" fill="#6b7280" font-family="Arial, sans-serif" font-weight="500">%s</text>`+"\n",
		Height-40, EscapeXML(domain))
	b.WriteString("</svg>")
	return b.String()
}
