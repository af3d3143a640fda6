package textkit

import (
	"encoding/json"
	"fmt"
	"html"
	"net/url"
)

// EscapeMode selects the escaping scheme applied by Escape.
type EscapeMode string

const (
	EscapeURL        EscapeMode = "url"        // percent-encode for a query component
	EscapeHTML       EscapeMode = "html"       // entity-escape <, >, &, quotes
	EscapeJSONString EscapeMode = "json"       // JSON string literal, including quotes
	UnescapeURL      EscapeMode = "url-decode" // inverse of url
	UnescapeHTML     EscapeMode = "html-decode"
)

// Escape applies the named escaping scheme to the text.
func Escape(text string, mode EscapeMode) (string, error) {
	switch mode {
	case EscapeURL:
		return url.QueryEscape(text), nil
	case UnescapeURL:
		out, err := url.QueryUnescape(text)
		if err != nil {
			return "", fmt.Errorf("decoding url escapes: %w", err)
		}
		return out, nil
	case EscapeHTML:
		return html.EscapeString(text), nil
	case UnescapeHTML:
		return html.UnescapeString(text), nil
	case EscapeJSONString:
		out, err := json.Marshal(text)
		if err != nil {
			return "", fmt.Errorf("encoding json string: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown escape mode %q", mode)
	}
}
