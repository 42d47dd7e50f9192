// Package prompt selects the effective prompt text for an OCR request from a
// request override, a named prompt table, or the process default.
package prompt

import "strings"

// DefaultMode is the prompt table key used when no mode is given or the
// given mode is unknown.
const DefaultMode = "markdown"

// table maps prompt-mode keys to prompt text. Immutable after load.
var table = map[string]string{
	"markdown":       "<image>\n<|grounding|>Convert the document to markdown.",
	"ocr":            "<image>\nFree OCR.",
	"tables":         "<image>\n<|grounding|>Extract all tables and format them as markdown tables.",
	"course_catalog": "<image>\n<|grounding|>Extract course information including course number, title, credits, and description. Format as structured data.",
}

// Default returns the process-wide default prompt.
func Default() string { return table[DefaultMode] }

// ForMode returns the prompt registered for mode, falling back to the
// default prompt when the mode is unknown.
func ForMode(mode string) string {
	if p, ok := table[mode]; ok {
		return p
	}
	return table[DefaultMode]
}

// Modes returns the registered prompt-mode keys.
func Modes() []string {
	modes := make([]string, 0, len(table))
	for m := range table {
		modes = append(modes, m)
	}
	return modes
}

// Resolve picks the effective prompt: a non-blank override wins verbatim,
// then a named mode, then the default. It cannot fail.
func Resolve(override, mode string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	if mode != "" {
		return ForMode(mode)
	}
	return Default()
}
