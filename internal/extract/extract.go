package extract

import "strings"

// StripFences removes surrounding markdown code-fence markers from raw model
// output. The opening fence may carry a language tag (```json). Content is
// returned with surrounding whitespace trimmed; no other normalization is
// performed, so a syntactically broken payload stays broken for the caller to
// reject.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
		if tag := "json"; strings.EqualFold(firstN(text, len(tag)), tag) {
			text = text[len(tag):]
		}
		text = strings.TrimSpace(text)
	}
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
