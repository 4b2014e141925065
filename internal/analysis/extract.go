package analysis

import (
	"encoding/json"
)

// ExtractJSONObject recovers the first balanced JSON object from free-form
// model output. The model is instructed to emit JSON only, but may wrap the
// payload in markdown fences or surrounding prose; extraction tolerates such
// wrapping by scanning for a balanced bracket pair instead of requiring an
// exact match at position zero.
func ExtractJSONObject(text string) (string, error) {
	return extractBalanced(text, '{', '}')
}

// ExtractJSONArray recovers the first balanced JSON array from free-form
// model output.
func ExtractJSONArray(text string) (string, error) {
	return extractBalanced(text, '[', ']')
}

// extractBalanced scans from the first opening bracket, tracking nesting
// depth and string/escape state character by character, so brackets embedded
// in string values or nested structures cannot truncate the payload.
func extractBalanced(text string, open, close rune) (string, error) {
	runes := []rune(text)

	start := -1
	for i, r := range runes {
		if r == open {
			start = i
			break
		}
	}
	if start < 0 {
		return "", &ExtractionError{Message: "no JSON found in response"}
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(runes); i++ {
		r := runes[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return string(runes[start : i+1]), nil
			}
		}
	}

	return "", &ParseError{
		Message: "unbalanced JSON in response",
		Snippet: snippet(text),
	}
}

// unmarshalRecovered parses an already-extracted JSON value into v. text is
// the original model output, carried only for error snippets; the bracket
// scan is never repeated.
func unmarshalRecovered(raw, text string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return &ParseError{
			Message: "failed to parse JSON response",
			Snippet: snippet(text),
			Cause:   err,
		}
	}
	return nil
}
