package domain

import "strings"

// PromptUnits counts the length of a prompt for limit enforcement.
//
// CJK text carries no inter-word whitespace, so plain whitespace
// tokenization would undercount non-Latin prompts. Every Han ideograph,
// hiragana, or katakana codepoint therefore counts as one unit; the
// remaining text is tokenized on whitespace and each token counts as one
// unit. The two counts are summed.
func PromptUnits(prompt string) int {
	cjk := 0
	var rest strings.Builder
	for _, r := range prompt {
		if isCJK(r) {
			cjk++
			rest.WriteRune(' ')
			continue
		}
		rest.WriteRune(r)
	}
	return cjk + len(strings.Fields(rest.String()))
}

func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // Han
		return true
	case r >= 0x3040 && r <= 0x309F: // hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // katakana
		return true
	}
	return false
}
