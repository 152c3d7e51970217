package draft

import "unicode"

// Splice replaces the mention being typed at the caret with @name. It finds
// the nearest '@' at or before the caret with no whitespace in between,
// replaces from there through the end of the contiguous non-whitespace run,
// and appends one space only when the next character is not already
// whitespace and not end of text. The returned caret sits after the token
// and the space, when one was added.
//
// If no '@' is reachable from the caret the draft is returned unchanged.
func Splice(text string, caret int, name string) (string, int) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(text) {
		caret = len(text)
	}

	atIdx := -1
	for i := caret - 1; i >= 0; i-- {
		c := rune(text[i])
		if unicode.IsSpace(c) {
			break
		}
		if text[i] == '@' {
			atIdx = i
			break
		}
	}
	if atIdx == -1 {
		return text, caret
	}

	runEnd := atIdx
	for runEnd < len(text) && !unicode.IsSpace(rune(text[runEnd])) {
		runEnd++
	}

	token := "@" + name
	spacer := ""
	if runEnd < len(text) && !unicode.IsSpace(rune(text[runEnd])) {
		spacer = " "
	}

	newText := text[:atIdx] + token + spacer + text[runEnd:]
	newCaret := atIdx + len(token) + len(spacer)
	return newText, newCaret
}

// RemoveToken deletes every exact @name token from the text, along with one
// trailing space per occurrence when present. Matching is non-overlapping
// and whole-token: @name-v2 is left alone when removing @name. The caret is
// shifted left past any removals that happened before it.
func RemoveToken(text string, caret int, name string) (string, int) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(text) {
		caret = len(text)
	}

	token := "@" + name
	var out []byte
	newCaret := caret

	i := 0
	for i < len(text) {
		if text[i] == '@' && (i == 0 || unicode.IsSpace(rune(text[i-1]))) {
			runEnd := i
			for runEnd < len(text) && !unicode.IsSpace(rune(text[runEnd])) {
				runEnd++
			}
			if text[i:runEnd] == token {
				skipEnd := runEnd
				if skipEnd < len(text) && text[skipEnd] == ' ' {
					skipEnd++
				}
				if caret > i {
					removed := skipEnd - i
					if caret < skipEnd {
						removed = caret - i
					}
					newCaret -= removed
				}
				i = skipEnd
				continue
			}
		}
		out = append(out, text[i])
		i++
	}

	if newCaret > len(out) {
		newCaret = len(out)
	}
	return string(out), newCaret
}

// Tokens lists every whitespace-delimited segment of the text that starts
// with '@', without the leading '@'.
func Tokens(text string) []string {
	var tokens []string
	i := 0
	for i < len(text) {
		if unicode.IsSpace(rune(text[i])) {
			i++
			continue
		}
		runEnd := i
		for runEnd < len(text) && !unicode.IsSpace(rune(text[runEnd])) {
			runEnd++
		}
		if text[i] == '@' && runEnd > i+1 {
			tokens = append(tokens, text[i+1:runEnd])
		}
		i = runEnd
	}
	return tokens
}
