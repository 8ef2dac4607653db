package generate

import (
	"fmt"
	"regexp"
	"strings"
)

// wholeFenceRe matches output that is exactly one fenced code block,
// which models sometimes wrap plain prose in despite instructions.
var wholeFenceRe = regexp.MustCompile("(?s)\\A```[a-zA-Z]*\\s*\n?(.*?)\n?```\\s*\\z")

// fenceRe finds the first fenced code block anywhere in the output.
var fenceRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\n?(.*?)\n?```")

// CleanOutput trims the response and unwraps it when the model fenced
// the entire answer. Fences inside a larger response are left alone:
// posts may legitimately contain code snippets.
func CleanOutput(text string) string {
	text = strings.TrimSpace(text)
	if m := wholeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return text
}

// ExtractDiagram pulls the flowchart source out of a diagram response.
// It prefers the first fenced block, falling back to the raw text when
// the model skipped the fence.
func ExtractDiagram(text string) (string, error) {
	if m := fenceRe.FindStringSubmatch(text); len(m) > 1 {
		text = m[1]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no diagram content in response")
	}
	return text, nil
}
