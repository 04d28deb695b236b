package remote

import "strings"

// DefaultInstruction precedes the user text in every request.
const DefaultInstruction = "Formalize the following text. Do not add any extra information, just the formalized text. " +
	"For example, if the input is 'idk maybe we should go', the output should be 'I do not know, perhaps we should go.':"

// BuildPrompt joins instruction and text with a blank line.
func BuildPrompt(instruction, text string) string {
	var sb strings.Builder
	sb.Grow(len(instruction) + len(text) + 2)
	sb.WriteString(instruction)
	sb.WriteString("\n\n")
	sb.WriteString(text)
	return sb.String()
}
