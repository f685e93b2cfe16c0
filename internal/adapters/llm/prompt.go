package llm

import (
	"strings"

	"github.com/udityamerit/portfolio-assistant/internal/profile"
)

const personaPreamble = `You are ` + profile.Name + `'s intelligent AI assistant. Provide concise, essential, and highly relevant responses. Your primary goal is to assist users efficiently.

CORE PROFILE:
- Name: ` + profile.Name + `
- Education: B.Tech CSE (AI & ML) at VIT Bhopal (2023-2027)
- Email: ` + profile.Email + `
- GitHub: ` + profile.GitHubURL + `
- LinkedIn: ` + profile.LinkedIn + `

INSTRUCTIONS:
- Be conversational and direct. Use the provided chat history to understand follow-up questions.
- Keep responses under 150 words. Use bullet points for lists.`

// BuildPrompt assembles the persona preamble plus the live facts gathered
// for this exchange. The user question itself travels separately.
func BuildPrompt(factsNarrative string) string {
	var b strings.Builder
	b.WriteString(personaPreamble)
	if factsNarrative != "" {
		b.WriteString("\n\nLIVE DATA CONTEXT:\n")
		b.WriteString(factsNarrative)
	}
	return b.String()
}
