// Package intent assigns a coarse category to a user utterance so the
// composer can answer trivial exchanges without touching the network.
package intent

import "regexp"

type Category string

const (
	CategoryGreeting     Category = "greeting"
	CategoryContact      Category = "contact_request"
	CategoryResume       Category = "resume_request"
	CategoryGratitude    Category = "gratitude"
	CategoryGeneralQuery Category = "general_query"
)

// matcher pairs a category with its whole-word trigger pattern. Patterns
// match whole words only: "hi" must not fire inside "this".
type matcher struct {
	category Category
	pattern  *regexp.Regexp
}

// Matchers run in this order; the first hit wins and everything else
// falls through to the general-query catch-all.
var matchers = []matcher{
	{CategoryGreeting, regexp.MustCompile(`(?i)\b(hello|hi|hey|greetings)\b`)},
	{CategoryContact, regexp.MustCompile(`(?i)\b(contact|email|reach out|connect)\b`)},
	{CategoryResume, regexp.MustCompile(`(?i)\b(resume|cv)\b`)},
	{CategoryGratitude, regexp.MustCompile(`(?i)\b(thank you|thanks|thank|thx)\b`)},
}

// Classify returns the category for a raw utterance. Pure and
// deterministic: same input, same category, no state.
func Classify(text string) Category {
	for _, m := range matchers {
		if m.pattern.MatchString(text) {
			return m.category
		}
	}
	return CategoryGeneralQuery
}
