// Package profile holds the static portfolio content the assistant is
// allowed to state without consulting any remote source.
package profile

const (
	Name      = "Uditya Narayan Tiwari"
	Email     = "tiwarimerit@gmail.com"
	GitHubURL = "https://github.com/udityamerit"
	LinkedIn  = "https://www.linkedin.com/in/uditya-narayan-tiwari-562332289/"

	// GitHubUser is the account queried by the live fact gatherer.
	GitHubUser = "udityamerit"
)

// StaticBlurb is the always-available narrative fragment appended to every
// fact bundle, so the prompt keeps a baseline even when every live source
// is unreachable.
const StaticBlurb = "Portfolio: Computer Science Engineering student at VIT Bhopal " +
	"specializing in AI/ML. Expert in Python, Machine Learning, Deep Learning. " +
	"350+ LeetCode problems solved. Winner of InnovMinds Expo Hackathon."

// StaticBlurbLabel tags the blurb's contribution in a bundle's sources.
const StaticBlurbLabel = "Portfolio Data"

// FallbackReply is returned whenever the remote completion path fails. It
// restates the core profile so the user never sees a broken answer.
const FallbackReply = "I'm having trouble reaching my knowledge base right now, " +
	"but here is the essential profile:\n\n" +
	"• " + Name + " — B.Tech CSE (AI & ML) at VIT Bhopal (2023-2027)\n" +
	"• Focus: Python, Machine Learning, Deep Learning\n" +
	"• Email: " + Email + "\n" +
	"• GitHub: " + GitHubURL + "\n\n" +
	"Please try again in a moment."

// FallbackLabel marks a fallback reply. The UI suppresses error-class
// labels from the visible sources list, so this must stay distinguishable
// from real provenance labels.
const FallbackLabel = "Connection Error"

// PredefinedLabel marks canned replies that never touched the network.
const PredefinedLabel = "Pre-defined"
