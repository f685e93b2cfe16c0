// Package facts gathers best-effort live context for the model prompt.
// Every source is optional: a failed fetch drops that fragment and nothing
// else. The gatherer itself can never fail.
package facts

import (
	"context"
	"fmt"
	"strings"

	"resty.dev/v3"

	"github.com/udityamerit/portfolio-assistant/internal/domain"
	"github.com/udityamerit/portfolio-assistant/internal/observability"
	"github.com/udityamerit/portfolio-assistant/internal/profile"
)

const defaultBaseURL = "https://api.github.com"

// fragment is the outcome of one sub-fetch: either a narrative piece plus
// its provenance label, or a skip.
type fragment struct {
	text  string
	label string
	ok    bool
}

// source produces one optional fragment for the bundle.
type source interface {
	fetch(ctx context.Context) fragment
}

type githubUser struct {
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

type githubRepo struct {
	Name     string `json:"name"`
	Stars    int    `json:"stargazers_count"`
	Forks    int    `json:"forks_count"`
	Language string `json:"language"`
}

// profileSource fetches the GitHub user-info endpoint (bio, repo count,
// followers).
type profileSource struct {
	client   *resty.Client
	username string
}

func (s *profileSource) fetch(ctx context.Context) fragment {
	var user githubUser
	res, err := s.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/users/" + s.username)
	if err != nil || !res.IsSuccess() {
		observability.Logger().Warn("github profile fetch skipped", "error", err)
		return fragment{}
	}

	bio := user.Bio
	if bio == "" {
		bio = "AI/ML enthusiast"
	}
	text := fmt.Sprintf("GitHub Profile: %s, %d public repositories, %d followers.",
		bio, user.PublicRepos, user.Followers)
	return fragment{text: text, label: "GitHub API", ok: true}
}

// reposSource fetches the most recently pushed repositories and summarizes
// their names, stars and primary language.
type reposSource struct {
	client   *resty.Client
	username string
	limit    int
}

func (s *reposSource) fetch(ctx context.Context) fragment {
	var repos []githubRepo
	res, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("sort", "pushed").
		SetQueryParam("per_page", "100").
		SetResult(&repos).
		Get("/users/" + s.username + "/repos")
	if err != nil || !res.IsSuccess() || len(repos) == 0 {
		observability.Logger().Warn("github repos fetch skipped", "error", err)
		return fragment{}
	}

	limit := s.limit
	if limit <= 0 || limit > len(repos) {
		limit = len(repos)
	}

	parts := make([]string, 0, limit)
	for _, r := range repos[:limit] {
		entry := r.Name
		if r.Language != "" {
			entry += " (" + r.Language + ")"
		}
		if r.Stars > 0 || r.Forks > 0 {
			entry += fmt.Sprintf(" [%d stars, %d forks]", r.Stars, r.Forks)
		}
		parts = append(parts, entry)
	}

	return fragment{
		text:  "Recent repositories: " + strings.Join(parts, ", ") + ".",
		label: "GitHub Repos",
		ok:    true,
	}
}

// staticSource always contributes the fixed portfolio blurb. It keeps the
// bundle non-empty when every live source is down.
type staticSource struct{}

func (staticSource) fetch(context.Context) fragment {
	return fragment{text: profile.StaticBlurb, label: profile.StaticBlurbLabel, ok: true}
}

// Gatherer aggregates fragments from its sources in a fixed order:
// profile stats, then repositories, then the static blurb.
type Gatherer struct {
	sources []source
}

// NewGatherer builds the default source chain against the public GitHub
// API for the given account.
func NewGatherer(username string) *Gatherer {
	return NewGathererWithBaseURL(username, defaultBaseURL)
}

// NewGathererWithBaseURL allows pointing the GitHub sources at a stub
// server in tests.
func NewGathererWithBaseURL(username, baseURL string) *Gatherer {
	client := resty.New().SetBaseURL(baseURL)
	return &Gatherer{
		sources: []source{
			&profileSource{client: client, username: username},
			&reposSource{client: client, username: username, limit: 5},
			staticSource{},
		},
	}
}

// Gather runs every source and concatenates the successful fragments.
// The result always has a non-empty narrative and at least the static
// blurb's label.
func (g *Gatherer) Gather(ctx context.Context) domain.FactBundle {
	var (
		texts  []string
		labels []string
	)
	for _, src := range g.sources {
		f := src.fetch(ctx)
		if !f.ok {
			continue
		}
		texts = append(texts, f.text)
		labels = append(labels, f.label)
	}

	return domain.FactBundle{
		Narrative: strings.Join(texts, " "),
		Sources:   labels,
	}
}
