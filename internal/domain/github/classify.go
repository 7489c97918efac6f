package github

import "strings"

// Classifier decides whether a repository belongs to the portfolio's
// mobile-development domain. It is a pure predicate over the record:
// no network, no storage, deterministic for the same input.
type Classifier struct {
	languages []string
	keywords  []string
}

// NewMobileClassifier matches the two Android languages plus the
// framework and UI-toolkit keywords the portfolio is about.
func NewMobileClassifier() *Classifier {
	return &Classifier{
		languages: []string{"Kotlin", "Java"},
		keywords:  []string{"android", "flutter", "jetpack", "compose"},
	}
}

func (c *Classifier) Relevant(repo Repo) bool {
	if repo.Language != nil {
		for _, lang := range c.languages {
			if strings.EqualFold(*repo.Language, lang) {
				return true
			}
		}
	}

	parts := []string{repo.Name}
	if repo.Description != nil {
		parts = append(parts, *repo.Description)
	}
	parts = append(parts, repo.Topics...)
	blob := strings.ToLower(strings.Join(parts, " "))

	for _, kw := range c.keywords {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}
