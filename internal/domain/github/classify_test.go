package github

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestClassifier_LanguageMatch(t *testing.T) {
	c := NewMobileClassifier()

	assert.True(t, c.Relevant(Repo{Name: "some-app", Language: strPtr("Kotlin")}))
	assert.True(t, c.Relevant(Repo{Name: "some-app", Language: strPtr("kotlin")}))
	assert.True(t, c.Relevant(Repo{Name: "legacy-app", Language: strPtr("Java")}))
	assert.False(t, c.Relevant(Repo{Name: "scripts", Language: strPtr("Python")}))
}

func TestClassifier_KeywordMatch(t *testing.T) {
	c := NewMobileClassifier()

	assert.True(t, c.Relevant(Repo{Name: "my-ANDROID-project"}))
	assert.True(t, c.Relevant(Repo{Name: "app", Description: strPtr("A Flutter experiment")}))
	assert.True(t, c.Relevant(Repo{Name: "app", Topics: []string{"jetpack"}}))
	assert.True(t, c.Relevant(Repo{Name: "ui-kit", Description: strPtr("Built with COMPOSE")}))
	assert.False(t, c.Relevant(Repo{Name: "dotfiles", Description: strPtr("shell configs")}))
}

func TestClassifier_CaseInsensitiveDescription(t *testing.T) {
	c := NewMobileClassifier()

	lower := Repo{Name: "app", Language: strPtr("Kotlin"), Description: strPtr("an android thing")}
	upper := Repo{Name: "app", Language: strPtr("Kotlin"), Description: strPtr("AN ANDROID THING")}

	assert.Equal(t, c.Relevant(lower), c.Relevant(upper))
	assert.True(t, c.Relevant(upper))
}

func TestClassifier_EmptyRecordNotRelevant(t *testing.T) {
	c := NewMobileClassifier()

	empty := Repo{Name: "x", PushedAt: time.Now()}
	assert.False(t, c.Relevant(empty))
}

func TestClassifier_NilFieldsDoNotPanic(t *testing.T) {
	c := NewMobileClassifier()

	assert.NotPanics(t, func() {
		c.Relevant(Repo{Name: "bare"})
	})
}

func TestClassifier_Deterministic(t *testing.T) {
	c := NewMobileClassifier()
	repo := Repo{Name: "weather-app", Topics: []string{"flutter", "dart"}}

	first := c.Relevant(repo)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Relevant(repo))
	}
}
