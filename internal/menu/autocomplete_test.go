package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteStopsAtNextSeparator(t *testing.T) {
	candidates := []string{"work/site1", "work/site2"}

	got, ok := Complete(candidates, "", "w")
	assert.True(t, ok)
	assert.Equal(t, "work/", got)

	got, ok = Complete(candidates, "work/", "work/")
	assert.True(t, ok)
	assert.Equal(t, "work/site1", got)
}

func TestCompleteDescendsOneLevelAtATime(t *testing.T) {
	candidates := []string{Back, "a/b/c/leaf", "a/other"}

	steps := []struct {
		previous string
		partial  string
		want     string
	}{
		{"", "a", "a/"},
		{"a/", "a/", "a/b/"},
		{"a/b/", "a/b/", "a/b/c/"},
		{"a/b/c/", "a/b/c/", "a/b/c/leaf"},
	}
	for _, step := range steps {
		got, ok := Complete(candidates, step.previous, step.partial)
		assert.True(t, ok)
		assert.Equal(t, step.want, got, "completing %q after %q", step.partial, step.previous)
	}
}

func TestCompleteFirstMatchWins(t *testing.T) {
	got, _ := Complete([]string{Back, "mailbox", "mail"}, "", "mail")
	assert.Equal(t, "mailbox", got)
}

func TestCompleteFallsBackToSecondCandidate(t *testing.T) {
	got, ok := Complete([]string{Back, "personal/bank", "work"}, "", "zzz")
	assert.True(t, ok)
	assert.Equal(t, "personal/", got)
}

func TestCompleteKeepsPreviousWhenNotAPrefix(t *testing.T) {
	got, ok := Complete([]string{"mail"}, "work/", "m")
	assert.True(t, ok)
	assert.Equal(t, "work/mail", got)
}

func TestCompleteWithoutDefault(t *testing.T) {
	_, ok := Complete(nil, "", "x")
	assert.False(t, ok)

	_, ok = Complete([]string{Back}, "", "x")
	assert.False(t, ok)
}

func TestWithSeparator(t *testing.T) {
	assert.Equal(t, "work/", withSeparator("work"))
	assert.Equal(t, "work/", withSeparator("work/"))
	assert.Equal(t, "", withSeparator(""))
}
