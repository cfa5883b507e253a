package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBaseURL(t *testing.T) {
	assert.Equal(t, "https://voidp.dev", GetBaseURL(map[string]string{"BASE_URL": "https://voidp.dev/"}))
	assert.Equal(t, "", GetBaseURL(map[string]string{}))
}

func TestBuildPostURL(t *testing.T) {
	assert.Equal(t, "https://voidp.dev/blog/hello-world/", BuildPostURL("https://voidp.dev/", "hello-world"))
	assert.Equal(t, "/blog/hello-world/", BuildPostURL("", "hello-world"))
	assert.Equal(t, "", BuildPostURL("https://voidp.dev", ""))
}

func TestBuildProjectsURL(t *testing.T) {
	assert.Equal(t, "https://voidp.dev/projects/", BuildProjectsURL("https://voidp.dev", ""))
	assert.Equal(t, "/projects/?tech=C%2B%2B", BuildProjectsURL("", "C++"))
}
