package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	v := Current()
	assert.NotEmpty(t, v.Version)
	assert.Equal(t, v.Version, v.String())

	v.Commit = "abcdef1"
	assert.Equal(t, v.Version+"+abcdef1", v.String())
}
