package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommit_NeverEmpty(t *testing.T) {
	c := Commit()
	assert.NotEmpty(t, c)
	assert.LessOrEqual(t, len(c), 8)
}

func TestUserAgent(t *testing.T) {
	assert.True(t, strings.HasPrefix(UserAgent(), "bidiq/"))
}

func TestShort(t *testing.T) {
	assert.Equal(t, "1a2b3c4d", short("1a2b3c4d5e6f"))
	assert.Equal(t, "dev", short("dev"))
}
