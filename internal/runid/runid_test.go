package runid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	name := New()
	assert.NotEmpty(t, name)
	assert.Regexp(t, `^[A-Z]`, name)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Brave", title("brave"))
	assert.Equal(t, "", title(""))
}
