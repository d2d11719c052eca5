package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "scholarlink:catalog", Key("catalog"))
	assert.Equal(t, "scholarlink:listing:abc", Key("listing", " ", "abc"))
	assert.Equal(t, "scholarlink", Key())
}
