package predef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	old := VERSION
	defer func() { VERSION = old }()

	VERSION = ""
	assert.Equal(t, "dev", GetVersion())

	VERSION = "1.4.2"
	assert.Equal(t, "v1.4.2", GetVersion())

	VERSION = "v2.0"
	assert.Equal(t, "v2.0.0", GetVersion())

	VERSION = "nightly"
	assert.Equal(t, "dev", GetVersion())
}
