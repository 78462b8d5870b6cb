package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticate(t *testing.T) {
	c, ok := Authenticate(Directory, "hr@innovative.com", "demo123")
	assert.True(t, ok)
	assert.Equal(t, "Innovative Industries", c.Name)

	_, ok = Authenticate(Directory, "hr@innovative.com", "wrong")
	assert.False(t, ok)

	_, ok = Authenticate(Directory, "HR@innovative.com", "demo123")
	assert.False(t, ok)
}
