package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCredentials(t *testing.T) {
	c, err := StaticCredentials()
	require.NoError(t, err)
	assert.Equal(t, credentialIterations, c.Iterations)
	assert.NotEmpty(t, c.Salt)
	assert.NotEmpty(t, c.DerivedKey)

	assert.True(t, c.Validate("admin", "123456"))
	assert.False(t, c.Validate("admin", "12345"))
	assert.False(t, c.Validate("Admin", "123456"))
	assert.False(t, c.Validate("", ""))
	assert.False(t, c.Validate("123456", "admin"))
}

func TestCredentialsBrokenKey(t *testing.T) {
	c := Credentials{Username: "admin", DerivedKey: "zz", Iterations: 1}
	assert.False(t, c.Validate("admin", "123456"))
}
