package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@x.com", NormalizeEmail("  Alice@X.com "))
}

func TestIsEmailDomainValidRejectsMissingDomain(t *testing.T) {
	assert.False(t, IsEmailDomainValid("alice"))
	assert.False(t, IsEmailDomainValid("alice@"))
}

func TestIsEmailFormatValid(t *testing.T) {
	assert.True(t, IsEmailFormatValid("a@x.com"))
	assert.False(t, IsEmailFormatValid("a@"))
	assert.False(t, IsEmailFormatValid("not an email"))
	assert.False(t, IsEmailFormatValid(""))
}
