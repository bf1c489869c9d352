package utils

import (
	"testing"

	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Dubai Market 2024":          "dubai-market-2024",
		"  Palm   Jumeirah  Villa ":  "palm-jumeirah-villa",
		"Off-Plan: What's Next?":     "off-plan-whats-next",
		"---Already--Hyphenated---":  "already-hyphenated",
		"!!!":                        "",
		"UPPER lower MiXeD":          "upper-lower-mixed",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Dubai Market 2024", "Marina Vista Penthouse", "a b c"}
	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("buyer@example.com"))
	assert.True(t, IsValidEmail("first.last@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("spaces in@example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("64f000000000000000000001", "admin@amzproperties.com", "admin", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims["sub"])
	assert.Equal(t, "admin@amzproperties.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("id", "a@b.co", "admin", cfg)
	require.NoError(t, err)

	other := &config.Config{}
	other.JWT.Secret = "different-secret"
	_, err = ValidateJWT(token, other)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"pool", "gym"}, SplitAndTrim(" pool , gym "))
	assert.Equal(t, []string{"one"}, SplitAndTrim("one,,  ,"))
	assert.Nil(t, SplitAndTrim(""))
}
