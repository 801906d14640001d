package credentials

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HashPassword_VerifiesOwnOutput(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	assert.True(t, VerifyPassword("Secret123!", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func Test_HashPassword_SaltsEachCall(t *testing.T) {
	first, err := HashPassword("Secret123!")
	require.NoError(t, err)
	second, err := HashPassword("Secret123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("Secret123!", first))
	assert.True(t, VerifyPassword("Secret123!", second))
}

func Test_HashPassword_EmptyRejected(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
}

func Test_VerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("anything", ""))
}

func Test_GenerateMemberID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^MV-\d{7}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateMemberID())
	}
}

func Test_GeneratePIN_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}$`)
	for i := 0; i < 50; i++ {
		pin := GeneratePIN()
		assert.Regexp(t, pattern, pin)
		assert.Len(t, pin, 4)
	}
}
