package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tok, exp, err := Issue("secret", "sess-1", time.Hour)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	id, err := ParseAuth("Bearer "+tok, "secret")
	require.NoError(t, err)
	require.Equal(t, "sess-1", id)

	id, err = ParseAuth(tok, "secret")
	require.NoError(t, err)
	require.Equal(t, "sess-1", id)
}

func TestParseAuth_Rejects(t *testing.T) {
	tok, _, err := Issue("secret", "sess-1", time.Hour)
	require.NoError(t, err)

	_, err = ParseAuth("Bearer "+tok, "other")
	require.Error(t, err)

	_, err = ParseAuth("", "secret")
	require.Error(t, err)

	expired, _, err := Issue("secret", "sess-1", -time.Minute)
	require.NoError(t, err)
	_, err = ParseAuth(expired, "secret")
	require.Error(t, err)
}
