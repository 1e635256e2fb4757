package svcerr

import (
	"errors"
	"fmt"
	"testing"

	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"

	"github.com/stretchr/testify/require"
)

func TestCodeExtractor(t *testing.T) {
	require.Equal(t, ErrNotAvailable, Code(fmt.Errorf("request: %w", Make(ErrNotAvailable))))
	require.Equal(t, ErrBadInput, Code(Makef(ErrBadInput, "name required")))
	require.Equal(t, ErrCode(""), Code(errors.New("plain")))
	require.Equal(t, "BAD_INPUT: name required", Makef(ErrBadInput, "name required").Error())
}

func TestFromStore(t *testing.T) {
	require.Equal(t, ErrSessionNotFound, Code(FromStore(sessionrepo.ErrNotFound)))
	other := errors.New("redis down")
	require.ErrorIs(t, FromStore(other), other)
	require.NoError(t, FromStore(nil))
}
