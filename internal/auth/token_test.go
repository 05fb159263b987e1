package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	session, err := issuer.Issue()
	require.NoError(t, err)
	_, err = uuid.Parse(session.Subject)
	require.NoError(t, err)

	subject, err := issuer.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Subject, subject)

	other, err := issuer.Issue()
	require.NoError(t, err)
	assert.NotEqual(t, session.Subject, other.Subject)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	session, err := issuer.Issue()
	require.NoError(t, err)

	_, err = NewTokenIssuer("other", time.Hour).Verify(session.Token)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = issuer.Verify("not-a-token")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	expired := NewTokenIssuer("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, err := expired.Issue()
	require.NoError(t, err)
	_, err = issuer.Verify(old.Token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
