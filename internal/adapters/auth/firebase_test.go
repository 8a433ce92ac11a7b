package auth

import (
	"context"
	"errors"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIDTokenVerifier struct {
	token     *fbauth.Token
	err       error
	lastToken string
}

func (f *fakeIDTokenVerifier) VerifyIDToken(_ context.Context, idToken string) (*fbauth.Token, error) {
	f.lastToken = idToken
	if f.err != nil {
		return nil, f.err
	}
	return f.token, nil
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	tests := []struct {
		name      string
		client    *fakeIDTokenVerifier
		wantErr   bool
		wantUID   string
		wantEmail string
	}{
		{
			name: "email claim is exposed",
			client: &fakeIDTokenVerifier{token: &fbauth.Token{
				UID:    "uid-c",
				Claims: map[string]interface{}{"email": "c@x.com", "email_verified": true},
			}},
			wantUID:   "uid-c",
			wantEmail: "c@x.com",
		},
		{
			name:      "token without email",
			client:    &fakeIDTokenVerifier{token: &fbauth.Token{UID: "uid-anon", Claims: map[string]interface{}{}}},
			wantUID:   "uid-anon",
			wantEmail: "",
		},
		{
			name:    "provider rejects token",
			client:  &fakeIDTokenVerifier{err: errors.New("ID token has expired")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &firebaseVerifier{client: tt.client}
			id, err := v.Verify(context.Background(), "id-token")
			assert.Equal(t, "id-token", tt.client.lastToken)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, id.UID)
			assert.Equal(t, tt.wantEmail, id.Email)
		})
	}
}
