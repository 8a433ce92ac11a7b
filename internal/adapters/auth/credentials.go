package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ServiceAccount is a decoded Firebase service account credential.
// It is built once at startup and never modified.
type ServiceAccount struct {
	ProjectID   string
	ClientEmail string
	raw         []byte
}

// JSON returns a copy of the credential document.
func (s *ServiceAccount) JSON() []byte {
	out := make([]byte, len(s.raw))
	copy(out, s.raw)
	return out
}

type serviceAccountFile struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
}

// DecodeServiceAccount decodes a base64-encoded service account JSON blob.
// Padded and unpadded standard encodings are accepted.
func DecodeServiceAccount(encoded string) (*ServiceAccount, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, errors.New("service account key is empty")
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		var rawErr error
		raw, rawErr = base64.RawStdEncoding.DecodeString(encoded)
		if rawErr != nil {
			return nil, fmt.Errorf("decode service account key: %w", err)
		}
	}
	var file serviceAccountFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}
	if file.Type != "" && file.Type != "service_account" {
		return nil, fmt.Errorf("unexpected credential type %q", file.Type)
	}
	return &ServiceAccount{
		ProjectID:   file.ProjectID,
		ClientEmail: file.ClientEmail,
		raw:         raw,
	}, nil
}
