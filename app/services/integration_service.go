package services

import (
	"errors"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
	"github.com/shashiranjanraj/bizdesk/config"
	"github.com/shashiranjanraj/bizdesk/pkg/crypt"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// IntegrationService serves the settings page: the fixed integration list
// and the API key. The key lives under the ad-hoc "apiKey" store key,
// AES-GCM encrypted when APP_KEY is configured.
type IntegrationService struct {
	integrations repositories.Repository[*models.Integration]
	st           *store.Store
}

func NewIntegrationService(integrations repositories.Repository[*models.Integration], st *store.Store) *IntegrationService {
	return &IntegrationService{integrations: integrations, st: st}
}

func (s *IntegrationService) List() ([]*models.Integration, error) {
	return s.integrations.All()
}

// APIKey returns the stored key in plain text, or "" when none is set.
func (s *IntegrationService) APIKey() (string, error) {
	var stored string
	ok, err := s.st.GetValue("apiKey", &stored)
	if err != nil || !ok {
		return "", err
	}

	if config.AppKey() == "" {
		return stored, nil
	}
	plain, err := crypt.Decrypt(stored)
	if errors.Is(err, crypt.ErrDecrypt) {
		// Key was stored before encryption was enabled.
		return stored, nil
	}
	return plain, err
}

// SetAPIKey stores the key, encrypting it when APP_KEY is configured.
// An empty key removes the entry.
func (s *IntegrationService) SetAPIKey(key string) error {
	if key == "" {
		return s.st.DeleteValue("apiKey")
	}

	stored := key
	if config.AppKey() != "" {
		enc, err := crypt.Encrypt(key)
		if err != nil {
			return err
		}
		stored = enc
	}
	return s.st.PutValue("apiKey", stored)
}
