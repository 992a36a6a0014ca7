package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fjacquet/financas/internal/logging"
	"fjacquet/financas/internal/models"
)

// KeywordStore reads keyword overrides from a YAML file:
//
//	expense: [gastei, paguei]
//	meal_voucher: [vr, vale refeição]
//	stop_words: [de, no, na]
//
// Lists left out keep their built-in defaults.
type KeywordStore struct {
	Path   string
	logger logging.Logger
}

// NewKeywordStore creates a KeywordStore. An empty path loads nothing.
func NewKeywordStore(path string, logger logging.Logger) *KeywordStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &KeywordStore{Path: path, logger: logger}
}

// LoadKeywords returns the overrides. A missing file is not an error.
func (s *KeywordStore) LoadKeywords() (models.KeywordConfig, error) {
	if s.Path == "" {
		return models.KeywordConfig{}, nil
	}

	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		s.logger.Warn("Keywords file not found, using defaults", logging.F(logging.FieldFile, s.Path))
		return models.KeywordConfig{}, nil
	}
	if err != nil {
		return models.KeywordConfig{}, fmt.Errorf("error reading keywords file: %w", err)
	}

	var kw models.KeywordConfig
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return models.KeywordConfig{}, fmt.Errorf("error parsing keywords file: %w", err)
	}
	s.logger.Debug("Loaded keyword overrides", logging.F(logging.FieldFile, s.Path))
	return kw, nil
}
