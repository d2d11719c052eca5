// Package catalog loads the scholarship catalog from its configured source and
// keeps a cached snapshot for the listing pipeline.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/pkg/config"
)

// Source yields the full scholarship catalog.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]models.Scholarship, error)
}

type scholarshipLister interface {
	ListAll(ctx context.Context) ([]models.Scholarship, error)
}

// PostgresSource reads the catalog from the scholarships table.
type PostgresSource struct {
	repo scholarshipLister
}

// NewPostgresSource wraps the scholarship repository.
func NewPostgresSource(repo scholarshipLister) *PostgresSource {
	return &PostgresSource{repo: repo}
}

// Name implements Source.
func (s *PostgresSource) Name() string { return config.CatalogSourcePostgres }

// Load implements Source.
func (s *PostgresSource) Load(ctx context.Context) ([]models.Scholarship, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from postgres: %w", err)
	}
	return items, nil
}

// FileSource reads a bundled JSON catalog from disk.
type FileSource struct {
	path string
}

// NewFileSource returns a source reading path on every load.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements Source.
func (s *FileSource) Name() string { return config.CatalogSourceFile }

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) ([]models.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", s.path, err)
	}
	return Decode(payload)
}

// Decode parses a catalog document. Both a bare array and an object with a
// "scholarships" array are accepted. Records without an id are dropped since
// nothing can be saved or tracked against them.
func Decode(payload []byte) ([]models.Scholarship, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return []models.Scholarship{}, nil
	}

	var items []models.Scholarship
	if trimmed[0] == '{' {
		var envelope struct {
			Scholarships []models.Scholarship `json:"scholarships"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		items = envelope.Scholarships
	} else if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	kept := make([]models.Scholarship, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			continue
		}
		if item.Eligibility == nil {
			item.Eligibility = models.EligibilityRules{}
		}
		kept = append(kept, item)
	}
	return kept, nil
}

// NewSource builds the source selected by cfg.Source.
func NewSource(cfg config.CatalogConfig, repo scholarshipLister) (Source, error) {
	switch cfg.Source {
	case config.CatalogSourceFile:
		if strings.TrimSpace(cfg.File) == "" {
			return nil, fmt.Errorf("catalog file source requires CATALOG_FILE")
		}
		return NewFileSource(cfg.File), nil
	case config.CatalogSourceS3:
		return NewS3Source(cfg.S3)
	default:
		if repo == nil {
			return nil, fmt.Errorf("catalog postgres source requires a repository")
		}
		return NewPostgresSource(repo), nil
	}
}
