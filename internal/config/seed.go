package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mishasvintus/document_review_service/internal/domain"
)

// Seed lists the users and documents loaded into the store at startup.
type Seed struct {
	Users []struct {
		ID       uuid.UUID `yaml:"id"`
		FullName string    `yaml:"full_name"`
		Email    string    `yaml:"email"`
		Role     string    `yaml:"role"`
		Status   string    `yaml:"status"`
	} `yaml:"users"`
	Documents []struct {
		ID        uuid.UUID `yaml:"id"`
		Title     string    `yaml:"title"`
		IsPremium bool      `yaml:"is_premium"`
		Status    string    `yaml:"status"`
	} `yaml:"documents"`
}

// LoadSeed reads a seed file. An empty path yields an empty seed.
func LoadSeed(path string) (*Seed, error) {
	var s Seed
	if path == "" {
		return &s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	return &s, nil
}

// DomainUsers converts the seeded users, validating their enums.
func (s *Seed) DomainUsers() ([]domain.User, error) {
	out := make([]domain.User, 0, len(s.Users))
	for _, u := range s.Users {
		role := domain.Role(u.Role)
		status := domain.UserStatus(u.Status)
		if !role.IsValid() {
			return nil, fmt.Errorf("user %s: invalid role %q", u.ID, u.Role)
		}
		if !status.IsValid() {
			return nil, fmt.Errorf("user %s: invalid status %q", u.ID, u.Status)
		}
		out = append(out, domain.User{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     role,
			Status:   status,
		})
	}
	return out, nil
}

// DomainDocuments converts the seeded documents, validating their status.
func (s *Seed) DomainDocuments() ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(s.Documents))
	for _, d := range s.Documents {
		status, err := domain.NewDocStatus(d.Status)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", d.ID, err)
		}
		out = append(out, domain.Document{
			ID:        d.ID,
			Title:     d.Title,
			IsPremium: d.IsPremium,
			Status:    status,
		})
	}
	return out, nil
}
