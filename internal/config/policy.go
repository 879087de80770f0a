package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // timezones resolve without a system zoneinfo

	"github.com/robfig/cron"
	"gopkg.in/yaml.v3"

	"github.com/mishasvintus/document_review_service/internal/service"
)

// PolicyConfig is the workflow policy file.
type PolicyConfig struct {
	ResponseDeadlineDays         int    `yaml:"response_deadline_days"`
	ReviewDeadlineDays           int    `yaml:"review_deadline_days"`
	Timezone                     string `yaml:"timezone"`
	ExpirePendingCron            string `yaml:"expire_pending_cron"`
	ExpireAcceptedCron           string `yaml:"expire_accepted_cron"`
	ResetDocumentOnPendingExpiry bool   `yaml:"reset_document_on_pending_expiry"`

	location *time.Location
}

// DefaultPolicy returns the policy used when no file is given.
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		ResponseDeadlineDays: 1,
		ReviewDeadlineDays:   3,
		Timezone:             "Local",
		ExpirePendingCron:    "0 0 0 * * *",
		ExpireAcceptedCron:   "0 0 0 * * *",
		location:             time.Local,
	}
}

// LoadPolicy reads a YAML policy from path. Keys missing from the file keep
// their defaults; an empty path returns the defaults.
func LoadPolicy(path string) (*PolicyConfig, error) {
	p := DefaultPolicy()
	path = strings.TrimSpace(path)
	if path == "" {
		return &p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid policy file %s: %w", path, err)
	}

	return &p, nil
}

func (p *PolicyConfig) validate() error {
	var errs []error

	if p.ResponseDeadlineDays < 1 {
		errs = append(errs, fmt.Errorf("response_deadline_days must be at least 1, got %d", p.ResponseDeadlineDays))
	}
	if p.ReviewDeadlineDays < 1 {
		errs = append(errs, fmt.Errorf("review_deadline_days must be at least 1, got %d", p.ReviewDeadlineDays))
	}

	loc, err := time.LoadLocation(strings.TrimSpace(p.Timezone))
	if err != nil {
		errs = append(errs, fmt.Errorf("unknown timezone %q", p.Timezone))
	}
	p.location = loc

	for key, spec := range map[string]string{
		"expire_pending_cron":  p.ExpirePendingCron,
		"expire_accepted_cron": p.ExpireAcceptedCron,
	} {
		if strings.TrimSpace(spec) == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
			continue
		}
		if _, err := cron.Parse(spec); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

// Location returns the policy timezone.
func (p PolicyConfig) Location() *time.Location {
	if p.location == nil {
		return time.Local
	}
	return p.location
}

// Service converts the file form into the workflow policy.
func (p PolicyConfig) Service() service.Policy {
	return service.Policy{
		ResponseDeadlineDays:         p.ResponseDeadlineDays,
		ReviewDeadlineDays:           p.ReviewDeadlineDays,
		Location:                     p.Location(),
		ResetDocumentOnPendingExpiry: p.ResetDocumentOnPendingExpiry,
	}
}
