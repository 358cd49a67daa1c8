package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kreatorpajak/freelance-tax/internal/domain"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingProfile     = errors.New("profile is required")
	ErrInvalidStatus      = errors.New("invalid marital status")
	ErrNegativeDependents = errors.New("dependents count cannot be negative")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrInvalidFrequency   = errors.New("frequency must be monthly or annual")
	ErrInvalidTaxYear     = errors.New("invalid tax year")
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// InputParser handles parsing of calculation input files.
//
// The parser is the validation boundary: entries with negative amounts or
// unknown frequencies are rejected here, so the engine can assume
// well-formed input.
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, normalizes and validates a configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.normalize(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// normalize fills identifiers and the tax year when they are absent
func (ip *InputParser) normalize(config *domain.Configuration) {
	if config.TaxYear == 0 {
		config.TaxYear = nowFunc().Year()
	}
	if config.Profile.ID == "" {
		config.Profile.ID = uuid.NewString()
	}
	for i := range config.Income {
		if config.Income[i].ID == "" {
			config.Income[i].ID = uuid.NewString()
		}
	}
	for i := range config.Costs {
		if config.Costs[i].ID == "" {
			config.Costs[i].ID = uuid.NewString()
		}
	}
}

// ValidateConfiguration validates the loaded configuration. Every problem is
// reported, not only the first.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	var err error

	if config.TaxYear < 2000 || config.TaxYear > 2100 {
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrInvalidTaxYear, config.TaxYear))
	}

	err = multierr.Append(err, ip.ValidateProfile(&config.Profile))

	for i, entry := range config.Income {
		if e := validateEntry(entry.Amount.IsNegative(), entry.Frequency); e != nil {
			err = multierr.Append(err, fmt.Errorf("income %d (%s): %w", i, entry.Name, e))
		}
	}
	for i, entry := range config.Costs {
		if e := validateEntry(entry.Amount.IsNegative(), entry.Frequency); e != nil {
			err = multierr.Append(err, fmt.Errorf("cost %d (%s): %w", i, entry.Name, e))
		}
	}

	for i, sc := range config.Scenarios {
		if sc.GrossIncome.IsNegative() || sc.Costs.IsNegative() {
			err = multierr.Append(err, fmt.Errorf("scenario %d (%s): %w", i, sc.Name, ErrNegativeAmount))
		}
	}

	if config.Rules != nil {
		if e := config.Rules.WithDefaults().Validate(); e != nil {
			err = multierr.Append(err, fmt.Errorf("rules: %w", e))
		}
	}

	return err
}

// ValidateProfile validates a taxpayer profile
func (ip *InputParser) ValidateProfile(profile *domain.TaxpayerProfile) error {
	var err error
	if profile.MaritalStatus == "" {
		return fmt.Errorf("%w: marital status missing", ErrMissingProfile)
	}
	if !profile.MaritalStatus.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: %q (want one of %v)", ErrInvalidStatus, profile.MaritalStatus, domain.MaritalStatuses))
	}
	if profile.DependentsCount < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrNegativeDependents, profile.DependentsCount))
	}
	return err
}

func validateEntry(negative bool, freq domain.Frequency) error {
	var err error
	if negative {
		err = multierr.Append(err, ErrNegativeAmount)
	}
	if !freq.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w, got %q", ErrInvalidFrequency, freq))
	}
	return err
}

// SaveConfiguration writes a configuration back out as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
