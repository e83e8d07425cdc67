package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// HolidayRule declares holidays either as one fixed date or as a
// recurrence rule expanded over the generation window.
type HolidayRule struct {
	Label string `yaml:"label" validate:"required"`
	Date  string `yaml:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RRule string `yaml:"rrule,omitempty"`
}

// ShiftTemplate mirrors model.ShiftTemplate for YAML loading.
type ShiftTemplate struct {
	Name    string      `yaml:"name" validate:"required"`
	Active  bool        `yaml:"active"`
	Morning ShiftTiming `yaml:"morning"`
	Evening ShiftTiming `yaml:"evening"`
	Night   ShiftTiming `yaml:"night"`
}

type ShiftTiming struct {
	Start string `yaml:"start" validate:"required,datetime=15:04"`
	End   string `yaml:"end" validate:"required,datetime=15:04"`
}

// Capacity carries the seat constants for the capacity policy.
type Capacity struct {
	NightSeats   int `yaml:"nightSeats" validate:"min=1"`
	EveningSeats int `yaml:"eveningSeats" validate:"min=1"`
}

// Config represents the application configuration
type Config struct {
	// RestDay and WeekStartDay are weekday names ("Friday",
	// "Saturday").
	RestDay      string `yaml:"restDay" validate:"required"`
	WeekStartDay string `yaml:"weekStartDay" validate:"required"`

	Capacity Capacity `yaml:"capacity"`

	// DatabaseURL may be left empty and supplied via the
	// ROSTERD_DATABASE_URL environment variable instead.
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	HolidayRules   []HolidayRule   `yaml:"holidayRules,omitempty" validate:"dive"`
	ShiftTemplates []ShiftTemplate `yaml:"shiftTemplates,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

const configFileName = "roster_config.yaml"

// Load loads and validates the configuration from roster_config.yaml,
// looking in the current directory first and then the home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile(configFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(configPath)
}

// LoadWithEnv loads <env>_roster_config.yaml, allowing separate test
// and production configurations.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(fmt.Sprintf("%s_%s", env, configFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file for env %q: %w", env, err)
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.RestDay == "" {
		cfg.RestDay = "Friday"
	}
	if cfg.WeekStartDay == "" {
		cfg.WeekStartDay = "Saturday"
	}
	if cfg.Capacity.NightSeats == 0 {
		cfg.Capacity.NightSeats = 1
	}
	if cfg.Capacity.EveningSeats == 0 {
		cfg.Capacity.EveningSeats = 2
	}
}

// Validate validates the configuration struct, the weekday names, the
// holiday rule syntax and that at most one shift template is active.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := ParseWeekday(cfg.RestDay); err != nil {
		return fmt.Errorf("invalid restDay: %w", err)
	}
	if _, err := ParseWeekday(cfg.WeekStartDay); err != nil {
		return fmt.Errorf("invalid weekStartDay: %w", err)
	}

	for i, rule := range cfg.HolidayRules {
		if rule.Date == "" && rule.RRule == "" {
			return fmt.Errorf("holidayRules[%d] (%s): needs either date or rrule", i, rule.Label)
		}
		if rule.RRule != "" {
			if _, err := rrule.StrToRRule(rule.RRule); err != nil {
				return fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
			}
		}
	}

	activeTemplates := 0
	for _, tpl := range cfg.ShiftTemplates {
		if tpl.Active {
			activeTemplates++
		}
	}
	if activeTemplates > 1 {
		return fmt.Errorf("at most one shift template may be active, found %d", activeTemplates)
	}

	return nil
}

// ParseWeekday converts a weekday name to its time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), name) {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}

// RestDayWeekday returns the configured rest day. Validate must have
// accepted the config first.
func (c *Config) RestDayWeekday() time.Weekday {
	wd, _ := ParseWeekday(c.RestDay)
	return wd
}

// WeekStartWeekday returns the configured week start day.
func (c *Config) WeekStartWeekday() time.Weekday {
	wd, _ := ParseWeekday(c.WeekStartDay)
	return wd
}

// ExpandHolidays resolves every holiday rule to concrete dates inside
// [from, until] (inclusive), fixed dates and recurrences alike.
func (c *Config) ExpandHolidays(from, until time.Time) ([]model.Holiday, error) {
	from = model.DateOnly(from)
	until = model.DateOnly(until)

	var holidays []model.Holiday
	for i, rule := range c.HolidayRules {
		if rule.Date != "" {
			date, err := time.ParseInLocation(model.DateFormat, rule.Date, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("invalid date in holidayRules[%d]: %w", i, err)
			}
			if !date.Before(from) && !date.After(until) {
				holidays = append(holidays, model.Holiday{Date: date, Label: rule.Label})
			}
			continue
		}

		r, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}
		r.DTStart(from)
		for _, occurrence := range r.Between(from, until, true) {
			holidays = append(holidays, model.Holiday{
				Date:  model.DateOnly(occurrence),
				Label: rule.Label,
			})
		}
	}

	return holidays, nil
}

// ActiveTemplate returns the active shift template, defaulting to the
// standard timings when the config declares none.
func (c *Config) ActiveTemplate() model.ShiftTemplate {
	for _, tpl := range c.ShiftTemplates {
		if tpl.Active {
			return model.ShiftTemplate{
				Name:    tpl.Name,
				Active:  true,
				Morning: model.ShiftTiming(tpl.Morning),
				Evening: model.ShiftTiming(tpl.Evening),
				Night:   model.ShiftTiming(tpl.Night),
			}
		}
	}
	return DefaultTemplate()
}

// DefaultTemplate is the standard timing set used when no template is
// configured.
func DefaultTemplate() model.ShiftTemplate {
	return model.ShiftTemplate{
		Name:    "Normal",
		Active:  true,
		Morning: model.ShiftTiming{Start: "09:00", End: "18:00"},
		Evening: model.ShiftTiming{Start: "14:00", End: "22:00"},
		Night:   model.ShiftTiming{Start: "22:00", End: "09:00"},
	}
}

// findConfigFile searches for the named file in the current directory
// and then the home directory.
func findConfigFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", name)
}
