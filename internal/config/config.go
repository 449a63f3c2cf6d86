package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/superplus-ops/forecourt-roster/pkg/core/planner"
	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

// StaffConfig is one roster entry as written in the config file
type StaffConfig struct {
	Name                string   `yaml:"name" validate:"required"`
	Supervisor          bool     `yaml:"supervisor"`
	Male                bool     `yaml:"male"`
	Auxiliary           bool     `yaml:"auxiliary"`
	OvernightSpecialist bool     `yaml:"overnightSpecialist"`
	PrefersLongShifts   bool     `yaml:"prefersLongShifts"`
	FixedDaysOff        []string `yaml:"fixedDaysOff,omitempty"`
	MustWorkDays        []string `yaml:"mustWorkDays,omitempty"`
	TargetHours         int      `yaml:"targetHours,omitempty" validate:"omitempty,min=1"`
}

// ShiftConfig is one catalog shift shape as written in the config file
type ShiftConfig struct {
	Name  string `yaml:"name" validate:"required"`
	Start string `yaml:"start" validate:"required"`
	End   string `yaml:"end" validate:"required"`
}

// PolicyConfig overrides the planner's default policy constants. Zero
// values keep the defaults.
type PolicyConfig struct {
	AnchorDay              string `yaml:"anchorDay,omitempty"`
	AnchorAttendants       int    `yaml:"anchorAttendants,omitempty" validate:"omitempty,min=1"`
	HourCap                int    `yaml:"hourCap,omitempty" validate:"omitempty,min=1"`
	MaxSupervisorsPerDay   int    `yaml:"maxSupervisorsPerDay,omitempty" validate:"omitempty,min=1"`
	ExtendLimit            int    `yaml:"extendLimit,omitempty" validate:"omitempty,min=1"`
	LongShiftThreshold     int    `yaml:"longShiftThreshold,omitempty" validate:"omitempty,min=1"`
	SpecialistNightSpacing int    `yaml:"specialistNightSpacing,omitempty" validate:"omitempty,min=1"`
	FullSpanShift          string `yaml:"fullSpanShift,omitempty"`
	OpeningShift           string `yaml:"openingShift,omitempty"`
	MidShift               string `yaml:"midShift,omitempty"`
	ClosingShift           string `yaml:"closingShift,omitempty"`
	LongAMShift            string `yaml:"longAMShift,omitempty"`
	LongPMShift            string `yaml:"longPMShift,omitempty"`
	OvernightShift         string `yaml:"overnightShift,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL  string         `yaml:"databaseURL" validate:"required"`
	AnchorRule   string         `yaml:"anchorRule" validate:"required"`
	Roster       []StaffConfig  `yaml:"roster" validate:"required,min=1,dive"`
	Shifts       []ShiftConfig  `yaml:"shifts" validate:"required,min=1,dive"`
	DailyTargets map[string]int `yaml:"dailyTargets" validate:"required"`
	Policy       PolicyConfig   `yaml:"policy"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

const configFileName = "forecourt_roster.yaml"

// Load loads and validates the configuration, looking in the current
// directory first and then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for a specific environment
// (forecourt_roster_<env>.yaml)
func LoadWithEnv(env string) (*Config, error) {
	fileName := configFileName
	if env != "" {
		fileName = fmt.Sprintf("forecourt_roster_%s.yaml", env)
	}

	configPath, err := findConfigFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
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

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the anchor rrule, and every
// roster day token, shift clock time and daily-target key. Configuration
// errors abort here, before any schedule generation.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := rrule.StrToRRule(cfg.AnchorRule); err != nil {
		return fmt.Errorf("invalid anchorRule: %w", err)
	}

	if _, err := cfg.BuildRoster(); err != nil {
		return err
	}
	if _, err := cfg.BuildCatalog(); err != nil {
		return err
	}
	if _, err := cfg.BuildDailyTargets(); err != nil {
		return err
	}
	if _, err := cfg.BuildPolicy(); err != nil {
		return err
	}

	return nil
}

// BuildRoster converts the configured roster into staff members
func (cfg *Config) BuildRoster() ([]roster.StaffMember, error) {
	staff := make([]roster.StaffMember, 0, len(cfg.Roster))
	for _, entry := range cfg.Roster {
		member := roster.StaffMember{
			Name:                entry.Name,
			Supervisor:          entry.Supervisor,
			Male:                entry.Male,
			Auxiliary:           entry.Auxiliary,
			OvernightSpecialist: entry.OvernightSpecialist,
			PrefersLongShifts:   entry.PrefersLongShifts,
			TargetHours:         entry.TargetHours,
		}
		for _, token := range entry.FixedDaysOff {
			day, err := roster.ParseWeekday(token)
			if err != nil {
				return nil, fmt.Errorf("staff %q fixedDaysOff: %w", entry.Name, err)
			}
			member.FixedDaysOff = append(member.FixedDaysOff, day)
		}
		for _, token := range entry.MustWorkDays {
			day, err := roster.ParseWeekday(token)
			if err != nil {
				return nil, fmt.Errorf("staff %q mustWorkDays: %w", entry.Name, err)
			}
			member.MustWorkDays = append(member.MustWorkDays, day)
		}
		staff = append(staff, member)
	}

	if err := roster.Validate(staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// BuildCatalog converts the configured shift shapes into a catalog
func (cfg *Config) BuildCatalog() (roster.Catalog, error) {
	defs := make([]roster.ShiftDefinition, 0, len(cfg.Shifts))
	for _, entry := range cfg.Shifts {
		start, err := roster.ParseClock(entry.Start)
		if err != nil {
			return roster.Catalog{}, fmt.Errorf("shift %q start: %w", entry.Name, err)
		}
		end, err := roster.ParseClock(entry.End)
		if err != nil {
			return roster.Catalog{}, fmt.Errorf("shift %q end: %w", entry.Name, err)
		}
		defs = append(defs, roster.ShiftDefinition{Name: entry.Name, Start: start, End: end})
	}
	return roster.NewCatalog(defs)
}

// BuildDailyTargets converts the configured per-day headcount targets
func (cfg *Config) BuildDailyTargets() (map[roster.Weekday]int, error) {
	targets := make(map[roster.Weekday]int, len(cfg.DailyTargets))
	for token, count := range cfg.DailyTargets {
		day, err := roster.ParseWeekday(token)
		if err != nil {
			return nil, fmt.Errorf("dailyTargets: %w", err)
		}
		if count < 0 {
			return nil, fmt.Errorf("dailyTargets[%s] must not be negative", token)
		}
		targets[day] = count
	}
	return targets, nil
}

// BuildPolicy applies the configured overrides on top of the planner's
// defaults
func (cfg *Config) BuildPolicy() (planner.Policy, error) {
	policy := planner.DefaultPolicy()

	if cfg.Policy.AnchorDay != "" {
		day, err := roster.ParseWeekday(cfg.Policy.AnchorDay)
		if err != nil {
			return planner.Policy{}, fmt.Errorf("policy anchorDay: %w", err)
		}
		policy.AnchorDay = day
	}
	if cfg.Policy.AnchorAttendants > 0 {
		policy.AnchorAttendants = cfg.Policy.AnchorAttendants
	}
	if cfg.Policy.HourCap > 0 {
		policy.HourCap = cfg.Policy.HourCap
	}
	if cfg.Policy.MaxSupervisorsPerDay > 0 {
		policy.MaxSupervisorsPerDay = cfg.Policy.MaxSupervisorsPerDay
	}
	if cfg.Policy.ExtendLimit > 0 {
		policy.ExtendLimit = cfg.Policy.ExtendLimit
	}
	if cfg.Policy.LongShiftThreshold > 0 {
		policy.LongShiftThreshold = cfg.Policy.LongShiftThreshold
	}
	if cfg.Policy.SpecialistNightSpacing > 0 {
		policy.SpecialistNightSpacing = cfg.Policy.SpecialistNightSpacing
	}
	if cfg.Policy.FullSpanShift != "" {
		policy.FullSpanShift = cfg.Policy.FullSpanShift
	}
	if cfg.Policy.OpeningShift != "" {
		policy.OpeningShift = cfg.Policy.OpeningShift
	}
	if cfg.Policy.MidShift != "" {
		policy.MidShift = cfg.Policy.MidShift
	}
	if cfg.Policy.ClosingShift != "" {
		policy.ClosingShift = cfg.Policy.ClosingShift
	}
	if cfg.Policy.LongAMShift != "" {
		policy.LongAMShift = cfg.Policy.LongAMShift
	}
	if cfg.Policy.LongPMShift != "" {
		policy.LongPMShift = cfg.Policy.LongPMShift
	}
	if cfg.Policy.OvernightShift != "" {
		policy.OvernightShift = cfg.Policy.OvernightShift
	}

	catalog, err := cfg.BuildCatalog()
	if err != nil {
		return planner.Policy{}, err
	}
	if err := policy.Validate(catalog); err != nil {
		return planner.Policy{}, err
	}

	return policy, nil
}

// findConfigFile searches for the config file in the current directory and
// the user's home directory
func findConfigFile(fileName string) (string, error) {
	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", fileName)
}
