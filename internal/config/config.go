package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete analysis configuration
type Config struct {
	Data     DataConfig     `yaml:"data" envconfig:"DATA"`
	Split    SplitConfig    `yaml:"split" envconfig:"SPLIT"`
	Model    ModelConfig    `yaml:"model" envconfig:"MODEL"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
}

// DataConfig describes the input dataset schema
type DataConfig struct {
	InputFile       string   `yaml:"input_file" envconfig:"INPUT_FILE" default:"data/pml-training.csv" validate:"required"`
	LabelColumn     string   `yaml:"label_column" envconfig:"LABEL_COLUMN" default:"classe" validate:"required"`
	WindowColumn    string   `yaml:"window_column" envconfig:"WINDOW_COLUMN" default:"new_window" validate:"required"`
	WindowFlagValue string   `yaml:"window_flag_value" envconfig:"WINDOW_FLAG_VALUE" default:"yes" validate:"required"`
	MetadataColumns []string `yaml:"metadata_columns" envconfig:"METADATA_COLUMNS" default:"X,user_name,raw_timestamp_part_1,raw_timestamp_part_2,cvtd_timestamp,new_window,num_window"`
	MissingTokens   []string `yaml:"missing_tokens" envconfig:"MISSING_TOKENS" default:"NA,#DIV/0!"`
}

// SplitConfig controls the stratified train/cv/test partitioning
type SplitConfig struct {
	Seed            int64   `yaml:"seed" envconfig:"SEED" default:"12345"`
	TrainProportion float64 `yaml:"train_proportion" envconfig:"TRAIN_PROPORTION" default:"0.6" validate:"gt=0,lt=1"`
}

// ModelConfig controls random forest training and the complexity sweep
type ModelConfig struct {
	Trees          int `yaml:"trees" envconfig:"TREES" default:"500" validate:"gt=0"`
	SweepStart     int `yaml:"sweep_start" envconfig:"SWEEP_START" default:"100" validate:"gt=0"`
	SweepEnd       int `yaml:"sweep_end" envconfig:"SWEEP_END" default:"1000" validate:"gtefield=SweepStart"`
	SweepStep      int `yaml:"sweep_step" envconfig:"SWEEP_STEP" default:"100" validate:"gt=0"`
	SplitFeatures  int `yaml:"split_features" envconfig:"SPLIT_FEATURES" default:"0" validate:"gte=0"` // 0 means sqrt(#predictors)
	TopImportance  int `yaml:"top_importance" envconfig:"TOP_IMPORTANCE" default:"20" validate:"gt=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"data" validate:"required"`
}

// Load loads configuration from environment variables and an optional config file
func Load(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("QR", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if it exists; file values fill gaps, env wins
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Data.InputFile == "" {
		envConfig.Data.InputFile = fileConfig.Data.InputFile
	}
	if envConfig.Data.LabelColumn == "" {
		envConfig.Data.LabelColumn = fileConfig.Data.LabelColumn
	}
	if envConfig.Data.WindowColumn == "" {
		envConfig.Data.WindowColumn = fileConfig.Data.WindowColumn
	}
	if envConfig.Data.WindowFlagValue == "" {
		envConfig.Data.WindowFlagValue = fileConfig.Data.WindowFlagValue
	}
	if len(envConfig.Data.MetadataColumns) == 0 {
		envConfig.Data.MetadataColumns = fileConfig.Data.MetadataColumns
	}
	if len(envConfig.Data.MissingTokens) == 0 {
		envConfig.Data.MissingTokens = fileConfig.Data.MissingTokens
	}
	if envConfig.Split.Seed == 0 {
		envConfig.Split.Seed = fileConfig.Split.Seed
	}
	if envConfig.Split.TrainProportion == 0 {
		envConfig.Split.TrainProportion = fileConfig.Split.TrainProportion
	}
	if envConfig.Model.Trees == 0 {
		envConfig.Model.Trees = fileConfig.Model.Trees
	}
	if envConfig.Model.SweepStart == 0 {
		envConfig.Model.SweepStart = fileConfig.Model.SweepStart
	}
	if envConfig.Model.SweepEnd == 0 {
		envConfig.Model.SweepEnd = fileConfig.Model.SweepEnd
	}
	if envConfig.Model.SweepStep == 0 {
		envConfig.Model.SweepStep = fileConfig.Model.SweepStep
	}
	if envConfig.Model.TopImportance == 0 {
		envConfig.Model.TopImportance = fileConfig.Model.TopImportance
	}
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Paths.OutputDir == "" {
		envConfig.Paths.OutputDir = fileConfig.Paths.OutputDir
	}

	return envConfig
}

// Validate checks the configuration against its struct constraints plus the
// cross-field rules the tags cannot express
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.Model.SweepEnd < c.Model.SweepStart {
		return fmt.Errorf("sweep end %d is below sweep start %d", c.Model.SweepEnd, c.Model.SweepStart)
	}

	for _, col := range c.Data.MetadataColumns {
		if col == c.Data.LabelColumn {
			return fmt.Errorf("label column %q listed as metadata", col)
		}
	}

	return nil
}
