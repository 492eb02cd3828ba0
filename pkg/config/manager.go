package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lerenn/project-sync/configs"
	"github.com/lerenn/project-sync/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// DefaultConfigPath is the configuration file location relative to the home directory.
const DefaultConfigPath = "~/.psync/config.yaml"

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads, expands and validates the configuration file.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the configuration file, falling back to the defaults when it is missing.
	GetConfigWithFallback() (Config, error)
	// SaveConfig validates config and writes it to the config path.
	SaveConfig(config Config) error
	// WriteDefault writes the embedded default configuration, unless a file already exists and force is false.
	WriteDefault(force bool) error
	// DefaultConfig returns the embedded defaults with paths expanded.
	DefaultConfig() (Config, error)
	// GetConfigPath returns the configuration file path.
	GetConfigPath() string
}

type realManager struct {
	fs         fs.FS
	configPath string
	validate   *validator.Validate
}

// NewManager creates a new Manager reading configPath.
func NewManager(fsys fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fsys,
		configPath: configPath,
		validate:   newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report yaml keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their default value.
	config, err := c.parse(configs.DefaultConfigYAML)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfigFileParse, c.configPath, err)
	}

	return c.finalize(config)
}

func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if errors.Is(err, ErrConfigNotInitialized) {
		return c.DefaultConfig()
	}
	return config, err
}

func (c *realManager) SaveConfig(config Config) error {
	if err := c.check(config); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := c.fs.WriteFileAtomic(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}

func (c *realManager) WriteDefault(force bool) error {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists && !force {
		return fmt.Errorf("%w: %s", ErrConfigAlreadyExists, c.configPath)
	}

	if err := c.fs.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := c.fs.WriteFileAtomic(c.configPath, configs.DefaultConfigYAML, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}

func (c *realManager) DefaultConfig() (Config, error) {
	config, err := c.parse(configs.DefaultConfigYAML)
	if err != nil {
		return Config{}, err
	}
	return c.finalize(config)
}

func (c *realManager) GetConfigPath() string {
	return c.configPath
}

func (c *realManager) parse(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	return config, nil
}

func (c *realManager) finalize(config Config) (Config, error) {
	if err := config.expandTildes(c.fs.ExpandPath); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}
	if err := c.check(config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c *realManager) check(config Config) error {
	err := c.validate.Struct(config)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return key + " cannot be empty"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s, got %v", key, fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s, got %v", key, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
}

// ResolvePath expands the user supplied config path, defaulting to DefaultConfigPath.
func ResolvePath(fsys fs.FS, configPath string) (string, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	if env := os.Getenv("PSYNC_CONFIG"); configPath == DefaultConfigPath && env != "" {
		configPath = env
	}
	return fsys.NormalizePath(configPath)
}
