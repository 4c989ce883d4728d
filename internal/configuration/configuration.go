// Package configuration reads check_disk defaults from an optional env-style
// configuration file.
package configuration

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// KeyPaths holds whitespace-separated path tokens.
	KeyPaths = "CHECK_DISK_PATHS"

	// KeyWarn holds the warning threshold.
	KeyWarn = "CHECK_DISK_WARN"

	// KeyCrit holds the critical threshold.
	KeyCrit = "CHECK_DISK_CRIT"

	// KeyUniqueFS enables the device based deduplication.
	KeyUniqueFS = "CHECK_DISK_UNIQUEFS"

	// KeyDebug enables debug logging.
	KeyDebug = "CHECK_DISK_DEBUG"

	DefaultPath = "/"
	DefaultWarn = "20%"
	DefaultCrit = "10%"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings is the principal structure holding the check_disk configuration.
type Settings struct {
	Paths    []string
	Warn     string
	Crit     string
	UniqueFS bool
	Debug    bool
}

// DefaultSettings returns the built-in [Settings].
func DefaultSettings() Settings {
	return Settings{
		Paths: []string{DefaultPath},
		Warn:  DefaultWarn,
		Crit:  DefaultCrit,
	}
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	genericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
	}
}

// ReadGeneric reads generic Unix-type configuration files into a map
// (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	envMap, err := c.genericHandler.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-read) %w: %w", ErrConfigRead, err)
	}

	return envMap, nil
}

// Apply reads the configuration file and overrides every setting the file
// contains. Keys missing from the file leave the setting untouched.
func (c *Handler) Apply(settings *Settings, filename string) error {
	envMap, err := c.ReadGeneric(filename)
	if err != nil {
		return err
	}

	if paths := strings.Fields(c.MapKeyToString(envMap, KeyPaths)); len(paths) > 0 {
		settings.Paths = paths
	}

	if warn := c.MapKeyToString(envMap, KeyWarn); warn != "" {
		settings.Warn = warn
	}

	if crit := c.MapKeyToString(envMap, KeyCrit); crit != "" {
		settings.Crit = crit
	}

	uniqueFS, exists, err := c.MapKeyToBool(envMap, KeyUniqueFS)
	if err != nil {
		return err
	}
	if exists {
		settings.UniqueFS = uniqueFS
	}

	debug, exists, err := c.MapKeyToBool(envMap, KeyDebug)
	if err != nil {
		return err
	}
	if exists {
		settings.Debug = debug
	}

	return nil
}

// MapKeyToString returns the value of key, or an empty string if it does not
// exist.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// MapKeyToBool returns the boolean value of key. The second return value is
// false if the key does not exist or is empty.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) (bool, bool, error) {
	value := strings.ToLower(c.MapKeyToString(envMap, key))

	switch value {
	case "":
		return false, false, nil
	case "yes", "on":
		return true, true, nil
	case "no", "off":
		return false, true, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, false, fmt.Errorf("(config-bool) %w: %s=%s", ErrInvalidValue, key, value)
	}

	return b, true, nil
}
