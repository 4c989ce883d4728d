package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider reads the env-style check_disk configuration file with
// godotenv. It satisfies [genericConfigProvider].
type GodotenvProvider struct{}

// Read returns the CHECK_DISK_* assignments of the given files. Quoted values
// such as CHECK_DISK_PATHS="/ /boot" arrive unquoted, comments are dropped.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	values, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-godotenv) %w", err)
	}

	return values, nil
}
