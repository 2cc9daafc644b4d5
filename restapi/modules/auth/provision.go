package auth

import (
	"fmt"
	"os"

	"github.com/fleetwatch/fleetrisk-backend/access"
	"github.com/fleetwatch/fleetrisk-backend/model"
	"gopkg.in/yaml.v2"
)

// UsersConfig represents the YAML structure for declarative user provisioning
type UsersConfig struct {
	Users []ConfigUser `yaml:"users"`
}

// ConfigUser represents a user in the config
type ConfigUser struct {
	Username string `yaml:"username"`
	Role     string `yaml:"role"`
	IsActive *bool  `yaml:"is_active"`
}

// ApplyResult tracks the outcome of a user provisioning apply operation
type ApplyResult struct {
	Created []string
	Updated []string
}

// LoadUsersConfig reads and parses a users.yaml file
func LoadUsersConfig(path string) (*UsersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseUsersConfig(data)
}

// ParseUsersConfig parses and validates raw YAML config content
func ParseUsersConfig(data []byte) (*UsersConfig, error) {
	var config UsersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// validateConfig ensures the configuration is valid
func validateConfig(config *UsersConfig) error {
	validRoles := map[string]bool{"viewer": true, "manager": true, "admin": true}

	seenUsernames := make(map[string]bool)

	for _, user := range config.Users {
		if user.Username == "" {
			return fmt.Errorf("username is required")
		}
		if user.Role == "" {
			return fmt.Errorf("role is required for user %s", user.Username)
		}
		if !validRoles[user.Role] {
			return fmt.Errorf("invalid role '%s' for user %s", user.Role, user.Username)
		}

		if seenUsernames[user.Username] {
			return fmt.Errorf("duplicate username: %s", user.Username)
		}
		seenUsernames[user.Username] = true
	}
	return nil
}

// ApplyUsers reconciles the access controller's registry with the config.
// Existing usernames are overwritten, new ones created; users absent from
// the config are left untouched.
func ApplyUsers(ac *access.Controller, config *UsersConfig) *ApplyResult {
	result := &ApplyResult{}

	for _, user := range config.Users {
		isActive := true
		if user.IsActive != nil {
			isActive = *user.IsActive
		}

		if ac.GetUser(user.Username) != nil {
			result.Updated = append(result.Updated, user.Username)
		} else {
			result.Created = append(result.Created, user.Username)
		}
		ac.AddUser(user.Username, model.Role(user.Role), isActive)
	}

	return result
}
