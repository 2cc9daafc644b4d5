package auth

import (
	"testing"

	"github.com/fleetwatch/fleetrisk-backend/access"
	"github.com/fleetwatch/fleetrisk-backend/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseUsersConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config, err := ParseUsersConfig([]byte(`
users:
  - username: ada
    role: admin
  - username: mira
    role: manager
    is_active: false
`))
		require.NoError(t, err)
		require.Len(t, config.Users, 2)
		assert.Equal(t, "ada", config.Users[0].Username)
		assert.Nil(t, config.Users[0].IsActive)
		require.NotNil(t, config.Users[1].IsActive)
		assert.False(t, *config.Users[1].IsActive)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := ParseUsersConfig([]byte("users:\n  - role: admin\n"))
		require.Error(t, err)
	})

	t.Run("missing role", func(t *testing.T) {
		_, err := ParseUsersConfig([]byte("users:\n  - username: ada\n"))
		require.Error(t, err)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := ParseUsersConfig([]byte("users:\n  - username: ada\n    role: root\n"))
		require.Error(t, err)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := ParseUsersConfig([]byte(`
users:
  - username: ada
    role: admin
  - username: ada
    role: viewer
`))
		require.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := ParseUsersConfig([]byte("users: [oops"))
		require.Error(t, err)
	})
}

func TestApplyUsers(t *testing.T) {
	ac := access.NewController(zap.NewNop())
	ac.AddUser("mira", model.RoleViewer, true)

	config, err := ParseUsersConfig([]byte(`
users:
  - username: ada
    role: admin
  - username: mira
    role: manager
  - username: vera
    role: viewer
    is_active: false
`))
	require.NoError(t, err)

	result := ApplyUsers(ac, config)
	assert.ElementsMatch(t, []string{"ada", "vera"}, result.Created)
	assert.ElementsMatch(t, []string{"mira"}, result.Updated)

	assert.Equal(t, model.RoleManager, ac.GetUser("mira").Role)
	assert.True(t, ac.GetUser("ada").IsActive)
	assert.False(t, ac.GetUser("vera").IsActive)

	t.Run("users absent from the config are untouched", func(t *testing.T) {
		assert.Len(t, ac.ListUsers(), 3)
	})
}
