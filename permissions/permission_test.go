package permissions_test

import (
	"net/http"
	"testing"
	"tripavail/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	perms := permissions.Get()
	require.NotNil(t, perms)

	assert.False(t, perms.Skip)
	assert.NotEmpty(t, perms.Endpoints)

	for _, endpoint := range perms.Endpoints {
		if endpoint.Skip {
			continue
		}

		assert.NotEmpty(t, endpoint.Permissions, "%s %s has no roles", endpoint.Method, endpoint.Path)
	}
}

func TestPermissionData_FindPermissions(t *testing.T) {
	perms := permissions.Get()
	require.NotNil(t, perms)

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantRole []string
	}{
		{
			name:     "health is public",
			path:     "/health",
			method:   http.MethodGet,
			wantSkip: true,
		},
		{
			name:     "provider cancellation",
			path:     "/v1/bookings/{id}/cancel/provider",
			method:   http.MethodPost,
			wantRole: []string{"provider", "admin", "superadmin"},
		},
		{
			name:     "ledger export is admin only",
			path:     "/v1/ledger/bookings/{id}/export",
			method:   http.MethodPost,
			wantRole: []string{"admin", "superadmin"},
		},
		{
			name:   "method must match",
			path:   "/v1/bookings/quote",
			method: http.MethodGet,
		},
		{
			name:   "unknown route",
			path:   "/v1/unknown",
			method: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := perms.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRole, permission.Permissions)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "malformed json",
			data: `{"endpoints": [`,
		},
		{
			name: "duplicate route",
			data: `{"endpoints": [
				{"path": "/v1/bookings/quote", "method": "POST", "permissions": ["user"]},
				{"path": "/v1/bookings/quote", "method": "post", "permissions": ["admin"]}
			]}`,
		},
		{
			name: "unknown role",
			data: `{"endpoints": [{"path": "/v1/bookings/quote", "method": "POST", "permissions": ["guest"]}]}`,
		},
		{
			name: "unknown method",
			data: `{"endpoints": [{"path": "/v1/bookings/quote", "method": "BREW", "permissions": ["user"]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perms, err := permissions.Parse([]byte(tt.data))

			assert.Error(t, err)
			assert.Nil(t, perms)
		})
	}
}

func TestPermission_Allows(t *testing.T) {
	restricted := permissions.Permission{Permissions: []string{"admin", "superadmin"}}

	assert.True(t, restricted.Allows("admin"))
	assert.False(t, restricted.Allows("user"))
	assert.False(t, restricted.Allows(""))
	assert.True(t, permissions.Permission{}.Allows("user"))
}
