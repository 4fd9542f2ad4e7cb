package jwt_test

import (
	"context"
	"testing"
	"tripavail/config"
	"tripavail/infras/jwt"
	otelMocks "tripavail/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(accessExpireMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "tripavail"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = accessExpireMin
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg, otelMocks.NewOtel())
}

func TestJWT_RoundTrip(t *testing.T) {
	ctx := context.Background()
	service := newService(15)

	pair, err := service.GenerateTokenPair(ctx, "user-1", "provider")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := service.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "provider", claims.Role)
	assert.NotEmpty(t, claims.TokenID)

	_, err = service.ValidateToken(ctx, pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	claims, err = service.ValidateToken(ctx, pair.RefreshToken, jwt.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RefreshToken, claims.Type)
}

func TestJWT_ValidateToken_Errors(t *testing.T) {
	ctx := context.Background()

	expired, err := newService(-1).GenerateTokenPair(ctx, "user-1", "user")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired.AccessToken, wantErr: jwt.ErrExpiredToken},
		{name: "garbage", token: "not-a-token", wantErr: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(15).ValidateToken(ctx, tt.token, jwt.AccessToken)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def", want: "abc.def"},
		{name: "empty", header: "", wantErr: true},
		{name: "basic", header: "Basic abc", wantErr: true},
		{name: "prefix only", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
