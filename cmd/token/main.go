package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"slices"
	"tripavail/config"
	"tripavail/infras/jwt"
	"tripavail/infras/otel"
	"tripavail/shared/constant"
	"tripavail/shared/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// token mints a development token pair for an actor.
func main() {
	userID := flag.String("user", "", "user id, a random uuid when empty")
	role := flag.String("role", constant.RoleUser, "user, provider, admin or superadmin")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger(cfg)

	if cfg.Server.Env != constant.ServerEnvDevelopment {
		log.Fatal().Str("env", cfg.Server.Env).Msg("Development tokens can only be minted in development")
	}

	roles := []string{constant.RoleUser, constant.RoleProvider, constant.RoleAdmin, constant.RoleSuperAdmin}
	if !slices.Contains(roles, *role) {
		log.Fatal().Str("role", *role).Msg("Unknown role")
	}

	if *userID == "" {
		*userID = uuid.NewString()
	}

	pair, err := jwt.New(cfg, otel.New(cfg)).GenerateTokenPair(context.Background(), *userID, *role)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate token pair")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(map[string]any{"user_id": *userID, "role": *role, "tokens": pair}); err != nil {
		log.Fatal().Err(err).Msg("Failed to write token pair")
	}
}
