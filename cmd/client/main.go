// Command client is a connectivity diagnostic for the ERP backend. It
// resolves the API base URL for the selected deployment target, probes the
// health and self-test endpoints, and, when credentials are supplied via
// ERP_CLIENT_EMAIL / ERP_CLIENT_PASSWORD, performs a login and fetches the
// account profile.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/happydeal-transit/erp/internal/adapter"
	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("erp-client")

	target := config.TargetWeb
	if os.Getenv("ERP_CLIENT_TARGET") == string(config.TargetLocal) {
		target = config.TargetLocal
	}

	cfg, err := config.GetClientConfig(target, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPERPClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx := context.Background()

	health, err := client.Health(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("health check failed")
	}
	log.Info().
		Str("status", health.Status).
		Str("database", health.Database).
		Msg("backend health")

	info, err := client.APITest(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("api self-test failed")
	}
	log.Info().
		Str("version", info.Version).
		Strs("features", info.Features).
		Msg(info.Message)

	email := os.Getenv("ERP_CLIENT_EMAIL")
	password := os.Getenv("ERP_CLIENT_PASSWORD")
	if email == "" || password == "" {
		log.Info().Msg("no credentials supplied, skipping login probe")
		return
	}

	user, err := client.Login(ctx, email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}
	log.Info().Int64("id", user.UserID).Str("role", user.Role).Msg("logged in")

	profile, err := client.Profile(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("profile fetch failed")
	}

	lastLogin := "never"
	if profile.LastLogin != nil {
		lastLogin = *profile.LastLogin
	}
	log.Info().
		Str("name", profile.Name).
		Str("email", profile.Email).
		Str("last_login", lastLogin).
		Msg("account profile")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
