// Command client is a small command-line companion to the registry server.
//
// It authenticates with the configured credentials (or reuses a pre-issued
// token) and exposes one subcommand per API operation:
//
//	client health
//	client create -name "Test User" -address "Test Address" -phone "0521234567" -national-id "123456782"
//	client get 42
//	client list
//
// Connection settings come from the CLIENT_* environment variables or the
// optional JSON config file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/go-user-registry/internal/adapter"
	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("registry-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	client := adapter.NewHTTPRegistryClient(cfg)
	ctx := context.Background()

	command := os.Args[1]
	args := os.Args[2:]

	// health and version need no token
	switch command {
	case "health":
		exitOnError(log, runHealth(ctx, client))
		return
	case "version":
		printBuildInfo()
		return
	}

	if client.Token() == "" {
		if _, err = client.Authenticate(ctx, cfg.Username, cfg.Password); err != nil {
			log.Fatal().Err(err).Msg("authentication failed")
		}
	}

	switch command {
	case "create":
		exitOnError(log, runCreate(ctx, client, args))
	case "get":
		exitOnError(log, runGet(ctx, client, args))
	case "list":
		exitOnError(log, runList(ctx, client))
	default:
		printUsage()
		os.Exit(2)
	}
}

func runHealth(ctx context.Context, client adapter.RegistryClient) error {
	if err := client.Health(ctx); err != nil {
		return err
	}

	fmt.Println("OK")
	return nil
}

func runCreate(ctx context.Context, client adapter.RegistryClient, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	address := fs.String("address", "", "postal address")
	phone := fs.String("phone", "", "phone number")
	nationalID := fs.String("national-id", "", "national identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := client.CreateUser(ctx, models.User{
		Name:       *name,
		Address:    *address,
		Phone:      *phone,
		NationalID: *nationalID,
	})
	if err != nil {
		return err
	}

	return printJSON(created)
}

func runGet(ctx context.Context, client adapter.RegistryClient, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: client get <id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", args[0], err)
	}

	found, err := client.GetUser(ctx, id)
	if err != nil {
		return err
	}

	return printJSON(found)
}

func runList(ctx context.Context, client adapter.RegistryClient) error {
	ids, err := client.ListUserIDs(ctx)
	if err != nil {
		return err
	}

	return printJSON(ids)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func exitOnError(log *logger.Logger, err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func printUsage() {
	fmt.Println("usage: client <health|create|get|list|version> [flags]")
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
