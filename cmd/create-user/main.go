// Command create-user adds a password account to the database.
//
// Usage:
//
//	create-user --email=user@example.com < password.txt
//
// Reads the server configuration (CONFIG_PATH and environment), so the
// database and password hash cost match the running API.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres/user"
	"github.com/heartmarshall/batch-dashboard/internal/app"
	"github.com/heartmarshall/batch-dashboard/internal/auth"
	"github.com/heartmarshall/batch-dashboard/internal/config"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
	authsvc "github.com/heartmarshall/batch-dashboard/internal/service/auth"
)

func main() {
	email := flag.String("email", "", "email of the new user")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: create-user --email=user@example.com < password.txt")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("create-user needs database.driver %q (got %q)", config.DriverPostgres, cfg.Database.Driver)
	}
	logger := app.NewLogger(cfg.Log)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatalf("read password from stdin: %v", err)
	}
	password := strings.TrimRight(line, "\r\n")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := authsvc.NewService(logger, user.New(pool), jwtMgr, cfg.Auth)

	u, err := svc.Register(ctx, domain.LoginCredentials{Email: *email, Password: password})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		fmt.Printf("User %q already exists.\n", *email)
		os.Exit(1)
	case err != nil:
		log.Fatalf("create user: %v", err)
	}

	fmt.Printf("User %q created (id %s).\n", u.Email, u.ID)
}
