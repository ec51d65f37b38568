// Command token prints a bearer token for a user id, signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/jwt"
)

func main() {
	userID := flag.Int64("user", 0, "user id to put in the token")
	flag.Parse()

	token, err := mint(*userID)
	if err != nil {
		slog.Error("failed to mint token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func mint(userID int64) (string, error) {
	if userID <= 0 {
		return "", errs.New("-user must be a positive id")
	}

	cfg, err := config.LoadJWTConfig()
	if err != nil {
		return "", err
	}
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return "", errs.Wrap(err, "invalid JWT_DURATION")
	}

	return jwt.NewService(cfg.Secret, duration).GenerateToken(userID)
}
