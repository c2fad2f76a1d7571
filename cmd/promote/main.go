// Command maf-promote grants the ADMIN role to an existing user.
//
// Role changes are deliberately not exposed over HTTP; this tool is the
// only way to create an administrator.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/repository/postgres"
)

func main() {
	email := flag.String("email", "", "email of the user to promote (required)")
	dsn := flag.String("dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL DSN")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "usage: maf-promote -email user@example.com [-dsn ...]")
		os.Exit(2)
	}
	if *dsn == "" {
		fmt.Fprintln(os.Stderr, "no database DSN (set -dsn or DATABASE_DSN)")
		os.Exit(2)
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, *dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect database: %v\n", err)
		os.Exit(1)
	}
	defer db.Pool.Close()

	repo := postgres.NewUserRepo(db)
	if err := repo.PromoteToAdmin(ctx, *email); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "no user with email %s\n", *email)
		} else {
			fmt.Fprintf(os.Stderr, "promote: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("%s is now an admin\n", *email)
}
