// Command staffctl creates staff accounts that sign in with a password.
//
//	staffctl -email ops@agency.example -name "Ops" -password '...'
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/brandlab-api/configs"
	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/repository"
	"github.com/maheshrc27/brandlab-api/internal/service"
	"github.com/maheshrc27/brandlab-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "staff e-mail address")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "password, at least 8 characters")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.LoadConfig()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := service.NewUserService(repository.NewUserRepository(db), zl)
	user, err := users.CreateStaffUser(ctx, *email, *name, *password)
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindInternal {
			fmt.Fprintln(os.Stderr, apperrors.PublicMessage(err))
			os.Exit(1)
		}
		log.Fatalf("Failed to create staff user: %v", err)
	}
	fmt.Printf("created %s (%s)\n", user.Email, user.ID)
}
