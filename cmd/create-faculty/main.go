package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/campushub/portal-backend/internal/config"
	"github.com/campushub/portal-backend/internal/database"
	"github.com/campushub/portal-backend/internal/logger"
	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/repository"
	"github.com/campushub/portal-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	authService := service.NewAuthService(cfg, nil)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create Faculty Account ===")

	fmt.Print("Enter Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: Username is required")
		return
	}

	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	fmt.Print("Enter Department: ")
	department, _ := reader.ReadString('\n')
	department = strings.TrimSpace(department)
	if department == "" {
		fmt.Println("Error: Department is required")
		return
	}

	fmt.Print("Enter Employee Number (optional): ")
	employeeNumber, _ := reader.ReadString('\n')
	employeeNumber = strings.TrimSpace(employeeNumber)

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println()
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		fmt.Printf("Error: failed to hash password: %v\n", err)
		return
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleTeacher,
		Name:         name,
		Department:   department,
	}
	if employeeNumber != "" {
		user.EmployeeNumber = &employeeNumber
	}

	if err := userRepo.Create(ctx, user); err != nil {
		fmt.Printf("Error: failed to create account: %v\n", err)
		return
	}

	fmt.Printf("Faculty account created (id=%d, username=%s)\n", user.ID, user.Username)
}
