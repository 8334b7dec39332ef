package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"asset-management-api/internal/auth"
	"asset-management-api/internal/config"
	"asset-management-api/internal/models"
)

func main() {
	var (
		userID     = flag.Int64("user", 1, "User ID")
		fullName   = flag.String("name", "Dev Admin", "Full name")
		email      = flag.String("email", "admin@assetmanagement.com", "Email")
		role       = flag.String("role", models.RoleAdmin, "Role name")
		roleID     = flag.Int64("role-id", 1, "Role ID")
		empID      = flag.String("employment-id", "ADMIN001", "Employment ID")
		department = flag.String("department", "IT Department", "Department")
		expiryMins = flag.Int("expiry", 1440, "Token expiry in minutes (default: 24 hours)")
		secret     = flag.String("secret", "", "JWT secret (overrides JWT_SECRET env var)")
		issuer     = flag.String("issuer", "", "JWT issuer (overrides JWT_ISS env var)")
		audience   = flag.String("audience", "", "JWT audience (overrides JWT_AUD env var)")
	)
	flag.Parse()

	// Load config
	cfg := config.Load()

	// Override with command line flags if provided
	if *secret != "" {
		cfg.JWTSecret = *secret
	}
	if *issuer != "" {
		cfg.JWTIssuer = *issuer
	}
	if *audience != "" {
		cfg.JWTAudience = *audience
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, time.Duration(*expiryMins)*time.Minute)

	token, expiresAt, err := jwtManager.GenerateToken(models.User{
		ID:           *userID,
		FullName:     *fullName,
		Email:        *email,
		EmploymentID: *empID,
		Department:   *department,
		RoleID:       *roleID,
		RoleName:     *role,
	})
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("JWT Token generated successfully!\n\n")
	fmt.Printf("User ID: %d\n", *userID)
	fmt.Printf("Role: %s\n", *role)
	fmt.Printf("Expires: %s\n", expiresAt.Format(time.RFC3339))
	fmt.Printf("Issuer: %s\n", cfg.JWTIssuer)
	fmt.Printf("Audience: %s\n", cfg.JWTAudience)
	fmt.Printf("\nToken:\n%s\n\n", token)

	fmt.Printf("Usage example:\n")
	fmt.Printf("curl -H \"Authorization: Bearer %s\" http://localhost:8080/api/assets\n", token)
}
