package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"backoffice/pkg/config"
	"backoffice/pkg/database"
	"backoffice/pkg/logger"
	"backoffice/pkg/models"
	"backoffice/services/admin/internal/entity"

	"gorm.io/gorm"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	if err := seedRoles(db, log); err != nil {
		return err
	}
	return seedUsers(db, log)
}

func seedRoles(db *gorm.DB, log *logger.Logger) error {
	editorPerms := entity.DefaultPermissions()
	editorPerms.Dashboard = true
	editorPerms.Content.Read = true
	editorPerms.Content.Write = true
	editorPerms.Content.Update = true
	editorPerms.Media = true

	userPerms := entity.DefaultPermissions()
	userPerms.Dashboard = true

	// The admin role is stored the way legacy data arrives: the all-flag
	// payload, projected through the normalizer.
	adminPerms := entity.NormalizePermissions(json.RawMessage(`{"all": "true"}`))

	builtIn := []struct {
		name        string
		description string
		permissions entity.PermissionSet
	}{
		{entity.RoleAdmin, "Full access to every section", adminPerms},
		{entity.RoleEditor, "Manages content and media", editorPerms},
		{entity.RoleUser, "Dashboard access only", userPerms},
	}

	for _, roleData := range builtIn {
		var existing models.Role
		result := db.Where("name = ?", roleData.name).First(&existing)
		if result.Error == nil {
			log.Info("Role %s already exists, skipping", roleData.name)
			continue
		}

		encoded, err := json.Marshal(roleData.permissions)
		if err != nil {
			return fmt.Errorf("failed to encode permissions for %s: %w", roleData.name, err)
		}

		description := roleData.description
		role := &models.Role{
			Name:        roleData.name,
			Description: &description,
			Permissions: string(encoded),
		}
		if err := role.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate role ID: %w", err)
		}
		if err := db.Create(role).Error; err != nil {
			log.Error("Failed to create role %s: %v", roleData.name, err)
			continue
		}

		log.Info("Created role: %s", roleData.name)
	}

	return nil
}

func seedUsers(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		username string
		fullName string
		role     string
	}{
		{"alice@test.com", "alice_admin", "Alice Admin", entity.RoleAdmin},
		{"bob@test.com", "bob_editor", "Bob Editor", entity.RoleEditor},
		{"charlie@test.com", "charlie_user", "Charlie User", entity.RoleUser},
		{"diana@test.com", "diana_user", "Diana User", entity.RoleUser},
	}

	for _, userData := range testUsers {
		var existing models.User
		result := db.Where("email = ? OR username = ?", userData.email, userData.username).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", userData.username)
			continue
		}

		username := userData.username
		fullName := userData.fullName
		user := &models.User{
			Email:    userData.email,
			Username: &username,
			FullName: &fullName,
			Role:     userData.role,
			IsActive: true,
		}
		if err := user.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate user ID: %w", err)
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", userData.username, err)
			continue
		}

		log.Info("Created user: %s (%s)", userData.username, userData.email)
	}

	return nil
}
