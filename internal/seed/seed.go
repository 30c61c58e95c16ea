// Package seed loads the administrator account and a handful of sample
// members into an empty database.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"skillswap/internal/models/db_models"
	"skillswap/pkg/utils"
)

const AdminEmail = "admin@email.com"

const samplePassword = "password123"

type skillSeed struct {
	name, description, category, level string
}

type userSeed struct {
	name, email, location string
	offered, wanted       []skillSeed
}

var sampleUsers = []userSeed{
	{
		name: "John Developer", email: "john@example.com", location: "New York, NY",
		offered: []skillSeed{
			{"React Development", "Frontend web development with React", "Technology", db_models.LevelAdvanced},
			{"Node.js", "Backend development with Node.js", "Technology", db_models.LevelIntermediate},
		},
		wanted: []skillSeed{
			{"UI/UX Design", "User interface and experience design", "Design", db_models.LevelIntermediate},
			{"Python", "Python programming language", "Technology", db_models.LevelBeginner},
		},
	},
	{
		name: "Sarah Designer", email: "sarah@example.com", location: "Los Angeles, CA",
		offered: []skillSeed{
			{"UI/UX Design", "User interface and experience design", "Design", db_models.LevelExpert},
			{"Adobe Photoshop", "Photo editing and graphic design", "Design", db_models.LevelAdvanced},
		},
		wanted: []skillSeed{
			{"React Development", "Frontend web development with React", "Technology", db_models.LevelIntermediate},
			{"Digital Marketing", "Online marketing strategies", "Marketing", db_models.LevelBeginner},
		},
	},
	{
		name: "Mike Writer", email: "mike@example.com", location: "Chicago, IL",
		offered: []skillSeed{
			{"Content Writing", "Blog posts and articles", "Writing", db_models.LevelExpert},
			{"Copywriting", "Marketing and sales copy", "Writing", db_models.LevelAdvanced},
		},
		wanted: []skillSeed{
			{"SEO", "Search engine optimization", "Marketing", db_models.LevelIntermediate},
			{"Social Media Marketing", "Social media strategy and management", "Marketing", db_models.LevelBeginner},
		},
	},
	{
		name: "Emma Data Scientist", email: "emma@example.com", location: "San Francisco, CA",
		offered: []skillSeed{
			{"Python", "Python programming for data science", "Technology", db_models.LevelExpert},
			{"Machine Learning", "ML model development and deployment", "Technology", db_models.LevelAdvanced},
		},
		wanted: []skillSeed{
			{"Data Visualization", "Creating charts and dashboards", "Technology", db_models.LevelIntermediate},
			{"Statistics", "Statistical analysis and interpretation", "Mathematics", db_models.LevelAdvanced},
		},
	},
	{
		name: "Alex Marketing Pro", email: "alex@example.com", location: "Austin, TX",
		offered: []skillSeed{
			{"Digital Marketing", "Online marketing strategies and campaigns", "Marketing", db_models.LevelExpert},
			{"SEO", "Search engine optimization techniques", "Marketing", db_models.LevelAdvanced},
			{"Social Media Marketing", "Social media strategy and management", "Marketing", db_models.LevelAdvanced},
		},
		wanted: []skillSeed{
			{"Content Writing", "Blog posts and marketing copy", "Writing", db_models.LevelIntermediate},
			{"Graphic Design", "Visual design for marketing materials", "Design", db_models.LevelBeginner},
		},
	},
}

func weekdayAvailability() []db_models.AvailabilitySlot {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	slots := make([]db_models.AvailabilitySlot, 0, len(days))
	for _, d := range days {
		slots = append(slots, db_models.AvailabilitySlot{Day: d, StartTime: "09:00", EndTime: "17:00"})
	}
	return slots
}

func strPtr(s string) *string { return &s }

// Run creates the admin account and the sample users. Accounts whose email
// already exists are left untouched, so Run can be repeated. It returns the
// number of accounts created.
func Run(ctx context.Context, db *gorm.DB, adminPassword string, log *zap.Logger) (int, error) {
	if adminPassword == "" {
		return 0, errors.New("admin password is required")
	}

	created := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := createIfMissing(tx, adminUser(), adminPassword)
		if err != nil {
			return err
		}
		if ok {
			created++
			log.Info("admin user created", zap.String("email", AdminEmail))
		}

		for _, s := range sampleUsers {
			ok, err := createIfMissing(tx, s.build(), samplePassword)
			if err != nil {
				return err
			}
			if ok {
				created++
				log.Info("sample user created", zap.String("email", s.email))
			}
		}
		return nil
	})
	return created, err
}

func adminUser() *db_models.User {
	return &db_models.User{
		Name:         "Administrator",
		Email:        AdminEmail,
		Location:     strPtr("Admin Office"),
		IsPublic:     false,
		Availability: datatypes.NewJSONType([]db_models.AvailabilitySlot{}),
		Role:         db_models.RoleAdmin,
		Status:       db_models.StatusVerified,
	}
}

func (s userSeed) build() *db_models.User {
	u := &db_models.User{
		Name:         s.name,
		Email:        s.email,
		Location:     strPtr(s.location),
		IsPublic:     true,
		Availability: datatypes.NewJSONType(weekdayAvailability()),
		Role:         db_models.RoleUser,
		Status:       db_models.StatusVerified,
	}
	for _, sk := range s.offered {
		u.SkillsOffered = append(u.SkillsOffered, db_models.Skill{
			Name: sk.name, Description: strPtr(sk.description), Category: strPtr(sk.category), Level: strPtr(sk.level),
		})
	}
	for _, sk := range s.wanted {
		u.SkillsWanted = append(u.SkillsWanted, db_models.SkillWanted{
			Name: sk.name, Description: strPtr(sk.description), Category: strPtr(sk.category), LevelNeeded: strPtr(sk.level),
		})
	}
	return u
}

func createIfMissing(tx *gorm.DB, user *db_models.User, password string) (bool, error) {
	var count int64
	if err := tx.Model(&db_models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return false, err
	}
	user.PasswordHashed = hashed
	if err := tx.Create(user).Error; err != nil {
		return false, fmt.Errorf("seed %s: %w", user.Email, err)
	}
	return true, nil
}
