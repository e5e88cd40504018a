package database

import (
	"fmt"
	"log"

	config "github.com/internbridge/intern_bridge/configs"
	"github.com/internbridge/intern_bridge/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Enrollment{},
		&models.TrainingModule{},
		&models.ModuleProgress{},
		&models.Internship{},
		&models.InternshipApplication{},
		&models.Certificate{},
		&models.ContactSubmission{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}

	// at most one locked enrollment per student, enforced by the database
	// so concurrent writers cannot slip past the application checks
	err = DB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_enrollments_one_locked_per_student
		 ON enrollments (student_id)
		 WHERE status NOT IN ('cancelled', 'pending_payment')`,
	).Error
	if err != nil {
		log.Fatalf("🔥 Failed to create locked-enrollment index: %v", err)
	}

	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// streamCurriculum is the static module list per training stream. Rows are
// seeded once; per-enrollment progress lives in module_progresses.
var streamCurriculum = map[string][]string{
	"ux-ui-design": {
		"Design Foundations & Figma",
		"User Research & Personas",
		"Wireframing & Prototyping",
		"Visual Design Systems",
		"Usability Testing",
		"Portfolio Project",
	},
	"full-stack-development": {
		"HTML, CSS & JavaScript",
		"React Fundamentals",
		"REST APIs & Databases",
		"Authentication & Security",
		"Deployment & DevOps Basics",
		"Capstone Project",
	},
	"digital-marketing": {
		"Marketing Fundamentals",
		"SEO & Content Strategy",
		"Social Media Marketing",
		"Paid Advertising",
		"Analytics & Reporting",
		"Campaign Project",
	},
	"creative-video-design": {
		"Storyboarding & Scripting",
		"Shooting & Composition",
		"Editing with Premiere Pro",
		"Motion Graphics",
		"Color & Sound",
		"Showreel Project",
	},
}

func SeedStreams() {
	for stream, titles := range streamCurriculum {
		var count int64
		if err := DB.Model(&models.TrainingModule{}).Where("stream = ?", stream).Count(&count).Error; err != nil {
			log.Fatalf("🔥 Failed to check curriculum for stream %s: %v", stream, err)
			return
		}
		if count > 0 {
			continue
		}

		for i, title := range titles {
			module := models.TrainingModule{
				Stream:    stream,
				Title:     title,
				SortOrder: i + 1,
			}
			if err := DB.Create(&module).Error; err != nil {
				log.Fatalf("🔥 Failed to seed module %q for stream %s: %v", title, stream, err)
				return
			}
		}
	}

	log.Println("✅ Training streams seeded successfully")
}
