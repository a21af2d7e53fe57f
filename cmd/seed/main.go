package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"research-nest.backend/internal/config"
	"research-nest.backend/internal/domain/entities"
	"research-nest.backend/pkg/crypto"
)

// seed migrates the schema, provisions the admin account, and loads sample
// content for local development. Collections that already hold rows are
// left alone, so re-running is safe.
func seed(db *gorm.DB, adminPassword string) error {
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.TeamMember{},
		&entities.ResearchArea{},
		&entities.Publication{},
		&entities.Project{},
		&entities.Activity{},
		&entities.GalleryImage{},
	); err != nil {
		return err
	}

	if err := seedAdminUser(db, adminPassword); err != nil {
		return err
	}
	log.Println("✓ Admin user created")

	if err := seedCollection(db, sampleTeamMembers()); err != nil {
		return err
	}
	log.Println("✓ Team members seeded")

	if err := seedCollection(db, sampleResearchAreas()); err != nil {
		return err
	}
	log.Println("✓ Research areas seeded")

	if err := seedCollection(db, samplePublications()); err != nil {
		return err
	}
	log.Println("✓ Publications seeded")

	if err := seedCollection(db, sampleProjects()); err != nil {
		return err
	}
	log.Println("✓ Projects seeded")

	if err := seedCollection(db, sampleActivities()); err != nil {
		return err
	}
	log.Println("✓ Activities seeded")

	return nil
}

func seedAdminUser(db *gorm.DB, password string) error {
	var existing entities.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	content := entities.NewContent()
	user := entities.User{
		ID:           content.ID,
		Username:     "admin",
		PasswordHash: hash,
		Email:        "admin@quantum-group.edu",
		CreatedAt:    content.CreatedAt,
	}
	return db.Create(&user).Error
}

// seedCollection inserts the sample records only when the table is empty
func seedCollection[M any](db *gorm.DB, records []*M) error {
	var count int64
	if err := db.Model(new(M)).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, record := range records {
		if err := db.Create(record).Error; err != nil {
			return err
		}
	}
	return nil
}

func sampleTeamMembers() []*entities.TeamMember {
	return []*entities.TeamMember{
		entities.InsertTeamMember{
			Name:  "Dr. Eleanor Vance",
			Role:  "Principal Investigator",
			Email: "e.vance@university.edu",
			Image: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?q=80&w=200&auto=format&fit=crop",
			Bio:   "Dr. Vance leads the Quantum Research Group with over 15 years of experience in quantum mechanics and materials science.",
			Order: 1,
		}.NewRecord(),
		entities.InsertTeamMember{
			Name:  "Dr. James Chen",
			Role:  "Postdoctoral Researcher",
			Email: "j.chen@university.edu",
			Image: "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?q=80&w=200&auto=format&fit=crop",
			Bio:   "Specializing in computational modeling of complex systems.",
			Order: 2,
		}.NewRecord(),
		entities.InsertTeamMember{
			Name:  "Sarah Miller",
			Role:  "PhD Candidate",
			Email: "s.miller@university.edu",
			Image: "https://images.unsplash.com/photo-1580489944761-15a19d654956?q=80&w=200&auto=format&fit=crop",
			Bio:   "Focusing on renewable energy applications of nanomaterials.",
			Order: 3,
		}.NewRecord(),
		entities.InsertTeamMember{
			Name:  "David Park",
			Role:  "PhD Candidate",
			Email: "d.park@university.edu",
			Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=200&auto=format&fit=crop",
			Bio:   "Investigating AI-driven drug discovery pipelines.",
			Order: 4,
		}.NewRecord(),
	}
}

func sampleResearchAreas() []*entities.ResearchArea {
	return []*entities.ResearchArea{
		entities.InsertResearchArea{
			Title:       "Quantum Materials",
			Description: "Exploring the properties of novel quantum materials for next-generation electronics.",
			Image:       "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?q=80&w=800&auto=format&fit=crop",
			Order:       1,
		}.NewRecord(),
		entities.InsertResearchArea{
			Title:       "Sustainable Energy",
			Description: "Developing efficient catalysts for hydrogen production and carbon capture.",
			Image:       "https://images.unsplash.com/photo-1473341304170-5799ed41387e?q=80&w=800&auto=format&fit=crop",
			Order:       2,
		}.NewRecord(),
		entities.InsertResearchArea{
			Title:       "Bio-Computation",
			Description: "Intersecting biology and computer science to model cellular processes.",
			Image:       "https://images.unsplash.com/photo-1532187863486-abf9dbad1b69?q=80&w=800&auto=format&fit=crop",
			Order:       3,
		}.NewRecord(),
	}
}

func samplePublications() []*entities.Publication {
	return []*entities.Publication{
		entities.InsertPublication{
			Title:   "Topological Insulators in High-Temperature Regimes",
			Authors: "E. Vance, J. Chen",
			Journal: "Nature Physics",
			Year:    2024,
			DOI:     "10.1038/nature12345",
		}.NewRecord(),
		entities.InsertPublication{
			Title:   "Efficient Hydrogen Evolution using MoS2 Nanostructures",
			Authors: "S. Miller, E. Vance",
			Journal: "Journal of Materials Chemistry A",
			Year:    2023,
			DOI:     "10.1039/C9TA12345A",
		}.NewRecord(),
		entities.InsertPublication{
			Title:   "Machine Learning Approaches to Protein Folding",
			Authors: "D. Park, J. Chen, E. Vance",
			Journal: "Bioinformatics",
			Year:    2023,
			DOI:     "10.1093/bioinformatics/btz123",
		}.NewRecord(),
	}
}

func sampleProjects() []*entities.Project {
	return []*entities.Project{
		entities.InsertProject{
			Title:   "Project Helios",
			Summary: "Next-generation solar cells using perovskite materials.",
			Funding: "NSF",
			Status:  "Ongoing",
		}.NewRecord(),
		entities.InsertProject{
			Title:   "Neural Link Interface",
			Summary: "Direct brain-computer interface for motor cortex decoding.",
			Funding: "NIH",
			Status:  "Completed",
		}.NewRecord(),
		entities.InsertProject{
			Title:   "Ocean Clean-up Drone",
			Summary: "Autonomous swarm robotics for microplastic collection.",
			Funding: "Internal",
			Status:  "Ongoing",
		}.NewRecord(),
	}
}

func sampleActivities() []*entities.Activity {
	return []*entities.Activity{
		entities.InsertActivity{
			Title:       "Annual Symposium on Quantum Tech",
			Date:        "October 15, 2024",
			Description: "We hosted over 200 researchers for our annual symposium.",
			Image:       "https://images.unsplash.com/photo-1544531586-fde5298cdd40?q=80&w=800&auto=format&fit=crop",
		}.NewRecord(),
		entities.InsertActivity{
			Title:       "Outreach at Local High School",
			Date:        "September 10, 2024",
			Description: "Our PhD students demonstrated physics experiments to 10th graders.",
			Image:       "https://images.unsplash.com/photo-1524178232363-1fb2b075b955?q=80&w=800&auto=format&fit=crop",
		}.NewRecord(),
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.Server.IsProduction() {
		log.Println("⚠️ Seeding is disabled in production!")
		return
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Starting database seed...")
	adminPassword := getAdminPassword()
	if err := seed(db, adminPassword); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Database seed completed successfully!")
}

func getAdminPassword() string {
	if pw := os.Getenv("SEED_ADMIN_PASSWORD"); pw != "" {
		return pw
	}
	return "admin"
}
