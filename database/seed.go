package database

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/models"
)

const AdminUsername = "admin"

// defaultSkills is the minimum viable skill set seeded into an empty store.
var defaultSkills = []models.Skill{
	{Name: "React", Percentage: 90, Category: models.SkillCategoryFrontend},
	{Name: "JavaScript", Percentage: 88, Category: models.SkillCategoryFrontend},
	{Name: "HTML/CSS", Percentage: 92, Category: models.SkillCategoryFrontend},
	{Name: "Tailwind", Percentage: 85, Category: models.SkillCategoryFrontend},
	{Name: "Node.js", Percentage: 87, Category: models.SkillCategoryBackend},
	{Name: "Express", Percentage: 84, Category: models.SkillCategoryBackend},
	{Name: "MongoDB", Percentage: 80, Category: models.SkillCategoryBackend},
	{Name: "REST API", Percentage: 89, Category: models.SkillCategoryBackend},
	{Name: "Git", Percentage: 86, Category: models.SkillCategoryAdditional},
	{Name: "React Native", Percentage: 78, Category: models.SkillCategoryAdditional},
	{Name: "TypeScript", Percentage: 83, Category: models.SkillCategoryAdditional},
	{Name: "Responsive Design", Percentage: 90, Category: models.SkillCategoryAdditional},
}

// Bootstrap ensures the minimum viable data set exists: an admin user and a
// default skill set. It is idempotent and safe to run on every startup.
func Bootstrap(db Database, adminPassword string) error {
	existing, err := db.Users().FindByUsername(AdminUsername)
	if err != nil {
		return err
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Username: AdminUsername,
			Password: string(hash),
			IsAdmin:  true,
		}
		if err := db.Users().Add(&admin); err != nil {
			return err
		}
		log.Info().Str("username", AdminUsername).Msg("created admin user")
	}

	skills, err := db.Skills().FindAll()
	if err != nil {
		return err
	}
	if len(skills) == 0 {
		for _, skill := range defaultSkills {
			s := skill
			if err := db.Skills().Add(&s); err != nil {
				return err
			}
		}
		log.Info().Int("count", len(defaultSkills)).Msg("seeded default skills")
	}

	return nil
}
