package database

import (
	"fmt"

	"portfolio/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var defaultProfile = models.Profile{
	Name:  "J Madiha Firdous",
	Title: "BCA Student | Aspiring Web Developer",
	Email: "madiha13052008@gmail.com",
	Phone: "9177702367",
	About: "I am a passionate BCA student with a deep interest in programming and web development. " +
		"I love exploring new technologies and building creative solutions. My journey in tech started " +
		"with curiosity, and now I am on a mission to become a skilled web developer. " +
		"I believe in continuous learning and pushing boundaries.",
}

var defaultSkills = []models.Skill{
	{Name: "HTML5", Emoji: "🌐", Color: "#e34c26", Proficiency: 85},
	{Name: "CSS3", Emoji: "🎨", Color: "#264de4", Proficiency: 80},
	{Name: "Java", Emoji: "☕", Color: "#f89820", Proficiency: 75},
	{Name: "Python", Emoji: "🐍", Color: "#3776ab", Proficiency: 70},
}

var defaultProjects = []models.Project{
	{
		Title:        "Portfolio Website 🎨",
		Description:  "A fun cartoon-themed portfolio with playful animations!",
		Technologies: "HTML,CSS,JavaScript,Python",
		ImageURL:     "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400",
	},
	{
		Title:        "Calculator App 🔢",
		Description:  "A colorful calculator with basic and scientific operations.",
		Technologies: "HTML,CSS,JavaScript",
		ImageURL:     "https://images.unsplash.com/photo-1587145820266-a5951ee6f620?w=400",
	},
	{
		Title:        "To-Do List 📝",
		Description:  "A cute task manager to organize daily activities!",
		Technologies: "HTML,CSS,JavaScript",
		ImageURL:     "https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=400",
	},
}

// Seed inserts the default rows into every empty table. Tables that already
// hold data are left untouched.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	profile := defaultProfile
	if err := seedTable(db, logger, &models.Profile{}, &profile); err != nil {
		return err
	}

	skills := append([]models.Skill(nil), defaultSkills...)
	if err := seedTable(db, logger, &models.Skill{}, &skills); err != nil {
		return err
	}

	projects := append([]models.Project(nil), defaultProjects...)
	if err := seedTable(db, logger, &models.Project{}, &projects); err != nil {
		return err
	}

	return seedTable(db, logger, &models.VisitorCounter{}, &models.VisitorCounter{Count: 0})
}

// seedTable creates rows when the table behind model is empty. rows may be a
// pointer to a single record or to a slice of records.
func seedTable(db *gorm.DB, logger *zap.Logger, model interface{}, rows interface{}) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows in %T: %w", model, err)
	}
	if count > 0 {
		logger.Debug("Table already seeded", zap.String("model", fmt.Sprintf("%T", model)), zap.Int64("rows", count))
		return nil
	}

	if err := db.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to seed %T: %w", model, err)
	}
	logger.Info("Seeded default data", zap.String("model", fmt.Sprintf("%T", model)))
	return nil
}
