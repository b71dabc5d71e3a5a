// Command seed wipes and repopulates the portfolio tables with the CV
// dataset. Run it once after the first deploy, or any time the CV changes.
package main

import (
	"log"

	"github.com/abidnoul/portfolio/internal/app"
	"github.com/abidnoul/portfolio/internal/config"
	"github.com/abidnoul/portfolio/internal/model"

	"gorm.io/gorm"
)

type categorySeed struct {
	name        string
	icon        string
	proficiency int
	skills      []string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := app.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := app.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	log.Println("Successfully populated database with CV data")
}

func seed(db *gorm.DB) error {
	// Clear existing data
	for _, m := range []interface{}{
		&model.Skill{}, &model.SkillCategory{}, &model.Education{},
		&model.Project{}, &model.Service{}, &model.Profile{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}

	profile := model.Profile{
		ID:            model.ProfileID,
		Name:          "ABID HUSSAIN",
		Email:         "abidhussainnoul512@gmail.com",
		Phone:         "0301-4850613",
		Address:       "ThathaNoulan, Sharaqpur, Distt. Sheikhupura, Punjab.",
		Objective:     "To apply my expertise in Python, Django (Web Development), and data science workflows alongside advanced skills in AI and Generative Models (LLMs, LoRA/QLoRA, RAG/CAG, NLP, AI agents, and prompt engineering) to build intelligent, data-driven solutions.",
		FatherName:    "Hadayat Ali",
		DateOfBirth:   "Feb, 15, 1986.",
		CNIC:          "35401-1249389-9",
		MaritalStatus: "Married",
		Domicile:      "Sheikhupura (Punjab)",
		Religion:      "Islam",
		Height:        "5 fit, 10 Inch.",
	}
	if err := db.Create(&profile).Error; err != nil {
		return err
	}
	log.Printf("Created profile: %s", profile.Name)

	categories := []categorySeed{
		{"Programming Languages", "fas fa-code", 85, []string{"Python", "Markdown", "Html", "CSS"}},
		{"Frameworks & Libraries", "fas fa-layer-group", 88, []string{"Django (Web Development)", "Pandas", "NumPy", "Scikit-learn", "Matplotlib", "Seaborn", "Plotly", "Altair", "PyTorch", "Vibe Coding"}},
		{"Artificial Intelligence", "fas fa-brain", 90, []string{"Generative AI", "LLMs(LoRA/QLoRA)", "NLP", "Prompt Engineering", "AI Agents", "RAG & CAG", "and Offline RAG-based Q&A Applications"}},
		{"Automation & Workflows", "fas fa-cogs", 80, []string{"n8n", "Data Scraping", "API Integration"}},
		{"Data Analysis & Visualization", "fas fa-chart-bar", 80, []string{"Power BI", "Tableau", "Excel", "PowerPoint"}},
		{"Cloud & Databases", "fas fa-cloud", 80, []string{"AWS", "MySQL", "Hostinger kvme"}},
		{"Software Tools", "fas fa-tools", 80, []string{"CorelDraw", "Adobe Photoshop", "Adobe Flash"}},
		{"Platforms", "fas fa-desktop", 80, []string{"Visual Studio Code", "Jupyter Notebook", "PyCharm"}},
		{"Social Skills", "fas fa-users", 80, []string{"Communication Skills", "Analytical Skills", "Attention to Detail", "Negotiation Skills", "Interpersonal Skills", "Leadership"}},
	}

	for _, cs := range categories {
		category := model.SkillCategory{Name: cs.name, Icon: cs.icon}
		if err := db.Create(&category).Error; err != nil {
			return err
		}

		for _, name := range cs.skills {
			skill := model.Skill{CategoryID: category.ID, Name: name, Proficiency: cs.proficiency}
			skill.ClampProficiency()
			if err := db.Create(&skill).Error; err != nil {
				return err
			}
		}
		log.Printf("Created skill category: %s with %d skills", cs.name, len(cs.skills))
	}

	educationData := []model.Education{
		{Degree: "Advanced ML/DL/AI and Django", Institution: "Codanics.com", Year: "2025", Description: "Advanced techniques in machine learning (ML) & Deep learning (DL) & Artificial intelligence (AI) and Django"},
		{Degree: "Data Science Certification", Institution: "Codanics.com", Year: "2024", Description: "Comprehensive Data Science program"},
		{Degree: "Master in Economics", Institution: "Punjab University", Year: "2012", Description: "Master's degree in Economics"},
	}
	for _, edu := range educationData {
		if err := db.Create(&edu).Error; err != nil {
			return err
		}
		log.Printf("Created education: %s", edu.Degree)
	}

	projectsData := []model.Project{
		{
			Title:        "AI-Powered Data Analysis Dashboard",
			Description:  "A comprehensive dashboard built with Django and integrated with machine learning models for predictive analytics. Features real-time data visualization using Plotly and advanced AI algorithms for pattern recognition.",
			Technologies: "Django, Python, Machine Learning, Plotly, Pandas, NumPy",
			Featured:     true,
		},
		{
			Title:        "E-commerce Web Application",
			Description:  "Full-stack e-commerce platform with Django backend, featuring user authentication, payment integration, and inventory management system.",
			Technologies: "Django, HTML, CSS, JavaScript, PostgreSQL",
			Featured:     true,
		},
		{
			Title:        "NLP Text Analysis Tool",
			Description:  "Natural Language Processing application for sentiment analysis and text classification using advanced AI models and prompt engineering techniques.",
			Technologies: "Python, NLP, AI, Django, Machine Learning",
			Featured:     false,
		},
	}
	for _, project := range projectsData {
		if err := db.Create(&project).Error; err != nil {
			return err
		}
		log.Printf("Created project: %s", project.Title)
	}

	servicesData := []model.Service{
		{Title: "Web Development", Description: "Professional Django web development services for scalable and robust web applications.", Icon: "fas fa-globe"},
		{Title: "Data Science & Analytics", Description: "Advanced data analysis, visualization, and machine learning solutions for business insights.", Icon: "fas fa-chart-line"},
		{Title: "AI & Machine Learning", Description: "Custom AI solutions including NLP, computer vision, and predictive modeling.", Icon: "fas fa-robot"},
		{Title: "Automation & Workflows", Description: "Process automation and workflow optimization using modern tools and technologies.", Icon: "fas fa-sync-alt"},
	}
	for _, svc := range servicesData {
		if err := db.Create(&svc).Error; err != nil {
			return err
		}
		log.Printf("Created service: %s", svc.Title)
	}

	return nil
}
