package infra

import (
	"log"

	"gorm.io/gorm"

	"mockmate/internal/models/db_models"
)

// seedQuestions is the built-in question bank: three job types, six ordered
// questions each.
var seedQuestions = []db_models.Question{
	// Software Developer
	{JobType: "software-developer", QuestionText: "Tell me more about yourself.", Order: 1, Category: db_models.CategoryGeneral},
	{JobType: "software-developer", QuestionText: "Describe a challenging technical problem you solved recently. What was your approach?", Order: 2, Category: db_models.CategoryTechnical},
	{JobType: "software-developer", QuestionText: "How do you handle code reviews and feedback from your peers?", Order: 3, Category: db_models.CategoryBehavioral},
	{JobType: "software-developer", QuestionText: "Explain a time when you had to learn a new technology quickly. How did you approach it?", Order: 4, Category: db_models.CategoryBehavioral},
	{JobType: "software-developer", QuestionText: "How do you ensure your code is maintainable and scalable?", Order: 5, Category: db_models.CategoryTechnical},
	{JobType: "software-developer", QuestionText: "Do you have any questions?", Order: 6, Category: db_models.CategoryEngagement},

	// Marketing Manager
	{JobType: "marketing-manager", QuestionText: "Tell me more about yourself.", Order: 1, Category: db_models.CategoryGeneral},
	{JobType: "marketing-manager", QuestionText: "Describe a successful marketing campaign you led. What made it successful?", Order: 2, Category: db_models.CategoryTechnical},
	{JobType: "marketing-manager", QuestionText: "How do you handle disagreements with stakeholders about marketing strategy?", Order: 3, Category: db_models.CategoryBehavioral},
	{JobType: "marketing-manager", QuestionText: "Tell me about a time when a marketing campaign didn't perform as expected. How did you handle it?", Order: 4, Category: db_models.CategoryBehavioral},
	{JobType: "marketing-manager", QuestionText: "How do you measure the success of your marketing initiatives?", Order: 5, Category: db_models.CategoryTechnical},
	{JobType: "marketing-manager", QuestionText: "Do you have any questions?", Order: 6, Category: db_models.CategoryEngagement},

	// Data Analyst
	{JobType: "data-analyst", QuestionText: "Tell me more about yourself.", Order: 1, Category: db_models.CategoryGeneral},
	{JobType: "data-analyst", QuestionText: "Describe a complex dataset you worked with. How did you clean and analyze it?", Order: 2, Category: db_models.CategoryTechnical},
	{JobType: "data-analyst", QuestionText: "How do you communicate your findings to non-technical stakeholders?", Order: 3, Category: db_models.CategoryBehavioral},
	{JobType: "data-analyst", QuestionText: "Tell me about a time when your analysis led to a significant business impact.", Order: 4, Category: db_models.CategoryBehavioral},
	{JobType: "data-analyst", QuestionText: "What tools and technologies do you prefer for data analysis and why?", Order: 5, Category: db_models.CategoryTechnical},
	{JobType: "data-analyst", QuestionText: "Do you have any questions?", Order: 6, Category: db_models.CategoryEngagement},
}

// SeedQuestions loads the bank once; a non-empty table is left untouched.
func SeedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&seedQuestions).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d interview questions", len(seedQuestions))
	return nil
}
