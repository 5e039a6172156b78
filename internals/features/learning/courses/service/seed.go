package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"ailms_backend/internals/features/learning/courses/model"
)

const day = 24 * time.Hour

func sampleCourses(now time.Time) []model.Course {
	mk := func(title, desc, category string, diff model.Difficulty, hours int, rating float64, ageDays int,
		tags, prereq, outcomes []string) model.Course {
		return model.Course{
			ID:               "course-" + uuid.NewString(),
			Title:            title,
			Description:      desc,
			Instructor:       "instructor-1",
			Category:         category,
			Difficulty:       diff,
			Duration:         hours,
			Rating:           rating,
			Tags:             tags,
			Prerequisites:    prereq,
			LearningOutcomes: outcomes,
			EnrolledStudents: []string{},
			Published:        true,
			CreatedAt:        now.Add(-time.Duration(ageDays) * day),
			UpdatedAt:        now,
		}
	}

	return []model.Course{
		mk("Introduction to Artificial Intelligence",
			"Learn the fundamentals of AI, including machine learning, neural networks, and deep learning. Perfect for beginners who want to understand how AI works.",
			model.CategoryAI, model.DifficultyBeginner, 40, 4.8, 30,
			[]string{"AI", "Machine Learning", "Neural Networks"},
			[]string{"Basic programming knowledge"},
			[]string{"Understand AI fundamentals", "Learn about machine learning algorithms", "Build simple AI models"}),
		mk("Python for Data Science",
			"Master Python programming for data analysis, visualization, and machine learning. Includes NumPy, Pandas, Matplotlib, and Scikit-learn.",
			model.CategoryPython, model.DifficultyBeginner, 35, 4.9, 25,
			[]string{"Python", "Data Science", "Pandas", "NumPy"},
			[]string{"None"},
			[]string{"Master Python programming", "Analyze data with Pandas", "Create visualizations"}),
		mk("Deep Learning with Neural Networks",
			"Advanced course on deep learning, covering CNNs, RNNs, LSTMs, and Transformers. Build state-of-the-art AI models.",
			model.CategoryDL, model.DifficultyAdvanced, 60, 4.7, 20,
			[]string{"Deep Learning", "Neural Networks", "CNN", "RNN"},
			[]string{"Python", "Machine Learning basics"},
			[]string{"Build deep neural networks", "Implement CNNs and RNNs", "Work with Transformers"}),
		mk("Generative AI and Large Language Models",
			"Explore the world of Generative AI, including GPT, DALL-E, and Stable Diffusion. Learn to build AI applications.",
			model.CategoryGenAI, model.DifficultyIntermediate, 45, 4.9, 15,
			[]string{"Generative AI", "LLM", "GPT", "AI Applications"},
			[]string{"Python", "Deep Learning basics"},
			[]string{"Understand LLMs", "Build AI applications", "Fine-tune models"}),
	}
}

// SeedSampleCourses mengisi katalog contoh hanya kalau koleksi courses masih kosong.
// Return jumlah course yang ditambahkan.
func (s *CourseService) SeedSampleCourses(ctx context.Context) (int, error) {
	existing, err := s.Courses.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	n := 0
	for _, c := range sampleCourses(s.Now().UTC()) {
		if err := s.Courses.Add(ctx, c.ID, &c); err != nil {
			return n, err
		}
		n++
	}
	log.Printf("[CourseService] ✅ Sample courses initialized: %d", n)
	return n, nil
}
