package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuiz() Quiz {
	return Quiz{
		ID:       "quiz-1",
		CourseID: "course-1",
		Title:    "Basics",
		Questions: []Question{
			{ID: "q1", Type: QuestionTypeMultipleChoice, Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4", Points: 1},
			{ID: "q2", Type: QuestionTypeTrueFalse, Question: "Go has generics", Options: []string{"True", "False"}, CorrectAnswer: "True", Points: 2},
		},
		PassingScore: 70,
	}
}

func TestQuizValidate(t *testing.T) {
	qz := validQuiz()
	require.NoError(t, qz.Validate())
	assert.Equal(t, 3, qz.TotalPoints())
	assert.True(t, qz.IsCourseWide())

	cases := map[string]func(q *Quiz){
		"no questions":        func(q *Quiz) { q.Questions = nil },
		"correct not in opts": func(q *Quiz) { q.Questions[0].CorrectAnswer = "5" },
		"correct wrong case":  func(q *Quiz) { q.Questions[1].CorrectAnswer = "true" },
		"tf custom options":   func(q *Quiz) { q.Questions[1].Options = []string{"Yes", "No"} },
		"zero points":         func(q *Quiz) { q.Questions[0].Points = 0 },
		"unknown type":        func(q *Quiz) { q.Questions[0].Type = "essay" },
		"duplicate ids":       func(q *Quiz) { q.Questions[1].ID = "q1" },
		"mcq single option":   func(q *Quiz) { q.Questions[0].Options = []string{"4"} },
		"passing score >100":  func(q *Quiz) { q.PassingScore = 101 },
		"missing question id": func(q *Quiz) { q.Questions[0].ID = " " },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			qz := validQuiz()
			mutate(&qz)
			assert.ErrorIs(t, qz.Validate(), ErrInvalidQuiz)
		})
	}
}

func TestQuizApplyDefaults(t *testing.T) {
	qz := Quiz{Questions: []Question{{ID: "q1", Type: QuestionTypeTrueFalse, CorrectAnswer: "False", Points: 1}}}
	qz.ApplyDefaults()
	assert.Equal(t, DefaultPassingScore, qz.PassingScore)
	assert.Equal(t, DefaultDuration, qz.Duration)
	assert.Equal(t, []string{"True", "False"}, qz.Questions[0].Options)
	require.NoError(t, qz.Validate())
}
