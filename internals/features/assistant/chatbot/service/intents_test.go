package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPriority(t *testing.T) {
	cases := []struct {
		in   string
		want Intent
	}{
		{"hi, can you help me, I'm confused about my progress", IntentGreeting},
		{"Hello!", IntentGreeting},
		{"GOOD MORNING", IntentGreeting},
		{"  hi", IntentFallback}, // greeting hanya di awal kalimat
		{"I need help with my progress", IntentProgress},
		{"can you suggest something? I'm stuck", IntentRecommendation},
		{"I'm tired, please help", IntentMotivation},
		{"I don't understand this lesson", IntentHelp},
		{"How do I get a certificate?", IntentCertificate},
		{"tell me about the course", IntentFallback},
		{"when is the next exam", IntentFallback},
		{"history of computing", IntentGreeting},
		{"ＨＥＬＬＯ", IntentGreeting}, // fullwidth dinormalisasi NFKC
		{"", IntentFallback},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.in), "input=%q", tc.in)
	}
}
