// file: internals/features/assistant/chatbot/service/intents.go
package service

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentProgress       Intent = "progress"
	IntentRecommendation Intent = "recommendation"
	IntentHelp           Intent = "help"
	IntentMotivation     Intent = "motivation"
	IntentCourseInfo     Intent = "courseInfo"
	IntentQuiz           Intent = "quiz"
	IntentCertificate    Intent = "certificate"
	IntentFallback       Intent = "fallback"
)

// Hanya greeting yang di-anchor ke awal kalimat; sisanya cocok di mana saja.
// Input sudah di-lowercase sebelum dicocokkan.
var patterns = map[Intent]*regexp.Regexp{
	IntentGreeting:       regexp.MustCompile(`^(hi|hello|hey|good morning|good afternoon|good evening)`),
	IntentProgress:       regexp.MustCompile(`(progress|how am i doing|my performance|track|status)`),
	IntentRecommendation: regexp.MustCompile(`(recommend|suggest|what should i|next course|what to learn)`),
	IntentHelp:           regexp.MustCompile(`(help|stuck|don't understand|confused|explain)`),
	IntentMotivation:     regexp.MustCompile(`(motivate|encourage|give up|tired|frustrated)`),
	IntentCourseInfo:     regexp.MustCompile(`(tell me about|what is|explain|course)`),
	IntentQuiz:           regexp.MustCompile(`(quiz|test|assessment|exam)`),
	IntentCertificate:    regexp.MustCompile(`(certificate|certification|credential)`),
}

// dispatchOrder: urutan prioritas, yang pertama cocok menang.
// courseInfo dan quiz punya pattern tapi tidak pernah di-dispatch.
var dispatchOrder = []Intent{
	IntentGreeting,
	IntentProgress,
	IntentRecommendation,
	IntentMotivation,
	IntentHelp,
	IntentCertificate,
}

var lower = cases.Lower(language.Und)

func normalize(text string) string {
	return lower.String(norm.NFKC.String(text))
}

// Classify memetakan teks user ke satu intent.
func Classify(text string) Intent {
	msg := normalize(text)
	for _, in := range dispatchOrder {
		if patterns[in].MatchString(msg) {
			return in
		}
	}
	return IntentFallback
}
