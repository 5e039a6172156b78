// file: internals/features/assistant/chatbot/service/responders.go
package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	certModel "ailms_backend/internals/features/achievements/certificates/model"
	courseModel "ailms_backend/internals/features/learning/courses/model"
	progressModel "ailms_backend/internals/features/learning/progress/model"
)

const (
	maxRecommendations = 3
	snippetLength      = 80
)

func plural(n int, cond bool) string {
	if cond {
		return "s"
	}
	return ""
}

// progressTip: batas 30 dan 70 masuk ke tier di atasnya.
func progressTip(avg float64) string {
	switch {
	case avg < 30:
		return tipLowProgress
	case avg < 70:
		return tipMidProgress
	default:
		return tipHighProgress
	}
}

func formatProgress(rows []progressModel.Progress) string {
	if len(rows) == 0 {
		return noEnrollmentReply
	}
	total := len(rows)
	sum := lo.SumBy(rows, func(p progressModel.Progress) float64 { return p.OverallProgress })
	avg := sum / float64(total)
	completed := lo.CountBy(rows, func(p progressModel.Progress) bool { return p.IsCompleted() })

	var b strings.Builder
	b.WriteString("📊 **Your Learning Progress:**\n\n")
	fmt.Fprintf(&b, "• Enrolled in %d course%s\n", total, plural(total, total > 1))
	fmt.Fprintf(&b, "• Completed %d course%s\n", completed, plural(completed, completed != 1))
	fmt.Fprintf(&b, "• Average progress: %s%%\n\n", strconv.FormatFloat(math.Round(avg), 'f', 0, 64))
	b.WriteString(progressTip(avg))
	return b.String()
}

// recommend: course yang belum diikuti, rating tertinggi dulu, seri mengikuti urutan katalog.
func recommend(courses []courseModel.Course, rows []progressModel.Progress) []courseModel.Course {
	enrolled := lo.SliceToMap(rows, func(p progressModel.Progress) (string, struct{}) {
		return p.CourseID, struct{}{}
	})
	available := lo.Reject(courses, func(c courseModel.Course, _ int) bool {
		_, ok := enrolled[c.ID]
		return ok
	})
	slices.SortStableFunc(available, func(a, b courseModel.Course) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})
	if len(available) > maxRecommendations {
		available = available[:maxRecommendations]
	}
	return available
}

func snippet(s string) string {
	r := []rune(s)
	if len(r) > snippetLength {
		r = r[:snippetLength]
	}
	return string(r)
}

func formatRecommendations(top []courseModel.Course) string {
	if len(top) == 0 {
		return allEnrolledReply
	}
	var b strings.Builder
	b.WriteString("📚 **Recommended Courses for You:**\n\n")
	for i, c := range top {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, c.Title)
		fmt.Fprintf(&b, "   ⭐ %s | %s | %s\n", strconv.FormatFloat(c.Rating, 'f', -1, 64), c.Category, c.Difficulty)
		fmt.Fprintf(&b, "   %s...\n\n", snippet(c.Description))
	}
	b.WriteString(recommendationFooter)
	return b.String()
}

func formatCertificates(certs []certModel.Certificate) string {
	if len(certs) == 0 {
		return noCertificatesReply
	}
	n := len(certs)
	var b strings.Builder
	b.WriteString("🏆 **Your Certificates:**\n\n")
	fmt.Fprintf(&b, "You've earned %d certificate%s!\n\n", n, plural(n, n > 1))
	b.WriteString("Keep completing courses to earn more credentials and boost your portfolio!")
	return b.String()
}

/* ===================== responders (read-only) ===================== */

func (a *Assistant) progressResponse(ctx context.Context, userID string) string {
	rows, err := a.Progress.GetAllByIndex(ctx, "userId", userID)
	if err != nil {
		log.Printf("[Chatbot] WARN progress responder: %v", err)
		return progressErrorReply
	}
	return formatProgress(rows)
}

func (a *Assistant) recommendationResponse(ctx context.Context, userID string) string {
	courses, err := a.Courses.GetAll(ctx)
	if err != nil {
		log.Printf("[Chatbot] WARN recommendation responder: %v", err)
		return recommendationErrorReply
	}
	rows, err := a.Progress.GetAllByIndex(ctx, "userId", userID)
	if err != nil {
		log.Printf("[Chatbot] WARN recommendation responder: %v", err)
		return recommendationErrorReply
	}
	return formatRecommendations(recommend(courses, rows))
}

func (a *Assistant) certificateResponse(ctx context.Context, userID string) string {
	certs, err := a.Certificates.GetAllByIndex(ctx, "userId", userID)
	if err != nil {
		log.Printf("[Chatbot] WARN certificate responder: %v", err)
		return certificateErrorReply
	}
	return formatCertificates(certs)
}
