// file: internals/features/assessment/quizzes/service/quiz_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"ailms_backend/internals/features/assessment/quizzes/model"
	subModel "ailms_backend/internals/features/assessment/submissions/model"
	"ailms_backend/internals/store"
)

/* =========================================================
   ATTEMPT POLICY
========================================================= */

// AttemptPolicy mengatur submit berulang untuk pasangan (quiz, student).
type AttemptPolicy string

const (
	AttemptPolicyMultiple AttemptPolicy = "multiple" // setiap submit = record baru
	AttemptPolicyReject   AttemptPolicy = "reject"   // submit kedua ditolak
	AttemptPolicyLatest   AttemptPolicy = "latest"   // submit kedua menimpa record lama
)

var (
	ErrAlreadySubmitted = errors.New("quiz ini sudah pernah dikumpulkan")
	ErrMissingIdentity  = errors.New("quiz_id dan student_id wajib diisi")
)

func ParseAttemptPolicy(s string) (AttemptPolicy, error) {
	switch p := AttemptPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", AttemptPolicyMultiple:
		return AttemptPolicyMultiple, nil
	case AttemptPolicyReject, AttemptPolicyLatest:
		return p, nil
	default:
		return "", fmt.Errorf("attempt policy %q tidak dikenal (multiple|reject|latest)", s)
	}
}

/* =========================================================
   SERVICE
========================================================= */

// QuizRewarder dipanggil setelah submission tersimpan (mis. XP gamification).
type QuizRewarder interface {
	RewardQuizSubmission(ctx context.Context, studentID string, score float64) error
}

type QuizService struct {
	Quizzes     *store.Collection[model.Quiz]
	Submissions *store.Collection[subModel.Submission]
	Policy      AttemptPolicy
	Rewarder    QuizRewarder
	Now         func() time.Time
}

func NewQuizService(st store.Store, policy AttemptPolicy, rewarder QuizRewarder) *QuizService {
	if policy == "" {
		policy = AttemptPolicyMultiple
	}
	return &QuizService{
		Quizzes:     store.NewCollection[model.Quiz](st, store.CollectionQuizzes),
		Submissions: store.NewCollection[subModel.Submission](st, store.CollectionSubmissions),
		Policy:      policy,
		Rewarder:    rewarder,
		Now:         time.Now,
	}
}

/* =========================================================
   QUIZ AUTHORING
========================================================= */

func (s *QuizService) CreateQuiz(ctx context.Context, in *model.Quiz) (*model.Quiz, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: input kosong", model.ErrInvalidQuiz)
	}
	quiz := *in
	quiz.Questions = slices.Clone(in.Questions)
	quiz.ID = "quiz-" + uuid.NewString()
	quiz.CreatedAt = s.Now().UTC()
	quiz.ApplyDefaults()

	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	if err := s.Quizzes.Add(ctx, quiz.ID, &quiz); err != nil {
		log.Printf("[QuizService] ERROR add quiz: %v", err)
		return nil, err
	}

	log.Printf("[QuizService] Quiz created. quiz_id=%s course_id=%s questions=%d total_points=%d",
		quiz.ID, quiz.CourseID, len(quiz.Questions), quiz.TotalPoints())
	return &quiz, nil
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*model.Quiz, error) {
	return s.Quizzes.Get(ctx, id)
}

func (s *QuizService) GetAllQuizzes(ctx context.Context) ([]model.Quiz, error) {
	return s.Quizzes.GetAll(ctx)
}

func (s *QuizService) GetQuizzesByLesson(ctx context.Context, lessonID string) ([]model.Quiz, error) {
	return s.Quizzes.GetAllByIndex(ctx, "lessonId", lessonID)
}

func (s *QuizService) GetQuizzesByCourse(ctx context.Context, courseID string) ([]model.Quiz, error) {
	return s.Quizzes.GetAllByIndex(ctx, "courseId", courseID)
}

/* =========================================================
   SUBMISSION
========================================================= */

// SubmitQuizInput: Quiz adalah snapshot yang dipegang client saat submit.
// Kalau nil, quiz terbaru diambil dari store. Score dari client hanya dicatat di log;
// skor resmi selalu dihitung ulang di sini.
type SubmitQuizInput struct {
	QuizID    string
	StudentID string
	Answers   map[string]string
	Quiz      *model.Quiz
	Score     *float64
}

func (s *QuizService) SubmitQuiz(ctx context.Context, in *SubmitQuizInput) (*subModel.Submission, error) {
	if in == nil || strings.TrimSpace(in.QuizID) == "" || strings.TrimSpace(in.StudentID) == "" {
		return nil, ErrMissingIdentity
	}

	snapshot := in.Quiz
	if snapshot == nil {
		live, err := s.Quizzes.Get(ctx, in.QuizID)
		if err != nil {
			return nil, err
		}
		snapshot = live
	} else {
		if snapshot.ID != "" && snapshot.ID != in.QuizID {
			return nil, fmt.Errorf("%w: snapshot quiz %s tidak cocok dengan quiz_id %s", model.ErrInvalidQuiz, snapshot.ID, in.QuizID)
		}
		// snapshot dari client: divalidasi sama seperti saat CreateQuiz
		cp := *snapshot
		cp.Questions = slices.Clone(snapshot.Questions)
		cp.ApplyDefaults()
		if err := cp.Validate(); err != nil {
			return nil, err
		}
		snapshot = &cp
	}

	res, err := Grade(snapshot.Questions, in.Answers)
	if err != nil {
		return nil, err
	}
	if in.Score != nil && math.Abs(*in.Score-res.Score) > 1e-9 {
		log.Printf("[QuizService] WARN client score berbeda. quiz_id=%s client=%.3f server=%.3f",
			in.QuizID, *in.Score, res.Score)
	}

	existing, older, err := s.findAttempt(ctx, in.QuizID, in.StudentID)
	if err != nil {
		return nil, err
	}
	if existing != nil && s.Policy == AttemptPolicyReject {
		return nil, ErrAlreadySubmitted
	}

	now := s.Now().UTC()
	score := res.Score
	passed := Passed(snapshot, score)
	sub := subModel.Submission{
		ID:          "sub-" + uuid.NewString(),
		Type:        subModel.SubmissionTypeQuiz,
		QuizID:      in.QuizID,
		StudentID:   in.StudentID,
		Answers:     cloneAnswers(in.Answers),
		Quiz:        snapshot,
		Passed:      &passed,
		Score:       &score,
		Graded:      true,
		SubmittedAt: now,
		GradedAt:    &now,
	}

	if existing != nil && s.Policy == AttemptPolicyLatest {
		sub.ID = existing.ID
		err = s.Submissions.Update(ctx, sub.ID, &sub)
		// sisa attempt lama (mis. setelah pindah dari policy multiple) dibuang
		for _, id := range older {
			if err != nil {
				break
			}
			err = s.Submissions.Delete(ctx, id)
		}
	} else {
		err = s.Submissions.Add(ctx, sub.ID, &sub)
	}
	if err != nil {
		log.Printf("[QuizService] ERROR save submission: %v", err)
		return nil, err
	}

	log.Printf("[QuizService] Submission saved. submission_id=%s quiz_id=%s student_id=%s earned=%d/%d score=%.2f passed=%v",
		sub.ID, sub.QuizID, sub.StudentID, res.EarnedPoints, res.TotalPoints, score, passed)

	if s.Rewarder != nil {
		if err := s.Rewarder.RewardQuizSubmission(ctx, in.StudentID, score); err != nil {
			// submission tetap sukses; reward bisa diulang manual
			log.Printf("[QuizService] WARN reward gagal. student_id=%s err=%v", in.StudentID, err)
		}
	}
	return &sub, nil
}

// findAttempt mengembalikan attempt terbaru (submittedAt) untuk (quiz, student),
// plus id attempt lama lain yang tersisa dari policy multiple.
func (s *QuizService) findAttempt(ctx context.Context, quizID, studentID string) (*subModel.Submission, []string, error) {
	if s.Policy == AttemptPolicyMultiple {
		return nil, nil, nil
	}
	subs, err := s.Submissions.GetAllByIndex(ctx, "studentId", studentID)
	if err != nil {
		return nil, nil, err
	}
	var latest *subModel.Submission
	var older []string
	for i := range subs {
		if !subs[i].IsQuiz() || subs[i].QuizID != quizID {
			continue
		}
		switch {
		case latest == nil:
			latest = &subs[i]
		case subs[i].SubmittedAt.After(latest.SubmittedAt):
			older = append(older, latest.ID)
			latest = &subs[i]
		default:
			older = append(older, subs[i].ID)
		}
	}
	return latest, older, nil
}

func (s *QuizService) GetSubmission(ctx context.Context, id string) (*subModel.Submission, error) {
	return s.Submissions.Get(ctx, id)
}

func (s *QuizService) GetStudentSubmissions(ctx context.Context, studentID string) ([]subModel.Submission, error) {
	return s.Submissions.GetAllByIndex(ctx, "studentId", studentID)
}

func (s *QuizService) GetQuizSubmissions(ctx context.Context, quizID string) ([]subModel.Submission, error) {
	return s.Submissions.GetAllByIndex(ctx, "quizId", quizID)
}

func cloneAnswers(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
