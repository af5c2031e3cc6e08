package recommendationService

import (
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
)

const generalBranchSubject = "General Engineering"

var weekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (s *recommendationService) Suggest(category entity.Category, branch string, at time.Time) recommendation.SubjectSuggestion {
	p, ok := s.table.Lookup(category)
	if !ok || p.Subjects == nil {
		f := s.table.FallbackSubjects()
		return recommendation.SubjectSuggestion{
			PrimaryRecommendation: f.Primary[0],
			SecondaryOptions:      f.Secondary,
			Emotion:               unknownEmotion,
			Reasoning:             f.Reasoning,
			StudyDuration:         f.Duration,
			StudyTips:             f.Tips,
			BreakFrequency:        f.BreakFrequency,
		}
	}

	if branch == "" {
		branch = profile.DefaultBranch
	}
	sub := p.Subjects

	out := recommendation.SubjectSuggestion{
		PrimaryRecommendation: s.choice(sub.Primary),
		SecondaryOptions:      s.sample(sub.Secondary, 2),
		Emotion:               string(category),
		Reasoning:             sub.Reasoning,
		BranchSpecific:        s.sample(s.table.BranchSubjects(branch), 3),
		StudyDuration:         sub.Duration,
		StudyTips:             sub.Tips,
		BreakFrequency:        sub.BreakFrequency,
	}
	if timed := s.table.TimeSubjects(profile.PeriodOf(at.Hour())); len(timed) > 0 {
		pick := s.choice(timed)
		out.TimeBasedSuggestion = &pick
	}
	return out
}

// WeeklyPlan alternates primary subjects on odd days with secondary ones on
// even days. Categories without a study profile use the fallback subjects.
func (s *recommendationService) WeeklyPlan(category entity.Category, branch string) recommendation.WeeklyPlan {
	sub := s.table.FallbackSubjects()
	dominant := unknownEmotion
	if p, ok := s.table.Lookup(category); ok && p.Subjects != nil {
		sub = *p.Subjects
		dominant = string(category)
	}
	if branch == "" {
		branch = profile.DefaultBranch
	}
	branchSubjects := s.table.BranchSubjects(branch)

	plan := recommendation.WeeklyPlan{
		DominantEmotion: dominant,
		GeneralAdvice:   sub.Reasoning,
		SuccessTips:     sub.Tips,
		WeekPlan:        make([]recommendation.StudyDay, 0, len(weekDays)),
	}

	for i, name := range weekDays {
		day := i + 1

		subject := s.choice(sub.Secondary)
		if day%2 == 1 {
			subject = s.choice(sub.Primary)
		}

		branchSubject := generalBranchSubject
		if len(branchSubjects) > 0 {
			branchSubject = s.choice(branchSubjects)
		}

		focus := "General Study"
		if n := len(sub.FocusAreas); n > 0 {
			focus = sub.FocusAreas[day%n]
		}

		plan.WeekPlan = append(plan.WeekPlan, recommendation.StudyDay{
			Day:           name,
			MainSubject:   subject,
			BranchSubject: branchSubject,
			Duration:      sub.Duration,
			FocusArea:     focus,
		})
	}
	return plan
}
