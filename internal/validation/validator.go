package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"interview-ai/internal/domain"
	"interview-ai/internal/util"
)

const (
	maxSkillLength  = 50
	maxAnswerLength = 5000
	maxLeaderboardN = 100
)

// Skills are free text but limited to what appears in technology names, e.g. "Node.js", "C++", "C#"
var validSkill = regexp.MustCompile(`^[\p{L}\p{N} .+#_-]+$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStartInterview validates the skill and the optional difficulty
func (v *Validator) ValidateStartInterview(skill, difficulty string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if errs := v.ValidateSkill(skill); len(errs) > 0 {
		errors = append(errors, errs...)
	}

	if strings.TrimSpace(difficulty) != "" {
		if _, ok := domain.ParseDifficulty(difficulty); !ok {
			errors = append(errors, domain.NewInvalidFormatError("difficulty", difficulty))
		}
	}

	return errors
}

// ValidateSkill validates a skill name
func (v *Validator) ValidateSkill(skill string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	skill = strings.TrimSpace(skill)
	if skill == "" {
		errors = append(errors, domain.NewMissingFieldError("skill"))
		return errors
	}

	if n := utf8.RuneCountInString(skill); n > maxSkillLength {
		errors = append(errors, domain.NewOutOfRangeError("skill", n, 1, maxSkillLength))
	} else if !validSkill.MatchString(skill) {
		errors = append(errors, domain.NewInvalidFormatError("skill", skill))
	}

	return errors
}

// ValidateSubmitAnswer validates the answer request
func (v *Validator) ValidateSubmitAnswer(questionID, answer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(questionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_id"))
	} else if !util.IsULID(questionID) {
		errors = append(errors, domain.NewInvalidFormatError("question_id", questionID))
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	} else if n := utf8.RuneCountInString(answer); n > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer", n, 1, maxAnswerLength))
	}

	return errors
}

// ValidateInterviewID checks the path parameter of interview routes
func (v *Validator) ValidateInterviewID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
	}
	return nil
}

// ValidateLeaderboardLimit accepts 0 (server default) up to maxLeaderboardN
func (v *Validator) ValidateLeaderboardLimit(limit int) domain.ValidationErrors {
	if limit < 0 || limit > maxLeaderboardN {
		return domain.ValidationErrors{domain.NewOutOfRangeError("limit", limit, 0, maxLeaderboardN)}
	}
	return nil
}
