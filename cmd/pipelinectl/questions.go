package main

import (
	"fmt"

	"interview-ai/internal/domain"
	"interview-ai/internal/pipeline"

	"github.com/spf13/cobra"
)

type questionsOutput struct {
	Provider  string                     `json:"provider"`
	Outcome   pipeline.Outcome           `json:"outcome"`
	Questions []domain.InterviewQuestion `json:"questions"`
}

func newQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Generate interview questions for a skill",
		RunE: func(cmd *cobra.Command, args []string) error {
			skill, _ := cmd.Flags().GetString("skill")
			rawDifficulty, _ := cmd.Flags().GetString("difficulty")
			count, _ := cmd.Flags().GetInt("count")

			difficulty, ok := domain.ParseDifficulty(rawDifficulty)
			if !ok {
				return fmt.Errorf("unknown difficulty %q, expected easy, medium or hard", rawDifficulty)
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}

			p, err := buildPipeline(cmd)
			if err != nil {
				return err
			}

			questions, outcome := p.GenerateQuestionsWithOutcome(cmd.Context(), skill, difficulty, count)
			return writeJSON(cmd.OutOrStdout(), questionsOutput{
				Provider:  p.ProviderName(),
				Outcome:   outcome,
				Questions: questions,
			})
		},
	}

	cmd.Flags().String("skill", "", "Skill to generate questions for")
	cmd.Flags().String("difficulty", string(domain.DefaultDifficulty), "easy, medium or hard")
	cmd.Flags().Int("count", 5, "Number of questions to request")
	_ = cmd.MarkFlagRequired("skill")
	return cmd
}
