package main

import (
	"fmt"
	"strings"

	"interview-ai/internal/domain"
	"interview-ai/internal/pipeline"

	"github.com/spf13/cobra"
)

type evaluateOutput struct {
	Provider   string                  `json:"provider"`
	Outcome    pipeline.Outcome        `json:"outcome"`
	Evaluation domain.AnswerEvaluation `json:"evaluation"`
}

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate an answer to an interview question",
		RunE: func(cmd *cobra.Command, args []string) error {
			question, _ := cmd.Flags().GetString("question")
			answer, _ := cmd.Flags().GetString("answer")
			skill, _ := cmd.Flags().GetString("skill")

			if strings.TrimSpace(answer) == "" {
				return fmt.Errorf("answer must not be empty")
			}

			p, err := buildPipeline(cmd)
			if err != nil {
				return err
			}

			evaluation, outcome := p.EvaluateAnswerWithOutcome(cmd.Context(), question, answer, skill)
			return writeJSON(cmd.OutOrStdout(), evaluateOutput{
				Provider:   p.ProviderName(),
				Outcome:    outcome,
				Evaluation: evaluation,
			})
		},
	}

	cmd.Flags().String("question", "", "The interview question")
	cmd.Flags().String("answer", "", "The candidate's answer")
	cmd.Flags().String("skill", "", "Skill the question belongs to")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}
