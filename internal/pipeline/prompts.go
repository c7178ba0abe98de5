package pipeline

import (
	"fmt"
	"strings"

	"interview-ai/internal/domain"
)

// quoteEscaper keeps user text from closing the quoted fields of the evaluation prompt
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// BuildQuestionsPrompt returns the instruction text for a question batch.
func BuildQuestionsPrompt(skill string, difficulty domain.Difficulty, count int) string {
	if count < 1 {
		count = 1
	}

	return fmt.Sprintf(`Generate %[1]d technical interview questions for %[2]s at %[3]s difficulty level.

Return ONLY a JSON array in this EXACT format (no markdown, no extra text, no explanations):
[
  {
    "question": "Question text here?",
    "difficulty": "%[3]s",
    "topic": "Specific topic name"
  }
]

Requirements:
- Questions should be clear, specific, and practical
- Appropriate for %[3]s level
- Focus on real-world knowledge and scenarios
- Each question should test understanding, not just memorization
- No markdown formatting, code blocks, or explanations
- Return ONLY the JSON array, nothing else`, count, skill, difficulty)
}

// BuildEvaluationPrompt returns the instruction text for scoring one answer.
func BuildEvaluationPrompt(question, answer, skill string) string {
	return fmt.Sprintf(`You are an expert technical interviewer evaluating a candidate's answer.

Question: "%s"
Candidate's Answer: "%s"
Skill Domain: %s

Evaluate the answer and respond with ONLY a JSON object in this EXACT format (no markdown, no extra text):
{
  "score": <integer from 0 to 10>,
  "feedback": "<constructive feedback, 3-5 sentences explaining the score and what was good or missing>",
  "strengths": ["<strength 1>", "<strength 2>", "<strength 3>"],
  "improvements": ["<improvement 1>", "<improvement 2>", "<improvement 3>"],
  "confidenceTips": ["<tip 1>", "<tip 2>", "<tip 3>"]
}

Scoring Guidelines:
- 0-2: No understanding or completely irrelevant answer
- 3-4: Poor understanding with major conceptual gaps
- 5-6: Basic understanding but lacks depth and detail
- 7-8: Good understanding with minor gaps or missing details
- 9-10: Excellent, comprehensive, and accurate answer

Requirements:
- Be constructive, specific, and encouraging
- Each array must have exactly 3 items
- Focus on technical accuracy and completeness
- Return ONLY valid JSON, nothing else`,
		quoteEscaper.Replace(question),
		quoteEscaper.Replace(answer),
		quoteEscaper.Replace(skill),
	)
}
