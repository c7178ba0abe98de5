package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"interview-ai/internal/domain"
)

type fallbackQuestion struct {
	text  string
	topic string
}

// fallbackQuestionTable holds the pre-written questions for the supported skills.
var fallbackQuestionTable = map[string][]fallbackQuestion{
	"System Design": {
		{"Design a URL shortening service like Bitly. Discuss the database schema, API endpoints, how you handle collisions, and strategies for scaling to handle millions of requests per day.", "System Design"},
		{"How would you design a distributed cache system? Explain cache eviction policies (LRU, LFU), consistency strategies (write-through, write-back), and handling cache invalidation across multiple nodes.", "Caching"},
		{"Design a real-time chat application supporting millions of concurrent users. How would you handle message delivery, user presence, read receipts, media uploads, and ensure scalability?", "Real-time Systems"},
		{"Explain how you would design a rate limiting system for a public API. Discuss different algorithms (token bucket, leaky bucket, sliding window), their trade-offs, and implementation approaches.", "API Design"},
		{"Design a monitoring and alerting system for microservices. What metrics would you collect, how would you aggregate them, what alerting strategies would you use, and how would you prevent alert fatigue?", "Observability"},
	},
	"JavaScript": {
		{"Explain the JavaScript event loop in detail. How do the call stack, callback queue, and microtask queue work together? How does setTimeout, Promises, and async/await execution differ?", "Async Programming"},
		{"What are closures in JavaScript and how do they work? Provide practical examples including module patterns, data privacy, and callback functions. What are potential memory leak concerns?", "Functions"},
		{"Explain prototypal inheritance in JavaScript. How does the prototype chain work? What is the difference between __proto__ and prototype? How does Object.create() work?", "OOP"},
		{"What are Promises in JavaScript? Explain Promise states, chaining, error handling, and compare Promise.all(), Promise.race(), Promise.allSettled(), and Promise.any() with examples.", "Async Programming"},
		{`Explain the "this" keyword in JavaScript. How does its value change in different contexts: global scope, object methods, constructor functions, arrow functions, and classes? How do call, apply, and bind work?`, "Functions"},
	},
	"React": {
		{"Explain the difference between state and props in React. When would you use each? How does unidirectional data flow work? What happens when state or props change?", "React Basics"},
		{"What are React hooks and why were they introduced? Explain useState, useEffect, useContext, useReducer, useMemo, and useCallback with practical examples. What are the rules of hooks?", "Hooks"},
		{"Explain the Virtual DOM and React's reconciliation algorithm. How does React determine what needs to be updated? What is the diffing algorithm? How do keys help optimization?", "Performance"},
		{"How do you optimize performance in React applications? Discuss React.memo, useMemo, useCallback, code splitting, lazy loading, windowing, and profiling techniques.", "Performance"},
		{"What is server-side rendering (SSR) and static site generation (SSG)? Compare client-side rendering, SSR, and SSG approaches. When would you use each? How does Next.js handle these?", "Rendering"},
	},
	"Node.js": {
		{"Explain the Node.js event loop architecture in detail. What are the different phases (timers, I/O callbacks, idle, poll, check, close)? How does Node.js handle asynchronous operations?", "Event Loop"},
		{"What are streams in Node.js? Explain readable, writable, duplex, and transform streams. Provide examples of when to use each and discuss backpressure handling.", "Streams"},
		{"How do you handle errors in Node.js applications? Discuss try-catch, error-first callbacks, Promise rejections, async/await error handling, and uncaught exception handling.", "Error Handling"},
		{"Explain middleware in Express.js. How does the middleware chain work? How do you create custom middleware? What is the difference between application-level and router-level middleware?", "Express.js"},
		{"How do you scale Node.js applications? Discuss the cluster module, worker threads, load balancing, horizontal vs vertical scaling, and strategies for handling high traffic.", "Scalability"},
	},
	"Python": {
		{"Explain decorators in Python. How do they work internally? Provide examples of function decorators, class decorators, and decorators with arguments. What are common use cases?", "Decorators"},
		{"What is the Global Interpreter Lock (GIL) in Python? How does it affect multi-threading? What are the alternatives for achieving parallelism in Python (multiprocessing, asyncio)?", "Concurrency"},
		{"Explain generators and iterators in Python. What is the yield keyword? How do generators save memory? Provide examples of when to use generators vs lists.", "Generators"},
		{"What are the different data structures in Python (list, tuple, set, dictionary, frozenset)? When would you use each? Discuss time complexity of common operations.", "Data Structures"},
		{`Explain context managers and the "with" statement in Python. How do you create custom context managers using classes and @contextmanager decorator? What are practical use cases?`, "Context Managers"},
	},
}

// genericQuestionTemplates are used for skills without a table entry. %[1]s is the skill.
var genericQuestionTemplates = []string{
	"Explain the fundamental concepts and best practices in %[1]s. Provide specific examples and discuss common patterns or architectures used in production environments.",
	"Describe a complex problem you've encountered while working with %[1]s. What was your approach to solving it? What trade-offs did you consider?",
	"What are common pitfalls or mistakes developers make when working with %[1]s? How do you identify and avoid them? Share specific examples.",
	"How would you optimize performance when working with %[1]s? Discuss specific techniques, tools, and strategies you would employ in a production system.",
	"Explain the testing strategies for %[1]s applications. Discuss unit testing, integration testing, and end-to-end testing approaches with examples of tools and best practices.",
}

// SupportedSkills lists the skills with a pre-written fallback table
func SupportedSkills() []string {
	return []string{"System Design", "JavaScript", "React", "Node.js", "Python"}
}

func lookupFallbackTable(skill string) ([]fallbackQuestion, bool) {
	if table, ok := fallbackQuestionTable[skill]; ok {
		return table, true
	}
	trimmed := strings.TrimSpace(skill)
	for name, table := range fallbackQuestionTable {
		if strings.EqualFold(name, trimmed) {
			return table, true
		}
	}
	return nil, false
}

// FallbackQuestions returns min(count, available) local questions for skill,
// all with the requested difficulty. At least one question is always returned.
func FallbackQuestions(skill string, difficulty domain.Difficulty, count int) []domain.InterviewQuestion {
	if count < 1 {
		count = 1
	}

	table, ok := lookupFallbackTable(skill)
	if !ok {
		table = make([]fallbackQuestion, len(genericQuestionTemplates))
		for i, tmpl := range genericQuestionTemplates {
			table[i] = fallbackQuestion{text: fmt.Sprintf(tmpl, skill), topic: skill}
		}
	}

	n := min(count, len(table))
	questions := make([]domain.InterviewQuestion, n)
	for i := range n {
		questions[i] = domain.InterviewQuestion{
			Text:       table[i].text,
			Difficulty: difficulty,
			Topic:      table[i].topic,
		}
	}
	return questions
}

// Answer length thresholds of the heuristic, in characters after trimming
const (
	contentThreshold = 20
	detailThreshold  = 100
)

const (
	lowHeuristicScore    = 2
	mediumHeuristicScore = 4
	highHeuristicScore   = 6
)

// HeuristicScore scores an answer by its trimmed length alone
func HeuristicScore(answer string) int {
	n := len([]rune(strings.TrimSpace(answer)))
	switch {
	case n > detailThreshold:
		return highHeuristicScore
	case n > contentThreshold:
		return mediumHeuristicScore
	default:
		return lowHeuristicScore
	}
}

// FallbackEvaluation builds a neutral evaluation without a provider.
func FallbackEvaluation(answer string) domain.AnswerEvaluation {
	n := len([]rune(strings.TrimSpace(answer)))

	eval := domain.AnswerEvaluation{
		Score:          HeuristicScore(answer),
		Improvements:   slices.Clone(genericImprovements),
		ConfidenceTips: slices.Clone(genericConfidenceTips),
	}

	switch {
	case n > detailThreshold:
		eval.Feedback = "Your answer demonstrates understanding of the topic. To improve, include more specific technical details, real-world examples, and explain trade-offs or alternatives when applicable."
	case n > contentThreshold:
		eval.Feedback = "Your answer touches on the topic but needs significant expansion. Include technical terminology, explain core concepts thoroughly, and provide practical examples to demonstrate deeper understanding."
	default:
		eval.Feedback = "Unable to evaluate your answer at this time. Please provide a detailed response with specific technical concepts, examples, and clear explanations."
	}

	if n > contentThreshold {
		eval.Strengths = []string{
			"Attempted to answer the question",
			"Showed basic awareness of the topic",
			"Provided a response",
		}
	} else {
		eval.Strengths = []string{
			"Acknowledged the question",
			"Stayed engaged with the interview",
			"Left a starting point to build a fuller answer on",
		}
	}
	return eval
}
