// Package skills provides fixed-vocabulary skill recognition and the
// boundary to best-effort entity extraction.
package skills

import "strings"

// vocabulary is the fixed set of technical skill terms the recognizer
// knows about. Single words match against tokens; multi-word phrases
// match as case-insensitive substrings of the cleaned text.
var vocabulary = []string{
	// Languages. Single-letter names cannot appear: the tokenizer drops
	// tokens of length 1, so an entry like "r" would never match.
	"python", "javascript", "typescript", "java", "go", "golang", "rust",
	"c++", "c#", "ruby", "php", "kotlin", "swift", "scala",
	// Frontend
	"react", "angular", "vue", "svelte", "html", "css", "redux", "next.js",
	// Backend
	"node", "node.js", "django", "flask", "fastapi", "spring", "rails",
	"express", "graphql", "grpc", "rest",
	// Data
	"sql", "postgresql", "postgres", "mysql", "mongodb", "redis",
	"elasticsearch", "kafka", "rabbitmq", "cassandra", "sqlite",
	// Cloud and infrastructure
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "linux", "nginx", "serverless",
	// Practices and tooling
	"git", "ci/cd", "agile", "scrum", "tdd", "microservices", "devops",
	// ML and analytics
	"pandas", "numpy", "tensorflow", "pytorch", "spark", "hadoop", "airflow",
	// Multi-word phrases
	"machine learning", "deep learning", "data science", "data engineering",
	"natural language processing", "computer vision", "unit testing",
	"distributed systems", "system design", "object oriented programming",
	"web services", "version control", "cloud computing",
}

// singleWordVocab and phraseVocab split the vocabulary by matching
// strategy. Built once at init; read-only afterwards.
var (
	singleWordVocab = map[string]bool{}
	phraseVocab     []string
)

func init() {
	for _, term := range vocabulary {
		if strings.Contains(term, " ") {
			phraseVocab = append(phraseVocab, term)
		} else {
			singleWordVocab[term] = true
		}
	}
}

// InVocabulary reports whether a term is a known skill (case-insensitive).
func InVocabulary(term string) bool {
	lower := strings.ToLower(term)
	if singleWordVocab[lower] {
		return true
	}
	for _, p := range phraseVocab {
		if p == lower {
			return true
		}
	}
	return false
}
