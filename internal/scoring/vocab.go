package scoring

import "regexp"

// Static vocabulary tables driving the scorers. These are fixed
// configuration, compiled once at init and never mutated.

// techPatterns match well-known languages, frameworks and tools. They
// are applied in order during keyword extraction, so results keep a
// stable discovery order.
var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(javascript|typescript|python|java|golang|ruby|php|swift|kotlin|rust|scala|perl|haskell|elixir)\b`),
	regexp.MustCompile(`(?i)(c\+\+|c#|\.net|objective-c)`),
	regexp.MustCompile(`(?i)\b(react|angular|vue|svelte|jquery|redux|html|css|sass|tailwind|bootstrap|webpack|vite)\b`),
	regexp.MustCompile(`(?i)\b(node\.?js|express|django|flask|spring|rails|laravel|fastapi|graphql|grpc|rest)\b`),
	regexp.MustCompile(`(?i)\b(aws|azure|gcp|docker|kubernetes|terraform|ansible|jenkins|git|github|gitlab|linux|nginx)\b`),
	regexp.MustCompile(`(?i)(ci/cd|\bdevops\b|\bmicroservices\b|\bserverless\b)`),
	regexp.MustCompile(`(?i)\b(sql|nosql|postgresql|mysql|mongodb|redis|elasticsearch|kafka|rabbitmq|sqlite|dynamodb|cassandra)\b`),
	regexp.MustCompile(`(?i)\b(machine learning|deep learning|data analysis|data science|tensorflow|pytorch|pandas|numpy|spark|hadoop)\b`),
	regexp.MustCompile(`(?i)\b(agile|scrum|kanban|jira|confluence|figma|tableau|excel|salesforce)\b`),
}

// properNounPattern is the generic second-pass heuristic: capitalized
// tokens that look like product or technology names.
var properNounPattern = regexp.MustCompile(`\b[A-Z][A-Za-z0-9+#.]{3,28}\b`)

// atsKeywords is the vocabulary screened resumes are expected to hit.
// Matching is lexical substring on lowercased text.
var atsKeywords = []string{
	"experienced", "skilled", "proficient", "certified", "managed",
	"developed", "created", "implemented", "designed", "improved",
	"increased", "reduced", "achieved", "delivered", "launched",
	"collaborated", "coordinated", "analyzed", "optimized", "automated",
	"team", "project", "strategy", "leadership", "communication",
	"results", "stakeholder", "cross-functional", "budget", "process",
}

// actionVerbs is the strong-verb vocabulary checked against bullets
var actionVerbs = []string{
	"achieved", "led", "developed", "managed", "created", "implemented",
	"designed", "improved", "launched", "built", "increased", "reduced",
	"delivered", "optimized", "spearheaded", "negotiated", "mentored",
	"streamlined", "automated", "transformed",
}

// overusedEntry maps a cliched phrase to fixed stronger alternatives.
// Declaration order is the reporting order.
type overusedEntry struct {
	phrase       string
	pattern      *regexp.Regexp
	alternatives []string
}

func newOverusedEntry(phrase string, alternatives ...string) overusedEntry {
	return overusedEntry{
		phrase:       phrase,
		pattern:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`),
		alternatives: alternatives,
	}
}

var overusedPhrases = []overusedEntry{
	newOverusedEntry("responsible for", "spearheaded", "directed", "orchestrated", "oversaw", "drove"),
	newOverusedEntry("led", "spearheaded", "directed", "championed", "guided"),
	newOverusedEntry("managed", "orchestrated", "oversaw", "supervised", "coordinated", "administered"),
	newOverusedEntry("helped", "facilitated", "enabled", "supported", "contributed to"),
	newOverusedEntry("worked on", "developed", "engineered", "delivered", "executed"),
	newOverusedEntry("did", "executed", "performed", "accomplished", "completed"),
}
