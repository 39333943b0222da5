package types

// PersonalInfo holds the contact block of a resume. Any field may be empty.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// Experience represents a single work history entry
type Experience struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Location    string   `json:"location,omitempty"`
	Current     bool     `json:"current"`
	Description []string `json:"description"` // bullet points
}

// Education represents a single education entry
type Education struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	GPA            string `json:"gpa"`
	GraduationDate string `json:"graduationDate"`
}

// Skills groups skills by kind
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Project represents a portfolio project entry
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

// Certification represents a professional certification entry
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// ResumeDocument is the structured resume consumed by every scorer.
// Missing data is represented by empty strings and empty slices; the
// scoring code treats empty and missing identically and never mutates
// the document.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         Skills          `json:"skills"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Achievements   []string        `json:"achievements,omitempty"`
}

// JobDescription is the posting a resume is matched against. Only
// Description is consumed by matching; the rest is informational.
type JobDescription struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Company        string   `json:"company,omitempty"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`
}

// ATSSections holds the per-area compatibility signals, each 0-100.
// They are independent proportional ratios, not restatements of the
// overall score.
type ATSSections struct {
	Keywords   int `json:"keywords"`
	Formatting int `json:"formatting"`
	Contact    int `json:"contact"`
	Length     int `json:"length"`
	Sections   int `json:"sections"`
}

// ATSScore is the result of the compatibility checklist
type ATSScore struct {
	Overall  int         `json:"overall"` // 0-100
	Sections ATSSections `json:"sections"`
	Feedback []string    `json:"feedback"` // never empty
}

// KeywordMatch records one job-description keyword and how often the
// resume mentions it.
type KeywordMatch struct {
	Keyword string `json:"keyword"`
	Found   bool   `json:"found"`
	Count   int    `json:"count"`
}

// KeywordMatchResult is the outcome of matching a resume against a
// job description.
type KeywordMatchResult struct {
	Score   int            `json:"score"` // 0-100
	Matches []KeywordMatch `json:"matches"`
	Missing []string       `json:"missing"`
	Extra   []string       `json:"extra"`
}

// OverusedWord flags a cliched phrase repeated in the resume
type OverusedWord struct {
	Word        string   `json:"word"`
	Count       int      `json:"count"` // always >= 2
	Suggestions []string `json:"suggestions"`
}

// QuantifiedMetrics summarizes how well experience bullets are backed
// by measurable results.
type QuantifiedMetrics struct {
	HasMetrics            bool     `json:"hasMetrics"`
	MetricCount           int      `json:"metricCount"`
	BulletsWithoutMetrics int      `json:"bulletsWithoutMetrics"`
	Suggestions           []string `json:"suggestions"`
}

// ResumeAnalysis is the full report produced by running every scorer
// over a resume, with the weighted overall score on top.
type ResumeAnalysis struct {
	Overall         int                 `json:"overall"` // 0-100
	ATS             ATSScore            `json:"ats"`
	Match           *KeywordMatchResult `json:"match,omitempty"` // nil without a job description
	ContentStrength int                 `json:"contentStrength"`
	OverusedWords   []OverusedWord      `json:"overusedWords"`
	Metrics         QuantifiedMetrics   `json:"metrics"`
}

// ParseResumeInput represents the input for AI resume parsing
type ParseResumeInput struct {
	ResumeText string `json:"resumeText"`
}

// ParseResumeOutput represents the structured document produced by
// the AI resume parser.
type ParseResumeOutput struct {
	Resume ResumeDocument `json:"resume"`
}
