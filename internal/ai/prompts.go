package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	ParseResume string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	ParseResume string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	ParseResume: `You are a resume parsing specialist. You convert free-form resume text into a structured document with absolute fidelity to the source. Your core principles are:

- NEVER invent, infer, or embellish any information not present in the text
- Preserve the original wording of summaries and bullet points
- Leave fields empty when the source text does not provide them
- Keep entries in the order they appear in the document

Your expertise includes:
- Recognizing contact details, work history, education and skill sections
- Separating technical skills from soft skills
- Splitting role descriptions into individual bullet points`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	ParseResume: `Please convert the following resume text into a structured resume document.

**Rules:**

1. Extract the contact block into personalInfo; use empty strings for anything missing.
2. Copy the professional summary verbatim if one exists.
3. Split each role's description into individual bullet points, one achievement per bullet.
4. Classify skills as technical or soft; do not add skills that are not mentioned.
5. Keep experience and education entries in document order.

**Resume Text:**
-----
%s
-----`,
}

// PromptConfig holds configuration for customizable prompts
type PromptConfig struct {
	SystemPrompts SystemPrompts `json:"systemPrompts"`
	UserPrompts   UserPrompts   `json:"userPrompts"`
}

// GetDefaultPromptConfig returns the default prompt configuration
func GetDefaultPromptConfig() PromptConfig {
	return PromptConfig{
		SystemPrompts: DefaultSystemPrompts,
		UserPrompts:   DefaultUserPrompts,
	}
}
