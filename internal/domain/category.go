package domain

// CategoryPrompt maps a product category to the base prompt template used for
// every group generated under that category. Names are stored trimmed and
// looked up by exact match.
type CategoryPrompt struct {
	ID       int64  `json:"category_id" yaml:"category_id"`
	Name     string `json:"category_name" yaml:"category_name" validate:"required"`
	Template string `json:"gpt_prompt" yaml:"gpt_prompt" validate:"required"`
}
