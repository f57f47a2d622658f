package assessment

// CompleteRequest represents the submitted answer set. Answers are
// positional against the question bank.
type CompleteRequest struct {
	Answers []int `json:"answers" validate:"required"`
}
