package dto

// AskRequest represents the request body for an assistant question.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskResponse represents the assistant's answer.
type AskResponse struct {
	Answer string `json:"answer"`
}
