package dto

// CategoryResponse represents a formatted category
// @Description Category information
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// QuestionResponse represents a formatted question
// @Description Question information
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoriesResponse is returned by GET /categories
type CategoriesResponse struct {
	Success         bool             `json:"success"`
	Categories      map[int64]string `json:"categories"`
	TotalCategories int              `json:"total_categories"`
}

// QuestionsResponse is returned by GET /questions
type QuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
	Categories      map[int64]string   `json:"categories"`
}

// CategoryQuestionsResponse is returned by GET /categories/{id}/questions and POST /questions
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
}

// DeleteQuestionResponse is returned by DELETE /questions/{id}
type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// AddQuestionRequest is the body of POST /questions/add.
// Category and Difficulty accept JSON numbers or numeric strings.
// @Description New question
type AddQuestionRequest struct {
	Question   *string     `json:"question" validate:"required"`
	Answer     *string     `json:"answer" validate:"required"`
	Category   interface{} `json:"category" swaggertype:"integer"`
	Difficulty interface{} `json:"difficulty" swaggertype:"integer"`
}

// AddQuestionResponse is returned by POST /questions/add
type AddQuestionResponse struct {
	Success        bool               `json:"success"`
	Created        int64              `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// SearchQuestionsRequest is the body of POST /questions
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// QuizResponse is returned by POST /play/quizzes. Question is an empty
// object when every question of the category was already asked.
type QuizResponse struct {
	Success  bool        `json:"success"`
	Question interface{} `json:"question"`
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
