package domain

import "context"

// Category groups questions; its Type is the display name.
type Category struct {
	ID   int64
	Type string
}

// Question is a single trivia question. Category references Category.ID.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// NewQuestion creates a Question that has not been persisted yet.
func NewQuestion(question, answer string, category int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
}

// CategoryRepository defines the interface for category persistence.
// Lookups that miss return (nil, nil).
type CategoryRepository interface {
	// GetAllCategories returns every category ordered by id
	GetAllCategories(ctx context.Context) ([]*Category, error)

	// GetCategoryByID retrieves a category by its ID
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)

	// GetCategoryByType retrieves a category by its display name
	GetCategoryByType(ctx context.Context, categoryType string) (*Category, error)

	// SaveCategory persists a new category and sets its ID
	SaveCategory(ctx context.Context, category *Category) error
}

// QuestionRepository defines the interface for question persistence.
// Lookups that miss return (nil, nil); list results are ordered by id.
type QuestionRepository interface {
	GetAllQuestions(ctx context.Context) ([]*Question, error)
	GetQuestionsByCategory(ctx context.Context, categoryID int64) ([]*Question, error)
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)
	CountQuestions(ctx context.Context) (int, error)

	// SearchQuestions returns questions whose text contains term, ignoring case
	SearchQuestions(ctx context.Context, term string) ([]*Question, error)

	// SaveQuestion persists a new question and sets its ID
	SaveQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion removes a question; ErrNoRowsAffected when nothing was deleted
	DeleteQuestion(ctx context.Context, id int64) error
}

// TransactionManager runs fn inside a single store transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
