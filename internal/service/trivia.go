package service

import (
	"context"
	"errors"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CurrentCategoryAll is reported as current_category for unfiltered listings.
const CurrentCategoryAll = "all"

// TriviaService defines the operations behind the trivia HTTP routes
type TriviaService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	GetQuestions(ctx context.Context, page int) (*dto.QuestionsResponse, error)
	GetQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)
	DeleteQuestion(ctx context.Context, questionID int64) (*dto.DeleteQuestionResponse, error)
	AddQuestion(ctx context.Context, question *domain.Question) (*dto.AddQuestionResponse, error)
	SearchQuestions(ctx context.Context, term string, page int) (*dto.CategoryQuestionsResponse, error)
	GetNextQuizQuestion(ctx context.Context, categoryID int64, allCategories bool, previous []int64) (*dto.QuizResponse, error)
}

type triviaService struct {
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	selector   *QuizSelector
}

// NewTriviaService creates a new instance of triviaService
func NewTriviaService(categories domain.CategoryRepository, questions domain.QuestionRepository, selector *QuizSelector) TriviaService {
	if selector == nil {
		selector = NewQuizSelector()
	}
	return &triviaService{
		categories: categories,
		questions:  questions,
		selector:   selector,
	}
}

// GetCategories implements TriviaService
func (s *triviaService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		return nil, s.internalError("Failed to get categories", err)
	}

	return &dto.CategoriesResponse{
		Success:         true,
		Categories:      categoryMap(categories),
		TotalCategories: len(categories),
	}, nil
}

// GetQuestions implements TriviaService. Questions and categories are read concurrently.
func (s *triviaService) GetQuestions(ctx context.Context, page int) (*dto.QuestionsResponse, error) {
	var (
		questions  []*domain.Question
		categories []*domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.questions.GetAllQuestions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.GetAllCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.internalError("Failed to list questions", err)
	}

	return &dto.QuestionsResponse{
		Success:         true,
		Questions:       formatQuestions(util.Paginate(questions, page)),
		TotalQuestions:  len(questions),
		CurrentCategory: CurrentCategoryAll,
		Categories:      categoryMap(categories),
	}, nil
}

// GetQuestionsByCategory implements TriviaService. total_questions counts every
// stored question, not only those of the category.
func (s *triviaService) GetQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	category, err := s.categories.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, s.internalError("Failed to get category", err, zap.Int64("category_id", categoryID))
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(categoryID)
	}

	var (
		questions []*domain.Question
		total     int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.questions.GetQuestionsByCategory(gctx, categoryID)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.questions.CountQuestions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.internalError("Failed to list questions by category", err, zap.Int64("category_id", categoryID))
	}

	current := util.Paginate(questions, page)
	if len(current) == 0 {
		return nil, domain.NewNotFoundError("no questions on requested page")
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       formatQuestions(current),
		TotalQuestions:  total,
		CurrentCategory: category.Type,
	}, nil
}

// DeleteQuestion implements TriviaService
func (s *triviaService) DeleteQuestion(ctx context.Context, questionID int64) (*dto.DeleteQuestionResponse, error) {
	question, err := s.questions.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, s.internalError("Failed to get question", err, zap.Int64("question_id", questionID))
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}

	if err := s.questions.DeleteQuestion(ctx, questionID); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			// deleted concurrently between the lookup and the delete
			return nil, domain.NewQuestionNotFoundError(questionID)
		}
		logger.Get().Error("Failed to delete question", zap.Error(err), zap.Int64("question_id", questionID))
		return nil, domain.NewUnprocessableError("Failed to delete question", err)
	}

	return &dto.DeleteQuestionResponse{Success: true, Deleted: questionID}, nil
}

// AddQuestion implements TriviaService. The response carries the first page
// of all questions as they are after the insert.
func (s *triviaService) AddQuestion(ctx context.Context, question *domain.Question) (*dto.AddQuestionResponse, error) {
	if err := s.questions.SaveQuestion(ctx, question); err != nil {
		logger.Get().Warn("Failed to save question", zap.Error(err), zap.Int64("category", question.Category))
		return nil, domain.NewUnprocessableError("Failed to save question", err)
	}

	questions, err := s.questions.GetAllQuestions(ctx)
	if err != nil {
		logger.Get().Error("Failed to list questions after insert", zap.Error(err), zap.Int64("question_id", question.ID))
		return nil, domain.NewUnprocessableError("Failed to list questions after insert", err)
	}

	return &dto.AddQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      formatQuestions(util.Paginate(questions, 1)),
		TotalQuestions: len(questions),
	}, nil
}

// SearchQuestions implements TriviaService. An empty term matches nothing.
func (s *triviaService) SearchQuestions(ctx context.Context, term string, page int) (*dto.CategoryQuestionsResponse, error) {
	var matches []*domain.Question
	if term != "" {
		var err error
		matches, err = s.questions.SearchQuestions(ctx, term)
		if err != nil {
			return nil, s.internalError("Failed to search questions", err, zap.String("search_term", term))
		}
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       formatQuestions(util.Paginate(matches, page)),
		TotalQuestions:  len(matches),
		CurrentCategory: CurrentCategoryAll,
	}, nil
}

// GetNextQuizQuestion implements TriviaService. A category without questions is
// Unprocessable; a category whose questions were all asked yields an empty question.
func (s *triviaService) GetNextQuizQuestion(ctx context.Context, categoryID int64, allCategories bool, previous []int64) (*dto.QuizResponse, error) {
	var (
		pool []*domain.Question
		err  error
	)
	if allCategories {
		pool, err = s.questions.GetAllQuestions(ctx)
	} else {
		pool, err = s.questions.GetQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, s.internalError("Failed to load quiz questions", err, zap.Int64("category_id", categoryID))
	}
	if !allCategories && len(pool) == 0 {
		return nil, domain.NewUnprocessableError("no questions in quiz category", nil)
	}

	next := s.selector.Select(pool, previous)
	if next == nil {
		return &dto.QuizResponse{Success: true, Question: struct{}{}}, nil
	}
	return &dto.QuizResponse{Success: true, Question: formatQuestion(next)}, nil
}

func (s *triviaService) internalError(message string, err error, fields ...zap.Field) error {
	logger.Get().Error(message, append(fields, zap.Error(err))...)
	return domain.NewInternalError(message, err)
}

func categoryMap(categories []*domain.Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

func formatQuestion(q *domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func formatQuestions(questions []*domain.Question) []dto.QuestionResponse {
	formatted := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		formatted[i] = formatQuestion(q)
	}
	return formatted
}
