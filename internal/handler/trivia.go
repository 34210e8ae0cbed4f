package handler

import (
	"encoding/json"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TriviaHandler handles trivia HTTP requests
type TriviaHandler struct {
	service   service.TriviaService
	validator *validation.Validator
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(service service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// RegisterRoutes mounts every trivia route on router
func (h *TriviaHandler) RegisterRoutes(router fiber.Router) {
	vm := middleware.NewValidationMiddleware()

	router.Get("/categories", h.GetCategories)
	router.Get("/categories/:category_id/questions",
		vm.PathID("category", "category_id"), vm.Page(), h.GetQuestionsByCategory)

	router.Get("/questions", vm.Page(), h.GetQuestions)
	router.Post("/questions", vm.Page(), h.SearchQuestions)
	router.Post("/questions/add", h.AddQuestion)
	router.Delete("/questions/:question_id", vm.PathID("question", "question_id"), h.DeleteQuestion)

	router.Post("/play/quizzes", vm.QuizParams(), h.PlayQuiz)
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category as an id to type map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.service.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns one page of ten questions together with all categories
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestions(c.UserContext(), middleware.PageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestionsByCategory godoc
// @Summary List questions of a category
// @Tags categories
// @Produce json
// @Param category_id path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{category_id}/questions [get]
func (h *TriviaHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestionsByCategory(c.UserContext(), middleware.IDFrom(c), middleware.PageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/{question_id} [delete]
func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	resp, err := h.service.DeleteQuestion(c.UserContext(), middleware.IDFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AddQuestion godoc
// @Summary Create a question
// @Description Category and difficulty accept integers or numeric strings
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.AddQuestionRequest true "New question"
// @Success 200 {object} dto.AddQuestionResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/add [post]
func (h *TriviaHandler) AddQuestion(c *fiber.Ctx) error {
	var req dto.AddQuestionRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return domain.NewUnprocessableError("malformed question payload", err)
	}

	question, err := h.validator.ValidateAddQuestionRequest(&req)
	if err != nil {
		return err
	}

	resp, err := h.service.AddQuestion(c.UserContext(), question)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring match on question text. An empty term matches nothing.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.SearchQuestionsRequest true "Search term"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return domain.NewBadRequestError("malformed search payload", err)
	}

	term := ""
	if req.SearchTerm != nil {
		term = *req.SearchTerm
	}

	resp, err := h.service.SearchQuestions(c.UserContext(), term, middleware.PageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PlayQuiz godoc
// @Summary Next quiz question
// @Description Returns a random question not yet asked, or an empty object when none is left
// @Tags quizzes
// @Produce json
// @Param category query string false "Category id, or all"
// @Param previousQuestions query string false "Comma-separated ids already asked"
// @Success 200 {object} dto.QuizResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /play/quizzes [post]
func (h *TriviaHandler) PlayQuiz(c *fiber.Ctx) error {
	categoryID, all, previous := middleware.QuizParamsFrom(c)

	resp, err := h.service.GetNextQuizQuestion(c.UserContext(), categoryID, all, previous)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
