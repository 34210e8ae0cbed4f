package middleware

import (
	"trivia-api/internal/util"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys populated by ValidationMiddleware
const (
	LocalPage              = "validated_page"
	LocalID                = "validated_id"
	LocalQuizCategory      = "validated_quiz_category"
	LocalQuizAllCategories = "validated_quiz_all"
	LocalPreviousQuestions = "validated_previous_questions"
)

// ValidationMiddleware parses and validates request parameters before handlers run
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// Page stores the page query value, defaulting to 1.
func (vm *ValidationMiddleware) Page() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalPage, util.ParsePage(c.Query("page")))
		return c.Next()
	}
}

// PathID validates the named integer path parameter. Malformed ids are not found.
func (vm *ValidationMiddleware) PathID(resource, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := validation.ParseID(resource, c.Params(param))
		if err != nil {
			return err
		}
		c.Locals(LocalID, id)
		return c.Next()
	}
}

// QuizParams validates the category and previousQuestions query values.
func (vm *ValidationMiddleware) QuizParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID, all, err := validation.ParseQuizCategory(c.Query("category"))
		if err != nil {
			return err
		}

		c.Locals(LocalQuizCategory, categoryID)
		c.Locals(LocalQuizAllCategories, all)
		c.Locals(LocalPreviousQuestions, validation.ParsePreviousQuestions(c.Query("previousQuestions")))
		return c.Next()
	}
}

// PageFrom returns the page stored by Page, or 1.
func PageFrom(c *fiber.Ctx) int {
	if page, ok := c.Locals(LocalPage).(int); ok {
		return page
	}
	return 1
}

// IDFrom returns the id stored by PathID.
func IDFrom(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalID).(int64)
	return id
}

// QuizParamsFrom returns the values stored by QuizParams.
func QuizParamsFrom(c *fiber.Ctx) (categoryID int64, all bool, previous []int64) {
	categoryID, _ = c.Locals(LocalQuizCategory).(int64)
	all, _ = c.Locals(LocalQuizAllCategories).(bool)
	previous, _ = c.Locals(LocalPreviousQuestions).([]int64)
	return categoryID, all, previous
}
