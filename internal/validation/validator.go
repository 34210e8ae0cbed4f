package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// AllCategories is the quiz category sentinel that disables category filtering.
const AllCategories = "all"

// idBitSize bounds client supplied ids and integers to the INTEGER columns
// they are compared against.
const idBitSize = 32

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateAddQuestionRequest checks presence of every field and coerces
// category and difficulty to integers. Any failure is Unprocessable.
func (v *Validator) ValidateAddQuestionRequest(req *dto.AddQuestionRequest) (*domain.Question, error) {
	if req == nil {
		return nil, domain.NewUnprocessableError("request body is required", nil)
	}
	if err := v.validate.Struct(req); err != nil {
		return nil, domain.NewUnprocessableError("invalid question payload", err)
	}

	category, err := toInt("category", req.Category)
	if err != nil {
		return nil, domain.NewUnprocessableError("invalid question payload", err)
	}
	difficulty, err := toInt("difficulty", req.Difficulty)
	if err != nil {
		return nil, domain.NewUnprocessableError("invalid question payload", err)
	}

	return domain.NewQuestion(*req.Question, *req.Answer, int64(category), difficulty), nil
}

// ParseQuizCategory interprets the quiz category query value. Empty, "all"
// and "0" select every category (all == true).
func ParseQuizCategory(raw string) (categoryID int64, all bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, AllCategories) {
		return 0, true, nil
	}
	categoryID, err = strconv.ParseInt(raw, 10, idBitSize)
	if err != nil {
		return 0, false, domain.NewUnprocessableError(fmt.Sprintf("invalid quiz category: %q", raw), err)
	}
	return categoryID, categoryID == 0, nil
}

// ParsePreviousQuestions splits a comma-joined id list. Blank and
// non-numeric entries can never match a question id and are skipped.
func ParsePreviousQuestions(raw string) []int64 {
	ids := []int64{}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ParseID parses a path id. Anything but a base-10 integer that fits an id
// column is reported as not found, since no such row can exist.
func ParseID(resource, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, idBitSize)
	if err != nil {
		return 0, domain.NewNotFoundError(fmt.Sprintf("invalid %s id: %q", resource, raw))
	}
	return id, nil
}

func toInt(field string, value interface{}) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, fmt.Errorf("%s is required", field)
	case bool:
		return 0, fmt.Errorf("%s must be an integer, got %v", field, v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s must be an integer, got %v", field, v)
		}
	case string:
		value = strings.TrimSpace(v)
	}

	n, err := cast.ToInt64E(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", field, err)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%s is out of range: %d", field, n)
	}
	return int(n), nil
}
