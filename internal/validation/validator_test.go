package validation

import (
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateAddQuestionRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name           string
		req            *dto.AddQuestionRequest
		wantErr        bool
		wantCategory   int64
		wantDifficulty int
	}{
		{
			name:           "json numbers",
			req:            &dto.AddQuestionRequest{Question: strPtr("best software engineer ?"), Answer: strPtr("Tshepiso Ncosane"), Category: float64(3), Difficulty: float64(3)},
			wantCategory:   3,
			wantDifficulty: 3,
		},
		{
			name:           "numeric strings",
			req:            &dto.AddQuestionRequest{Question: strPtr("q"), Answer: strPtr("a"), Category: "4", Difficulty: " 2 "},
			wantCategory:   4,
			wantDifficulty: 2,
		},
		{
			name:           "empty text is accepted",
			req:            &dto.AddQuestionRequest{Question: strPtr(""), Answer: strPtr(""), Category: float64(1), Difficulty: float64(1)},
			wantCategory:   1,
			wantDifficulty: 1,
		},
		{name: "non-numeric category", req: &dto.AddQuestionRequest{Question: strPtr("q"), Answer: strPtr("a"), Category: "science", Difficulty: float64(1)}, wantErr: true},
		{name: "non-numeric difficulty", req: &dto.AddQuestionRequest{Question: strPtr("q"), Answer: strPtr("a"), Category: float64(1), Difficulty: "hard"}, wantErr: true},
		{name: "fractional difficulty", req: &dto.AddQuestionRequest{Question: strPtr("q"), Answer: strPtr("a"), Category: float64(1), Difficulty: 2.5}, wantErr: true},
		{name: "boolean category", req: &dto.AddQuestionRequest{Question: strPtr("q"), Answer: strPtr("a"), Category: true, Difficulty: float64(1)}, wantErr: true},
		{name: "category beyond id range", req: &dto.AddQuestionRequest{Question: strPtr("q"), Answer: strPtr("a"), Category: float64(99999999999), Difficulty: float64(1)}, wantErr: true},
		{name: "difficulty beyond integer range", req: &dto.AddQuestionRequest{Question: strPtr("q"), Answer: strPtr("a"), Category: float64(1), Difficulty: "-99999999999"}, wantErr: true},
		{name: "missing category", req: &dto.AddQuestionRequest{Question: strPtr("q"), Answer: strPtr("a"), Difficulty: float64(1)}, wantErr: true},
		{name: "missing question", req: &dto.AddQuestionRequest{Answer: strPtr("a"), Category: float64(1), Difficulty: float64(1)}, wantErr: true},
		{name: "missing answer", req: &dto.AddQuestionRequest{Question: strPtr("q"), Category: float64(1), Difficulty: float64(1)}, wantErr: true},
		{name: "nil request", req: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question, err := v.ValidateAddQuestionRequest(tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.CodeUnprocessable, domain.CodeOf(err))
				assert.Nil(t, question)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, question.Category)
			assert.Equal(t, tt.wantDifficulty, question.Difficulty)
			assert.Equal(t, *tt.req.Question, question.Question)
			assert.Zero(t, question.ID)
		})
	}
}

func TestParseQuizCategory(t *testing.T) {
	tests := []struct {
		raw     string
		wantID  int64
		wantAll bool
		wantErr bool
	}{
		{raw: "", wantAll: true},
		{raw: "all", wantAll: true},
		{raw: "ALL", wantAll: true},
		{raw: "0", wantAll: true},
		{raw: "3", wantID: 3},
		{raw: "100000", wantID: 100000},
		{raw: "2147483647", wantID: 2147483647},
		{raw: "99999999999", wantErr: true},
		{raw: "science", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, all, err := ParseQuizCategory(tt.raw)
			if tt.wantErr {
				assert.Equal(t, domain.CodeUnprocessable, domain.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantAll, all)
		})
	}
}

func TestParsePreviousQuestions(t *testing.T) {
	assert.Empty(t, ParsePreviousQuestions(""))
	assert.Equal(t, []int64{5, 9, 12}, ParsePreviousQuestions("5,9,12"))
	assert.Equal(t, []int64{5, 12}, ParsePreviousQuestions(" 5 ,,x,12,"))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("question", "36")
	require.NoError(t, err)
	assert.Equal(t, int64(36), id)

	_, err = ParseID("question", "abc")
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

	id, err = ParseID("question", "2147483647")
	require.NoError(t, err)
	assert.Equal(t, int64(2147483647), id)

	for _, raw := range []string{"2147483648", "99999999999", "-99999999999"} {
		_, err = ParseID("category", raw)
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err), raw)
	}
}
