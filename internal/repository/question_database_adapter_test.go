package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var questionRowColumns = []string{"id", "question", "answer", "category", "difficulty"}

func TestGetAllQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow(2, "What boxer's original name is Cassius Clay?", "Muhammad Ali", 4, 1).
		AddRow(5, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, question, answer, category, difficulty FROM questions ORDER BY id")).
		WillReturnRows(rows)

	questions, err := repo.GetAllQuestions(context.Background())

	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, &domain.Question{
		ID:         2,
		Question:   "What boxer's original name is Cassius Clay?",
		Answer:     "Muhammad Ali",
		Category:   4,
		Difficulty: 1,
	}, questions[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionsByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow(13, "What is the largest lake in Africa?", "Lake Victoria", 3, 2)
	mock.ExpectQuery(regexp.QuoteMeta("FROM questions WHERE category = $1 ORDER BY id")).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	questions, err := repo.GetQuestionsByCategory(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, int64(3), questions[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchQuestions(t *testing.T) {
	query := regexp.QuoteMeta(`FROM questions WHERE question ILIKE $1 ESCAPE '\' ORDER BY id`)

	tests := []struct {
		name    string
		term    string
		pattern string
	}{
		{"plain term", "title", "%title%"},
		{"mixed case is passed through for ILIKE", "TiTlE", "%TiTlE%"},
		{"wildcards are escaped", "100%_sure", `%100\%\_sure%`},
		{"backslash is escaped", `a\b`, `%a\\b%`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewQuestionDatabaseAdapter(db)

			rows := sqlmock.NewRows(questionRowColumns).
				AddRow(6, "What was the title of the 1990 fantasy directed by Tim Burton?", "Edward Scissorhands", 5, 3)
			mock.ExpectQuery(query).WithArgs(tt.pattern).WillReturnRows(rows)

			questions, err := repo.SearchQuestions(context.Background(), tt.term)

			require.NoError(t, err)
			assert.Len(t, questions, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetQuestionByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	query := regexp.QuoteMeta("FROM questions WHERE id = $1")

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(36)).
			WillReturnRows(sqlmock.NewRows(questionRowColumns).AddRow(36, "q", "a", 1, 1))

		question, err := repo.GetQuestionByID(context.Background(), 36)

		require.NoError(t, err)
		assert.Equal(t, int64(36), question.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(questionRowColumns))

		question, err := repo.GetQuestionByID(context.Background(), 999)

		assert.NoError(t, err)
		assert.Nil(t, question)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DBError", func(t *testing.T) {
		dbErr := errors.New("timeout")
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(dbErr)

		question, err := repo.GetQuestionByID(context.Background(), 1)

		assert.Nil(t, question)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM questions")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(19))

	count, err := repo.CountQuestions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 19, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	question := domain.NewQuestion("best software engineer ?", "Tshepiso Ncosane", 3, 3)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO questions (question, answer, category, difficulty)")).
		WithArgs(question.Question, question.Answer, question.Category, question.Difficulty).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	err := repo.SaveQuestion(context.Background(), question)

	require.NoError(t, err)
	assert.Equal(t, int64(42), question.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestion_ForeignKeyViolation(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	fkErr := errors.New(`insert or update on table "questions" violates foreign key constraint`)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO questions")).WillReturnError(fkErr)

	question := domain.NewQuestion("q", "a", 100000, 1)
	err := repo.SaveQuestion(context.Background(), question)

	assert.ErrorIs(t, err, fkErr)
	assert.Zero(t, question.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	query := regexp.QuoteMeta("DELETE FROM questions WHERE id = $1")

	t.Run("Deleted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(int64(36)).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteQuestion(context.Background(), 36))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NothingDeleted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(int64(36)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteQuestion(context.Background(), 36)

		assert.ErrorIs(t, err, domain.ErrNoRowsAffected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
