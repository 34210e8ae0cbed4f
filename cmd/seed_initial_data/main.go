package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"trivia-api/cmd/seed_initial_data/internal/seedmodels"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/trivia.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	seedCategories, err := seedmodels.Load(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}

	s := &seeder{
		tm:         repository.NewTransactionManagerAdapter(db),
		categories: repository.NewCategoryDatabaseAdapter(db),
		questions:  repository.NewQuestionDatabaseAdapter(db),
		log:        log,
	}
	if err := s.seed(ctx, seedCategories); err != nil {
		log.Error("Seeding failed, transaction rolled back", zap.Error(err))
		return
	}
	log.Info("Initial data seeding process completed.")
}

type seeder struct {
	tm         domain.TransactionManager
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	log        *zap.Logger
}

// seed inserts every category that does not exist yet, with its questions,
// in a single transaction. Existing categories are left untouched.
func (s *seeder) seed(ctx context.Context, seedCategories []seedmodels.SeedCategory) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, sc := range seedCategories {
			existing, err := s.categories.GetCategoryByType(txCtx, sc.Type)
			if err != nil {
				return fmt.Errorf("error checking category %s: %w", sc.Type, err)
			}
			if existing != nil {
				s.log.Info("Category exists, skipping.", zap.Int64("id", existing.ID), zap.String("type", existing.Type))
				continue
			}

			category := &domain.Category{Type: sc.Type}
			if err := s.categories.SaveCategory(txCtx, category); err != nil {
				return fmt.Errorf("failed to save category %s: %w", sc.Type, err)
			}

			for _, sq := range sc.Questions {
				question := domain.NewQuestion(sq.Question, sq.Answer, category.ID, sq.Difficulty)
				if err := s.questions.SaveQuestion(txCtx, question); err != nil {
					return fmt.Errorf("failed to save question for category %s: %w", sc.Type, err)
				}
			}
			s.log.Info("Created category.", zap.Int64("id", category.ID), zap.String("type", category.Type),
				zap.Int("questions", len(sc.Questions)))
		}
		return nil
	})
}
