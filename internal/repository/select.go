package repository

import (
	"context"
	"time"

	"student-feedback-backend/internal/config"
	"student-feedback-backend/internal/database"

	"go.uber.org/zap"
)

const (
	SourceMongo  = "mongodb"
	SourceMemory = "memory"
)

// Stores bundles the repositories selected at startup.
type Stores struct {
	Users     UserRepository
	Feedbacks FeedbackRepository
	// Source names the active storage mode, echoed in list responses.
	Source string
}

// Select probes the document store once and picks the storage mode for the
// rest of the process lifetime. An unreachable store degrades to in-memory
// storage instead of failing startup; the choice is never retried.
func Select(cfg config.Config, lg *zap.SugaredLogger) Stores {
	db, err := database.Connect(cfg.MongoURI, cfg.DatabaseName, cfg.ConnectTimeout)
	if err != nil {
		lg.Warnf("⚠️  MongoDB unreachable, falling back to in-memory storage (data lost on restart): %v", err)
		return Stores{
			Users:     NewMemoryUserRepo(),
			Feedbacks: NewMemoryFeedbackRepo(),
			Source:    SourceMemory,
		}
	}

	users := NewMongoUserRepo(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := users.EnsureIndexes(ctx); err != nil {
		lg.Warnf("⚠️  failed to create user indexes: %v", err)
	}

	lg.Infof("✅ Connected to MongoDB: %s", cfg.DatabaseName)
	return Stores{
		Users:     users,
		Feedbacks: NewMongoFeedbackRepo(db),
		Source:    SourceMongo,
	}
}
