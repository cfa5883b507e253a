package database

import (
	"errors"
	"fmt"
	stdlog "log"
	"time"

	"github.com/Samandar-Komilov/voidpdev/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

type Database struct {
	db          *gorm.DB
	postRepo    *PostRepo
	projectRepo *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		postRepo:    NewPostRepo(db),
		projectRepo: NewProjectRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// GetDB returns the underlying database connection for migrations and reports
func (d Database) GetDB() *gorm.DB {
	return d.db
}

// DSN builds the primary connection string from configuration.
func DSN(cfg map[string]string) (string, error) {
	switch dbType := config.GetString(cfg, "DB_TYPE", "postgres"); dbType {
	case "supa":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(cfg, "SUPABASE_DB_HOST", ""),
			config.GetString(cfg, "SUPABASE_DB_USER", ""),
			config.GetString(cfg, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(cfg, "SUPABASE_DB_NAME", ""),
			config.GetString(cfg, "SUPABASE_DB_PORT", "5432"),
		), nil
	case "postgres":
		dsn := config.GetString(cfg, "DATABASE_URL", "")
		if dsn == "" {
			return "", errors.New("DATABASE_URL is required when DB_TYPE=postgres")
		}
		return dsn, nil
	default:
		return "", fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
}

// Open connects to postgres, verifies the connection and registers read
// replicas listed in DB_REPLICA_DSNS.
func Open(cfg map[string]string) (*gorm.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
		Logger:         NewLogger(time.Duration(config.GetInt(cfg, "DB_SLOW_QUERY_MS", 500)) * time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("test database connection: %w", err)
	}

	var replicas []gorm.Dialector
	for _, replicaDSN := range config.GetList(cfg, "DB_REPLICA_DSNS") {
		replicas = append(replicas, postgres.New(postgres.Config{
			DSN:                  replicaDSN,
			PreferSimpleProtocol: true,
		}))
	}
	if err := RegisterReplicas(db, replicas...); err != nil {
		return nil, err
	}

	return db, nil
}

// RegisterReplicas routes queries to the given replicas and keeps writes on
// the primary connection. Without replicas it does nothing.
func RegisterReplicas(db *gorm.DB, replicas ...gorm.Dialector) error {
	if len(replicas) == 0 {
		return nil
	}
	if err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})); err != nil {
		return fmt.Errorf("register read replicas: %w", err)
	}
	log.Info().Int("replicas", len(replicas)).Msg("Read replicas registered")
	return nil
}

// NewLogger returns a gorm logger writing through zerolog.
func NewLogger(slowThreshold time.Duration) logger.Interface {
	writer := log.With().Str("component", "gorm").Logger()
	return logger.New(
		stdlog.New(writer, "", 0),
		logger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
