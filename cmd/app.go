package cmd

import (
	"fmt"

	"github.com/Samandar-Komilov/voidpdev/config"
	"github.com/Samandar-Komilov/voidpdev/content"
	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/models"
	"gorm.io/gorm"
)

// openDB is swapped out in tests.
var openDB = database.Open

func newNormalizer(c map[string]string) (*content.Normalizer, error) {
	format, err := content.ParseFormat(config.GetString(c, "CONTENT_FORMAT", string(content.FormatMarkdown)))
	if err != nil {
		return nil, fmt.Errorf("CONTENT_FORMAT: %w", err)
	}
	return content.NewNormalizer(format,
		content.WithExcerptLength(config.GetInt(c, "EXCERPT_LENGTH", content.DefaultExcerptLength)),
	), nil
}

// newSanitizer returns nil when CONTENT_SANITIZE is switched off.
func newSanitizer(c map[string]string) *content.Sanitizer {
	if !config.GetBool(c, "CONTENT_SANITIZE", true) {
		return nil
	}
	return content.NewSanitizer()
}

// openDatabase connects and, with AUTO_MIGRATE=true, migrates the schema.
func openDatabase(c map[string]string) (*gorm.DB, error) {
	db, err := openDB(c)
	if err != nil {
		return nil, err
	}
	if config.GetBool(c, "AUTO_MIGRATE", false) {
		if err := models.Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}
