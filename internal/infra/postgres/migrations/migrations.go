package migrations

import (
	_ "embed"

	"github.com/uptrace/bun/migrate"
)

//go:embed 0001_create_quiz_questions.sql
var createQuizQuestionsSQL string

//go:embed 0002_create_comments.sql
var createCommentsSQL string

var Migrations = migrate.NewMigrations()
