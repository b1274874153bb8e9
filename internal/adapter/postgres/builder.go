package postgres

import "github.com/Masterminds/squirrel"

// Builder produces SQL with PostgreSQL $n placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
