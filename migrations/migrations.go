package migrations

import "embed"

// FS содержит SQL миграции схемы
//
//go:embed *.sql
var FS embed.FS
