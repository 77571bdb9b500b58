package schema

import "strings"

// SchemaSQL contains the full database schema initialization script.
// Every statement is idempotent.
const SchemaSQL = `
-- Solo hunts
CREATE TABLE IF NOT EXISTS solo_hunts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date DATE NOT NULL,
    character TEXT NOT NULL,
    hunt_type TEXT NOT NULL,
    item_profit REAL NOT NULL,
    description TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Group hunts; characters is a comma separated roster
CREATE TABLE IF NOT EXISTS group_hunts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date DATE NOT NULL,
    characters TEXT NOT NULL,
    total_value REAL NOT NULL,
    notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Deaths
CREATE TABLE IF NOT EXISTS deaths (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date DATE NOT NULL,
    character TEXT NOT NULL,
    value_lost REAL NOT NULL,
    description TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Builds; equipment slots hold catalog display names
CREATE TABLE IF NOT EXISTS builds (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    content_type TEXT NOT NULL,
    primary_weapon TEXT NOT NULL,
    offhand TEXT,
    head TEXT,
    chest TEXT,
    boots TEXT,
    cape TEXT,
    potion TEXT,
    food TEXT,
    notes TEXT,
    character TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// Tables lists every table created by SchemaSQL
var Tables = []string{"solo_hunts", "group_hunts", "deaths", "builds"}

// ColumnUpgrade is an additive change for databases created before the
// column existed.
type ColumnUpgrade struct {
	Table      string
	Column     string
	Definition string
}

// Statement renders the ALTER TABLE for the upgrade
func (u ColumnUpgrade) Statement() string {
	return "ALTER TABLE " + u.Table + " ADD COLUMN " + u.Column + " " + u.Definition
}

// Upgrades are applied in order by UpgradeSchema
var Upgrades = []ColumnUpgrade{
	{Table: "builds", Column: "offhand", Definition: "TEXT"},
	{Table: "builds", Column: "character", Definition: "TEXT"},
}

// duplicateColumnMessage is how SQLite reports an ADD COLUMN that already ran
const duplicateColumnMessage = "duplicate column name"

// IsDuplicateColumn reports whether err means the column is already present
func IsDuplicateColumn(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), duplicateColumnMessage)
}
