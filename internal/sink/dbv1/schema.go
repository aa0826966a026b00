package dbv1

// schemaVersionMajor and schemaVersionMinor are recorded in the singleton
// database_metadata row.
const (
	schemaVersionMajor = 1
	schemaVersionMinor = 0
)

// createTableStatements creates the five tables in the order the write
// protocol inserts into them, so that later CREATE TABLE statements can
// reference earlier ones via foreign keys.
var createTableStatements = []string{
	`CREATE TABLE database_metadata (
		schema_version_major INTEGER NOT NULL,
		schema_version_minor INTEGER NOT NULL,
		compile_time TEXT NOT NULL,
		vendor TEXT NOT NULL
	)`,
	`CREATE TABLE summits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		latitude INTEGER NOT NULL,
		longitude INTEGER NOT NULL
	)`,
	`CREATE TABLE summit_names (
		name TEXT NOT NULL,
		usage INTEGER NOT NULL,
		summit_id INTEGER NOT NULL,
		PRIMARY KEY (summit_id, usage, name),
		FOREIGN KEY (summit_id) REFERENCES summits(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE routes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		summit_id INTEGER NOT NULL,
		route_name TEXT NOT NULL,
		route_grade TEXT,
		grade_af INTEGER,
		grade_rp INTEGER,
		grade_ou INTEGER,
		grade_jump INTEGER,
		stars INTEGER,
		danger BOOLEAN,
		UNIQUE (summit_id, route_name, route_grade),
		FOREIGN KEY (summit_id) REFERENCES summits(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		route_id INTEGER NOT NULL,
		user_name TEXT,
		post_date TEXT,
		comment TEXT,
		rating INTEGER,
		FOREIGN KEY (route_id) REFERENCES routes(id) ON DELETE CASCADE
	)`,
}

// createIndexStatements is run after every table exists.
var createIndexStatements = []string{
	`CREATE INDEX idx_summit_names_name ON summit_names(name)`,
	`CREATE INDEX idx_routes_route_name ON routes(route_name)`,
}

// usageOfficial and usageAlternate are the summit_names.usage values.
const (
	usageOfficial  = 0
	usageAlternate = 1
)

const summitIDBySummitNameSQL = `
	SELECT summit_id FROM summit_names WHERE name = ? AND usage = 0 LIMIT 1
`

const routeIDByNameAndSummitNameSQL = `
	SELECT id FROM routes WHERE route_name = ? AND summit_id = (` + summitIDBySummitNameSQL + `) LIMIT 1
`
