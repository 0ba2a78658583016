package server

// Wire-format columns throughout: tag fields stay comma-joined strings
// and pnl stays a decimal string, exactly as they travel over REST.
// "array" is quoted to stay clear of SQL keywords.
const Schema = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT,
	ltf TEXT NOT NULL DEFAULT '',
	htf TEXT NOT NULL DEFAULT '',
	bias TEXT NOT NULL DEFAULT '',
	kill_zone TEXT NOT NULL DEFAULT '',
	"array" TEXT NOT NULL DEFAULT '',
	results TEXT NOT NULL DEFAULT '',
	pnl TEXT NOT NULL DEFAULT '0',
	emotions TEXT NOT NULL DEFAULT '',
	before_trade_emotions TEXT NOT NULL DEFAULT '',
	in_trade_emotions TEXT NOT NULL DEFAULT '',
	after_trade_emotions TEXT NOT NULL DEFAULT '',
	mistake TEXT NOT NULL DEFAULT '',
	reason TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
`
