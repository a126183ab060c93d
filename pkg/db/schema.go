package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Analyses: one row per analyzed component snapshot
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
    block_name TEXT NOT NULL,
    block_type TEXT NOT NULL,              -- single, multi-item
    js_pattern TEXT NOT NULL,              -- cards, carousel, decorated
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- Confidence scores, 0-100
    overall INTEGER NOT NULL,
    block_type_score INTEGER NOT NULL,
    field_extraction_score INTEGER NOT NULL,

    -- Derived structure counts
    container_field_count INTEGER DEFAULT 0,
    item_field_count INTEGER DEFAULT 0,
    cta_count INTEGER DEFAULT 0,

    -- Full result document as JSON for later inspection
    result_json TEXT
);

CREATE INDEX IF NOT EXISTS idx_analyses_block_name ON analyses(block_name);
CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_analyses_overall ON analyses(overall);
CREATE INDEX IF NOT EXISTS idx_analyses_block_type ON analyses(block_type);
`
