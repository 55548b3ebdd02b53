package store

// SchemaSQL contains the database schema initialization SQL.
const SchemaSQL = `
    -- ==========================================================================
    -- VOCABULARY ITEM TABLE
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS vocab_item SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS name ON vocab_item TYPE string;
    DEFINE FIELD IF NOT EXISTS category ON vocab_item TYPE string
        ASSERT $value IN ["activity", "pressure", "consequence", "control"];
    DEFINE FIELD IF NOT EXISTS created ON vocab_item TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS vocab_category ON vocab_item FIELDS category;

    -- ==========================================================================
    -- ACCEPTED LINK TABLE
    -- ==========================================================================
    -- Links an analyst has confirmed; excluded from future recommendations.
    DEFINE TABLE IF NOT EXISTS accepted_link SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS from_id ON accepted_link TYPE string;
    DEFINE FIELD IF NOT EXISTS to_id ON accepted_link TYPE string;
    DEFINE FIELD IF NOT EXISTS score ON accepted_link TYPE float DEFAULT 1.0;
    DEFINE FIELD IF NOT EXISTS method ON accepted_link TYPE string;
    DEFINE FIELD IF NOT EXISTS created ON accepted_link TYPE datetime DEFAULT time::now();
    -- Unique constraint: sorted [from_id, to_id] prevents duplicate pairs
    DEFINE FIELD IF NOT EXISTS unique_key ON accepted_link VALUE <string>array::sort([from_id, to_id]);
    DEFINE INDEX IF NOT EXISTS unique_pair ON accepted_link FIELDS unique_key UNIQUE;
`
