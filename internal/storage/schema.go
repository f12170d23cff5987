package storage

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
    id         TEXT PRIMARY KEY,
    token      TEXT NOT NULL UNIQUE,
    name       TEXT NOT NULL,
    weight_kg  DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS health_entries (
    id                  TEXT PRIMARY KEY,
    user_id             TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    logged_at           TIMESTAMPTZ NOT NULL,
    steps               INTEGER NOT NULL DEFAULT 0,
    workouts            INTEGER NOT NULL DEFAULT 0,
    calories_burned     DOUBLE PRECISION NOT NULL DEFAULT 0,
    sleep_hours         DOUBLE PRECISION NOT NULL DEFAULT 0,
    hydration_level     DOUBLE PRECISION NOT NULL DEFAULT 0,
    mood_score          DOUBLE PRECISION NOT NULL DEFAULT 0,
    heart_rate          INTEGER NOT NULL DEFAULT 0,
    mental_health_score DOUBLE PRECISION NOT NULL DEFAULT 0,
    activity_type       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_health_entries_user ON health_entries (user_id, logged_at DESC);

CREATE TABLE IF NOT EXISTS exercises (
    id              TEXT PRIMARY KEY,
    user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    date            TIMESTAMPTZ NOT NULL,
    name            TEXT NOT NULL,
    met             DOUBLE PRECISION NOT NULL,
    duration        DOUBLE PRECISION NOT NULL,
    calories_burned INTEGER NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS sleep_entries (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    date       TIMESTAMPTZ NOT NULL,
    sleep_time TEXT NOT NULL,
    wake_time  TEXT NOT NULL,
    duration   DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS water_entries (
    id        TEXT PRIMARY KEY,
    user_id   TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    date      TIMESTAMPTZ NOT NULL,
    amount    DOUBLE PRECISION NOT NULL,
    timestamp TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS mood_entries (
    id           TEXT PRIMARY KEY,
    user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    date         TIMESTAMPTZ NOT NULL,
    mood         INTEGER NOT NULL,
    stress_level INTEGER NOT NULL,
    notes        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS meals (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    date       TIMESTAMPTZ NOT NULL,
    name       TEXT NOT NULL,
    calories   DOUBLE PRECISION NOT NULL,
    protein_g  DOUBLE PRECISION NOT NULL DEFAULT 0,
    carbs_g    DOUBLE PRECISION NOT NULL DEFAULT 0,
    fat_g      DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS journal_entries (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    date       TIMESTAMPTZ NOT NULL,
    title      TEXT NOT NULL,
    content    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    type       TEXT NOT NULL,
    target     INTEGER NOT NULL,
    frequency  TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    UNIQUE (user_id, type, frequency)
);

CREATE TABLE IF NOT EXISTS reminders (
    id            TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    title         TEXT NOT NULL,
    days          INTEGER[] NOT NULL DEFAULT '{}',
    hour          INTEGER NOT NULL,
    minute        INTEGER NOT NULL,
    enabled       BOOLEAN NOT NULL,
    last_fired_at TIMESTAMPTZ NOT NULL DEFAULT 'epoch',
    created_at    TIMESTAMPTZ NOT NULL
);
`
