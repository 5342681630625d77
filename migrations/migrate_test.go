// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations_CreateAllTables(t *testing.T) {
	raw, err := embedMigrations.ReadFile("00001_init.sql")
	if err != nil {
		t.Fatalf("failed to read embedded migration: %v", err)
	}

	sqlText := string(raw)
	for _, table := range []string{
		"users", "client_profiles", "projects", "milestones", "tasks",
		"project_files", "cases", "case_media", "contacts",
	} {
		if !strings.Contains(sqlText, "CREATE TABLE IF NOT EXISTS "+table+" ") {
			t.Errorf("expected migration to create table %q", table)
		}
	}
}

func TestEmbeddedMigrations_EmailUniqueIgnoresCase(t *testing.T) {
	raw, err := embedMigrations.ReadFile("00002_users_email_lower.sql")
	if err != nil {
		t.Fatalf("failed to read embedded migration: %v", err)
	}

	if !strings.Contains(string(raw), "CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_key ON users (lower(email))") {
		t.Error("expected a case-insensitive unique index on users.email")
	}
}
