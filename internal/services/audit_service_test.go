package services

import (
	"context"
	"encoding/json"
	"testing"

	"cashbook/internal/models"
	"cashbook/internal/testutil"
)

func TestAuditService_Log(t *testing.T) {
	t.Run("records_entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		svc.Log(context.Background(), "CREATE_TRANSACTION", "transaction",
			"0191e0a4-0000-7000-8000-000000000001", "10.0.0.1",
			map[string]any{"type": "sale", "amount": "100"})

		var entries []models.AuditLog
		testutil.AssertNoError(t, db.Find(&entries).Error)
		if len(entries) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(entries))
		}

		entry := entries[0]
		if entry.Action != "CREATE_TRANSACTION" || entry.ResourceType != "transaction" || entry.IPAddress != "10.0.0.1" {
			t.Errorf("unexpected entry: %+v", entry)
		}

		var changes map[string]any
		testutil.AssertNoError(t, json.Unmarshal([]byte(entry.Changes), &changes))
		if changes["type"] != "sale" {
			t.Errorf("changes[type] = %v, want sale", changes["type"])
		}
	})

	t.Run("nil_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		svc.Log(context.Background(), "DELETE_DEBT", "debt", "0191e0a4-0000-7000-8000-000000000002", "", nil)

		var entry models.AuditLog
		testutil.AssertNoError(t, db.First(&entry).Error)
		if entry.Changes != "" {
			t.Errorf("expected empty changes, got %q", entry.Changes)
		}
	})

	t.Run("cancelled_context_still_records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		svc.Log(ctx, "MARK_DEBT_PAID", "debt", "0191e0a4-0000-7000-8000-000000000003", "", nil)

		var count int64
		testutil.AssertNoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
		if count != 1 {
			t.Errorf("expected 1 audit entry, got %d", count)
		}
	})

	t.Run("store_failure_is_swallowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAuditService(db)
		testutil.TeardownTestDB(t, db)

		// Must not panic or surface the error.
		svc.Log(context.Background(), "DELETE_TRANSACTION", "transaction", "x", "", nil)
	})
}
