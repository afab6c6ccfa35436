package mysql

import (
	"context"
	"errors"
	"os"
	"testing"

	"NGO_Platform/internal/model"
	"NGO_Platform/internal/repository"
)

func TestRecordRepository_ImplementsBackend(t *testing.T) {
	var _ repository.Backend = (*RecordRepository)(nil)
}

func TestLookupValue(t *testing.T) {
	if got := lookupValue(model.KindUser, model.Record{"email": "a@b.c"}); got != "a@b.c" {
		t.Errorf("user lookup = %q", got)
	}
	if got := lookupValue(model.KindDonation, model.Record{"transactionId": "TXN1"}); got != "TXN1" {
		t.Errorf("donation lookup = %q", got)
	}
	if got := lookupValue(model.KindCampaign, model.Record{"title": "x"}); got != "" {
		t.Errorf("campaign lookup = %q, want empty", got)
	}
}

func TestDecode_RejectsBadJSON(t *testing.T) {
	if _, err := decode(RecordRow{Kind: "campaigns", RecordID: "1", Body: "{"}); err == nil {
		t.Error("expected decode error")
	}
}

// Integration test; runs only when TEST_MYSQL_DSN points at a scratch database.
func TestRecordRepository_RoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set")
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM records")
		db.Exec("DELETE FROM record_counters")
		_ = Close(db)
	})
	db.Exec("DELETE FROM records")
	db.Exec("DELETE FROM record_counters")

	repo := NewRecordRepository(db)
	ctx := context.Background()

	id, err := repo.NextID(ctx, model.KindUser)
	if err != nil || id != "1" {
		t.Fatalf("NextID = %q, %v; want 1", id, err)
	}
	if err := repo.Insert(ctx, model.KindUser, model.Record{"id": id, "email": "old@example.com"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := repo.Replace(ctx, model.KindUser, id, model.Record{"id": id, "email": "new@example.com"}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if _, err := repo.FindBy(ctx, model.KindUser, "email", "old@example.com"); !errors.Is(err, repository.ErrNoRecord) {
		t.Errorf("old email err = %v, want ErrNoRecord", err)
	}
	got, err := repo.FindBy(ctx, model.KindUser, "email", "new@example.com")
	if err != nil || got.ID() != id {
		t.Errorf("FindBy new = %v, %v", got, err)
	}
	if err := repo.Delete(ctx, model.KindUser, "404"); !errors.Is(err, repository.ErrNoRecord) {
		t.Errorf("Delete missing err = %v", err)
	}
}
