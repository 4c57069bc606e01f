package services

import (
	"context"
	"testing"

	"cashbook/internal/models"
	"cashbook/internal/pagination"
	"cashbook/internal/testutil"
)

func TestCreateDebt(t *testing.T) {
	ctx := context.Background()

	t.Run("opens_debt", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)

		debt, err := svc.CreateDebt(ctx, CreateDebtInput{
			Direction: models.DebtOwedToMe,
			Person:    "  Sara ",
			Amount:    dec("150.50"),
			Note:      strPtr("screen repair"),
		})
		testutil.AssertNoError(t, err)

		if debt.ID == "" {
			t.Fatal("expected an assigned ID")
		}
		if debt.Status != models.DebtStatusOpen {
			t.Errorf("Status = %q, want open", debt.Status)
		}
		if debt.Person != "Sara" {
			t.Errorf("Person = %q, want Sara", debt.Person)
		}
		if !debt.UpdatedAt.Equal(debt.CreatedAt) {
			t.Errorf("updated_at %v should equal created_at %v", debt.UpdatedAt, debt.CreatedAt)
		}
		testutil.AssertDecimal(t, "amount", debt.Amount, "150.50")
	})

	t.Run("invalid_direction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)

		_, err := svc.CreateDebt(ctx, CreateDebtInput{Direction: "sideways", Person: "Sara", Amount: dec("10")})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("blank_person", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)

		_, err := svc.CreateDebt(ctx, CreateDebtInput{Direction: models.DebtOwedByMe, Person: "   ", Amount: dec("10")})
		testutil.AssertAppError(t, err, "PERSON_REQUIRED")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)

		for _, amount := range []string{"0", "-5"} {
			_, err := svc.CreateDebt(ctx, CreateDebtInput{Direction: models.DebtOwedByMe, Person: "Sara", Amount: dec(amount)})
			testutil.AssertAppError(t, err, "INVALID_AMOUNT")
		}
	})
}

func TestListDebts(t *testing.T) {
	ctx := context.Background()

	t.Run("open_before_paid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)

		paid := testutil.CreateTestDebt(t, db, models.DebtOwedToMe, "40")
		testutil.MarkTestDebtPaid(t, db, paid)
		older := testutil.CreateTestDebt(t, db, models.DebtOwedToMe, "50")
		newer := testutil.CreateTestDebt(t, db, models.DebtOwedByMe, "20")

		page, err := svc.ListDebts(ctx, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		want := []string{newer.ID, older.ID, paid.ID}
		if len(page.Data) != len(want) {
			t.Fatalf("expected %d debts, got %d", len(want), len(page.Data))
		}
		for i, id := range want {
			if page.Data[i].ID != id {
				t.Errorf("row %d: got %s, want %s", i, page.Data[i].ID, id)
			}
		}

		testutil.AssertDecimal(t, "receivable", page.Totals.Receivable, "50")
		testutil.AssertDecimal(t, "payable", page.Totals.Payable, "20")
	})

	t.Run("page_size_capped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)

		page, err := svc.ListDebts(ctx, pagination.PageRequest{Page: 1, PageSize: 500})
		testutil.AssertNoError(t, err)
		if page.PageSize != maxDebtPageSize {
			t.Errorf("PageSize = %d, want %d", page.PageSize, maxDebtPageSize)
		}
	})
}

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("open_to_paid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		debt := testutil.CreateTestDebt(t, db, models.DebtOwedToMe, "75")

		updated, err := svc.MarkPaid(ctx, debt.ID)
		testutil.AssertNoError(t, err)
		if updated.Status != models.DebtStatusPaid {
			t.Errorf("Status = %q, want paid", updated.Status)
		}

		stored, err := svc.GetDebtByID(ctx, debt.ID)
		testutil.AssertNoError(t, err)
		if stored.Status != models.DebtStatusPaid {
			t.Errorf("stored status = %q, want paid", stored.Status)
		}

		totals, err := svc.GetTotals(ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "receivable", totals.Receivable, "0")
	})

	t.Run("already_paid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		debt := testutil.CreateTestDebt(t, db, models.DebtOwedToMe, "75")
		testutil.MarkTestDebtPaid(t, db, debt)

		_, err := svc.MarkPaid(ctx, debt.ID)
		testutil.AssertAppError(t, err, "DEBT_ALREADY_PAID")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)

		_, err := svc.MarkPaid(ctx, "0191e0a4-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
	})

	t.Run("second_call_conflicts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		debt := testutil.CreateTestDebt(t, db, models.DebtOwedByMe, "10")

		_, err := svc.MarkPaid(ctx, debt.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.MarkPaid(ctx, debt.ID)
		testutil.AssertAppError(t, err, "DEBT_ALREADY_PAID")
	})
}

func TestDeleteDebt(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_debt", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		debt := testutil.CreateTestDebt(t, db, models.DebtOwedByMe, "10")

		testutil.AssertNoError(t, svc.DeleteDebt(ctx, debt.ID))

		_, err := svc.GetDebtByID(ctx, debt.ID)
		testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)

		err := svc.DeleteDebt(ctx, "0191e0a4-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
	})
}

func TestGetTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewDebtService(db)

	testutil.CreateTestDebt(t, db, models.DebtOwedToMe, "100")
	testutil.CreateTestDebt(t, db, models.DebtOwedToMe, "25.50")
	testutil.CreateTestDebt(t, db, models.DebtOwedByMe, "60")
	paid := testutil.CreateTestDebt(t, db, models.DebtOwedByMe, "999")
	testutil.MarkTestDebtPaid(t, db, paid)

	totals, err := svc.GetTotals(context.Background())
	testutil.AssertNoError(t, err)

	testutil.AssertDecimal(t, "receivable", totals.Receivable, "125.50")
	testutil.AssertDecimal(t, "payable", totals.Payable, "60")
	if totals.OpenCount != 3 {
		t.Errorf("OpenCount = %d, want 3", totals.OpenCount)
	}
}
