package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/rockpile/internal/model"
	"github.com/theirongolddev/rockpile/internal/money"
	"github.com/theirongolddev/rockpile/internal/settle"
)

func moneyCents(v int64) money.Cents { return money.Cents(v) }

func openHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func rentReport(t *testing.T) settle.Report {
	t.Helper()
	f := model.NewFund()
	_, _ = f.AddMember("A", 100000)
	_, _ = f.AddMember("B", 75000)
	_, _ = f.AddExpense("Rent", 150000)
	_, _ = f.AddExpense("Boat", 900000)
	return settle.RunMonthlyCycle(&f)
}

func TestHistoryRecordAndRecent(t *testing.T) {
	h := openHistory(t)
	r := rentReport(t)
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	id, err := h.Record(r, at)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	recent, err := h.Recent(5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("len(Recent) = %d, want 1", len(recent))
	}
	got := recent[0]
	if got.ID != id {
		t.Errorf("ID = %q, want %q", got.ID, id)
	}
	if !got.RanAt.Equal(at) {
		t.Errorf("RanAt = %v, want %v", got.RanAt, at)
	}
	if got.TotalIncome != 175000 || got.TotalPaid != 150000 {
		t.Errorf("income/paid = %d/%d, want 175000/150000", got.TotalIncome, got.TotalPaid)
	}
	if got.SkippedCount != 1 {
		t.Errorf("SkippedCount = %d, want 1", got.SkippedCount)
	}
	if got.Share != 12500 || got.MemberCount != 2 || got.Closing != 0 {
		t.Errorf("share/members/closing = %d/%d/%d, want 12500/2/0", got.Share, got.MemberCount, got.Closing)
	}
}

func TestHistoryLinesKeepOrder(t *testing.T) {
	h := openHistory(t)
	r := rentReport(t)

	id, err := h.Record(r, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	lines, err := h.Lines(id)
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}

	want := r.Lines()
	if len(lines) != len(want) {
		t.Fatalf("len(lines) = %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i].Seq != i || lines[i].Text != want[i].Text || lines[i].Kind != want[i].Kind {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestHistoryRecentNewestFirst(t *testing.T) {
	h := openHistory(t)
	r := rentReport(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := h.Record(r, base.AddDate(0, i, 0))
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	recent, err := h.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].ID != ids[2] || recent[1].ID != ids[1] {
		t.Fatalf("Recent(2) = %+v, want newest two", recent)
	}

	latest, err := h.Latest()
	if err != nil || latest.ID != ids[2] {
		t.Fatalf("Latest() = %+v, %v, want %s", latest, err, ids[2])
	}

	n, err := h.Count()
	if err != nil || n != 3 {
		t.Fatalf("Count() = %d, %v, want 3", n, err)
	}
}

func TestHistoryGetByPrefix(t *testing.T) {
	h := openHistory(t)
	id, err := h.Record(rentReport(t), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	got, err := h.Get(id[:8])
	if err != nil || got.ID != id {
		t.Fatalf("Get(prefix) = %+v, %v, want %s", got, err, id)
	}
	if _, err := h.Get("zzzz"); !errors.Is(err, ErrCycleNotFound) {
		t.Errorf("Get(unknown) err = %v, want ErrCycleNotFound", err)
	}

	if _, err := h.Record(rentReport(t), time.Now()); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Get(""); !errors.Is(err, ErrAmbiguousCycle) {
		t.Errorf("Get(\"\") err = %v, want ErrAmbiguousCycle", err)
	}
}

func TestHistoryGetTreatsWildcardsLiterally(t *testing.T) {
	h := openHistory(t)
	if _, err := h.Record(rentReport(t), time.Now()); err != nil {
		t.Fatal(err)
	}

	for _, prefix := range []string{"%", "_", "________"} {
		if _, err := h.Get(prefix); !errors.Is(err, ErrCycleNotFound) {
			t.Errorf("Get(%q) err = %v, want ErrCycleNotFound", prefix, err)
		}
	}
}

func TestHistoryRecentOrdersSubsecondTimes(t *testing.T) {
	h := openHistory(t)
	r := rentReport(t)
	whole := time.Date(2026, 5, 1, 12, 0, 5, 0, time.UTC)
	half := whole.Add(500 * time.Millisecond)

	// Record the later cycle first so insertion order cannot decide.
	laterID, err := h.Record(r, half)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Record(r, whole); err != nil {
		t.Fatal(err)
	}

	latest, err := h.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != laterID {
		t.Errorf("Latest().ID = %s, want %s (ran at %v)", latest.ID, laterID, half)
	}
	if !latest.RanAt.Equal(half) {
		t.Errorf("Latest().RanAt = %v, want %v", latest.RanAt, half)
	}
}

func TestHistoryDeleteCascades(t *testing.T) {
	h := openHistory(t)
	id, err := h.Record(rentReport(t), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if err := h.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	lines, err := h.Lines(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Errorf("len(lines) after delete = %d, want 0", len(lines))
	}
	if err := h.Delete(id); !errors.Is(err, ErrCycleNotFound) {
		t.Errorf("second Delete err = %v, want ErrCycleNotFound", err)
	}
}

func TestHistoryLatestEmpty(t *testing.T) {
	h := openHistory(t)
	if _, err := h.Latest(); !errors.Is(err, ErrCycleNotFound) {
		t.Fatalf("Latest() err = %v, want ErrCycleNotFound", err)
	}
}

func TestOpenHistoryTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	h1, err := OpenHistory(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h1.Record(rentReport(t), time.Now()); err != nil {
		t.Fatal(err)
	}
	_ = h1.Close()

	h2, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer h2.Close()
	if n, _ := h2.Count(); n != 1 {
		t.Errorf("Count after reopen = %d, want 1", n)
	}
}
