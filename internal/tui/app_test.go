package tui

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/theirongolddev/rockpile/internal/console"
	"github.com/theirongolddev/rockpile/internal/model"
	"github.com/theirongolddev/rockpile/internal/settle"
	"github.com/theirongolddev/rockpile/internal/store"
)

type stubHistory struct {
	recorded int
	cycles   []store.CycleSummary
}

func (h *stubHistory) Record(r settle.Report, at time.Time) (string, error) {
	h.recorded++
	h.cycles = append([]store.CycleSummary{{ID: "c", RanAt: at, Closing: r.Closing}}, h.cycles...)
	return "c", nil
}

func (h *stubHistory) Recent(limit int) ([]store.CycleSummary, error) {
	return h.cycles, nil
}

func newTestApp(t *testing.T) (App, *console.Session) {
	t.Helper()
	s := console.NewSession(filepath.Join(t.TempDir(), "fund.json"), nil, io.Discard)
	s.Fund = model.Fund{
		Balance:  100,
		Members:  []model.Member{{Name: "Alice", MonthlyIncome: 100000}, {Name: "Bob", MonthlyIncome: 75000}},
		Expenses: []model.Expense{{Description: "Rent", Amount: 150000}},
	}
	a := NewApp(s, nil)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App), s
}

func press(t *testing.T, a App, k string) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return m.(App), cmd
}

func TestCycleKeyRunsCycle(t *testing.T) {
	a, s := newTestApp(t)

	a, _ = press(t, a, "c")

	// 100 + 175000 - 150000 = 25100, split two ways.
	if s.Fund.Balance != 0 {
		t.Errorf("Balance = %d, want 0", s.Fund.Balance)
	}
	if a.lastReport == nil || a.lastReport.Distribution.Share != 12550 {
		t.Errorf("lastReport = %+v, want share 12550", a.lastReport)
	}
	if !a.dirty {
		t.Error("fund should be marked dirty after a cycle")
	}
}

func TestQuitAsksWhenDirty(t *testing.T) {
	a, _ := newTestApp(t)
	a, _ = press(t, a, "c")

	a, cmd := press(t, a, "q")
	if cmd != nil {
		t.Fatal("first q with unsaved changes should not quit")
	}
	if !strings.Contains(a.message, "Unsaved changes") {
		t.Errorf("message = %q", a.message)
	}

	_, cmd = press(t, a, "q")
	if cmd == nil {
		t.Fatal("second q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("second q should return tea.Quit")
	}
}

func TestSaveKeyWritesFile(t *testing.T) {
	a, s := newTestApp(t)
	a, _ = press(t, a, "c")
	a, _ = press(t, a, "s")

	if a.dirty {
		t.Error("fund should be clean after save")
	}
	if a.message != "Fund saved to file successfully!" {
		t.Errorf("message = %q", a.message)
	}
	got, err := store.LoadFund(s.Path)
	if err != nil {
		t.Fatalf("LoadFund: %v", err)
	}
	if len(got.Members) != 2 {
		t.Errorf("saved members = %d, want 2", len(got.Members))
	}
}

func TestLoadKeyFailureKeepsFund(t *testing.T) {
	a, s := newTestApp(t)
	if err := os.WriteFile(s.Path, []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, _ = press(t, a, "l")

	if a.message != "Failed to load the fund from file." {
		t.Errorf("message = %q", a.message)
	}
	if s.Fund.Balance != 100 || len(s.Fund.Members) != 2 {
		t.Errorf("fund changed after failed load: %+v", s.Fund)
	}
}

func TestTabKeys(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(t, a, "h")
	if a.activeTab != tabHistory {
		t.Errorf("activeTab = %d, want history", a.activeTab)
	}
	a, _ = press(t, a, "m")
	if a.activeTab != tabMembers {
		t.Errorf("activeTab = %d, want members", a.activeTab)
	}
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.(App).activeTab != tabExpenses {
		t.Errorf("activeTab after right = %d, want expenses", m.(App).activeTab)
	}
}

func TestCycleRefreshesHistory(t *testing.T) {
	h := &stubHistory{}
	s := console.NewSession(filepath.Join(t.TempDir(), "fund.json"), nil, io.Discard)
	s.History = h
	a := NewApp(s, h)

	a, cmd := press(t, a, "c")
	if h.recorded != 1 {
		t.Fatalf("recorded = %d, want 1", h.recorded)
	}
	if cmd == nil {
		t.Fatal("cycle should schedule a history refresh")
	}
	m, _ := a.Update(cmd())
	if got := len(m.(App).cycles); got != 1 {
		t.Errorf("cycles = %d, want 1", got)
	}
}

func TestHistoryLoadError(t *testing.T) {
	a, _ := newTestApp(t)
	a.history = &stubHistory{}
	m, _ := a.Update(HistoryLoadedMsg{Err: errors.New("locked")})
	a = m.(App)
	a.activeTab = tabHistory

	if !strings.Contains(a.View(), "Could not read history: locked") {
		t.Error("history tab should show the load error")
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a, _ := newTestApp(t)
	for _, tab := range []int{tabOverview, tabMembers, tabExpenses, tabHistory} {
		a.activeTab = tab
		if v := a.View(); v == "" {
			t.Errorf("tab %d rendered empty", tab)
		}
	}

	a.activeTab = tabMembers
	if !strings.Contains(a.View(), "Alice") {
		t.Error("members tab should list Alice")
	}
}
