package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func testFooter(now *time.Time) *Footer {
	f := NewFooter()
	f.now = func() time.Time { return *now }
	f.SetWidth(120)
	return f
}

func TestFooter_ShowsBindingsThenGlobals(t *testing.T) {
	now := time.Now()
	f := testFooter(&now)
	f.SetBindings([]KeyBinding{{Key: "a", Desc: "add event"}})

	view := ansi.Strip(f.View())
	add := strings.Index(view, "a: add event")
	quit := strings.Index(view, "q: quit")
	if add < 0 || quit < 0 {
		t.Fatalf("view = %q", view)
	}
	if add > quit {
		t.Error("panel bindings should come before global bindings")
	}
}

func TestFooter_FlashReplacesBindings(t *testing.T) {
	now := time.Now()
	f := testFooter(&now)

	f.SetFlash("Copied note to clipboard", FlashSuccess)
	view := ansi.Strip(f.View())
	if !strings.Contains(view, "Copied note to clipboard") || strings.Contains(view, "quit") {
		t.Errorf("view = %q", view)
	}
}

func TestFooter_FlashExpiry(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		cleared bool
	}{
		{"fresh", 0, false},
		{"just before", FlashDuration - time.Millisecond, false},
		{"at expiry", FlashDuration, true},
		{"long after", time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			f := testFooter(&now)
			f.SetFlash("Settings saved", FlashInfo)

			now = now.Add(tt.elapsed)
			if got := f.ClearIfExpired(); got != tt.cleared {
				t.Errorf("ClearIfExpired() = %v, want %v", got, tt.cleared)
			}
			if f.HasFlash() == tt.cleared {
				t.Errorf("HasFlash() = %v after clear=%v", f.HasFlash(), tt.cleared)
			}
		})
	}
}

func TestFooter_ClearWithoutFlash(t *testing.T) {
	now := time.Now()
	f := testFooter(&now)
	if f.ClearIfExpired() {
		t.Error("nothing to clear")
	}
}

func TestFooter_TruncatesToWidth(t *testing.T) {
	now := time.Now()
	f := testFooter(&now)
	f.SetWidth(30)
	f.SetFlash(strings.Repeat("long message ", 10), FlashError)

	if w := ansi.StringWidth(f.View()); w > 30 {
		t.Errorf("width = %d, want <= 30", w)
	}
}
