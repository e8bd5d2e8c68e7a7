package debug

import (
	"testing"

	"github.com/zaolin/devconsole/console"
)

func TestStateShowNoticeOnce(t *testing.T) {
	s := &State{}
	rec := console.NewRecorder()

	if !s.ShowNotice(rec) {
		t.Fatal("first ShowNotice should print")
	}
	for i := 0; i < 10; i++ {
		if s.ShowNotice(rec) {
			t.Fatal("ShowNotice printed twice")
		}
	}
	if len(rec.Loose()) != 1 {
		t.Fatalf("notice lines = %d, want 1", len(rec.Loose()))
	}

	s.Reset()
	if s.NoticeShown() {
		t.Fatal("Reset should clear the flag")
	}
	s.ShowNotice(rec)
	if len(rec.Loose()) != 2 {
		t.Fatal("notice should print again after Reset")
	}
}
