package dashboard

import "testing"

func TestParseSelector(t *testing.T) {
	for _, raw := range []string{"today", "yesterday", "last_week", "last_month", "last_6_months", "custom"} {
		sel, err := ParseSelector(raw)
		if err != nil {
			t.Errorf("ParseSelector(%q): %v", raw, err)
		}
		if string(sel) != raw {
			t.Errorf("ParseSelector(%q) = %q", raw, sel)
		}
	}

	if _, err := ParseSelector("this_week"); err == nil {
		t.Error("expected error for unknown selector")
	}
	if Selector("today").IsValid() != true {
		t.Error("today should be valid")
	}
	if Selector("").IsValid() {
		t.Error("empty selector should be invalid")
	}
}
