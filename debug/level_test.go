package debug

import "testing"

func TestLevel_String(t *testing.T) {
	cases := []struct {
		in   Level
		want string
	}{
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{Level(42), "LOG"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Fatalf("Level(%d).String()=%q want %q", c.in, got, c.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"warn", "WARN", "Warn"} {
		v, ok := ParseLevel(s)
		if !ok || v != LevelWarn {
			t.Fatalf("ParseLevel(%q)=%v,%v", s, v, ok)
		}
	}
	if _, ok := ParseLevel("verbose"); ok {
		t.Fatalf("ParseLevel accepted unknown label")
	}
}

func TestLevel_Ordering(t *testing.T) {
	if !(LevelError < LevelWarn && LevelWarn < LevelInfo && LevelInfo < LevelDebug) {
		t.Fatalf("severity ordering broken")
	}
}
