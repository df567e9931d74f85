package segments

import "testing"

func TestProjectDoseTimes_WindowMidpoints(t *testing.T) {
	cases := []struct {
		id   ID
		want string
	}{
		{Morning, "09:00"}, // 06–12 -> 9
		{Day, "15:00"},     // 12–18 -> 15
		{Evening, "21:00"}, // 18–24 -> 21
		{Night, "03:00"},   // 00–06 -> 3
	}

	for _, tc := range cases {
		got := ProjectDoseTimes([]ID{tc.id})
		if len(got) != 1 || got[0] != tc.want {
			t.Fatalf("%s: expected [%s], got %v", tc.id, tc.want, got)
		}
	}
}

func TestProjectDoseTimes_OnePerSegmentInGivenOrder(t *testing.T) {
	got := ProjectDoseTimes([]ID{Morning, Evening})
	if len(got) != 2 || got[0] != "09:00" || got[1] != "21:00" {
		t.Fatalf("expected [09:00 21:00], got %v", got)
	}
}

func TestProjectDoseTimes_UnknownWindowFallback(t *testing.T) {
	got := ProjectDoseTimes([]ID{ID("dawn")})
	if len(got) != 1 || got[0] != "08:00" {
		t.Fatalf("expected fallback 08:00, got %v", got)
	}
}

func TestMidpointTime_ParsesHyphenAndEnDash(t *testing.T) {
	if midpointTime("06-12") != "09:00" {
		t.Fatalf("expected hyphen windows to parse")
	}
	if midpointTime("garbage") != "08:00" {
		t.Fatalf("expected fallback for unparseable window")
	}
}
