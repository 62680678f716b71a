package classify

import (
	"testing"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

func TestDefaultPolicy_BoundaryGrid(t *testing.T) {
	p := Default()

	cases := []struct {
		status int
		method string
		want   domain.Classification
	}{
		{199, "GET", domain.Down},
		{200, "GET", domain.Operational},
		{299, "GET", domain.Operational},
		{300, "GET", domain.Operational},
		{303, "GET", domain.Operational},
		{304, "GET", domain.Down},
		{400, "GET", domain.Operational},
		{401, "GET", domain.Operational},
		{403, "GET", domain.Operational},
		{404, "GET", domain.Down},
		{405, "GET", domain.Operational},
		{406, "GET", domain.Down},
		{499, "GET", domain.Down},
		{500, "GET", domain.Down},
		{503, "GET", domain.Down},
		{0, "GET", domain.Down},

		{199, "POST", domain.Down},
		{200, "POST", domain.Operational},
		{299, "POST", domain.Operational},
		{300, "POST", domain.Operational},
		{303, "POST", domain.Operational},
		{304, "POST", domain.Down},
		{400, "POST", domain.Operational},
		{401, "POST", domain.Operational},
		{403, "POST", domain.Operational},
		{404, "POST", domain.Operational}, // write route may want a resource ID
		{405, "POST", domain.Operational},
		{406, "POST", domain.Down},
		{499, "POST", domain.Down},
		{500, "POST", domain.Down},
		{503, "POST", domain.Down},
		{0, "POST", domain.Down},
	}

	for _, tc := range cases {
		if got := p.Classify(tc.status, tc.method); got != tc.want {
			t.Errorf("Classify(%d, %s) = %s, want %s", tc.status, tc.method, got, tc.want)
		}
	}
}

func TestClassify_MethodGroups(t *testing.T) {
	p := Default()

	// HEAD and empty method follow the read table
	if got := p.Classify(404, "HEAD"); got != domain.Down {
		t.Fatalf("404 HEAD = %s, want down", got)
	}
	if got := p.Classify(404, ""); got != domain.Down {
		t.Fatalf("404 empty method = %s, want down", got)
	}
	// lower-case methods are normalized
	if got := p.Classify(404, "get"); got != domain.Down {
		t.Fatalf("404 get = %s, want down", got)
	}
	// remaining mutating methods follow the write table
	for _, m := range []string{"PUT", "PATCH", "DELETE"} {
		if got := p.Classify(404, m); got != domain.Operational {
			t.Fatalf("404 %s = %s, want operational", m, got)
		}
	}
}

func TestClassify_ConfiguredOverride(t *testing.T) {
	ranges, err := ParseRanges([]string{"200-299", "404"})
	if err != nil {
		t.Fatalf("ParseRanges: %v", err)
	}
	p := Default()
	p.ReadOperational = ranges

	if got := p.Classify(404, "GET"); got != domain.Operational {
		t.Fatalf("overridden 404 GET = %s, want operational", got)
	}
	if got := p.Classify(301, "GET"); got != domain.Down {
		t.Fatalf("overridden 301 GET = %s, want down", got)
	}
}

func TestParseRanges_Rejects(t *testing.T) {
	for _, bad := range []string{"abc", "200-", "-299", "300-200", "0", "200-600"} {
		if _, err := ParseRanges([]string{bad}); err == nil {
			t.Errorf("ParseRanges(%q) accepted, want error", bad)
		}
	}
}

func TestParseRanges_SingleAndSpan(t *testing.T) {
	got, err := ParseRanges([]string{" 404 ", "200-299"})
	if err != nil {
		t.Fatalf("ParseRanges: %v", err)
	}
	if len(got) != 2 || got[0] != (StatusRange{404, 404}) || got[1] != (StatusRange{200, 299}) {
		t.Fatalf("unexpected ranges: %+v", got)
	}
}
