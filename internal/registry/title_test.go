package registry

import "testing"

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		src  string
		day  int
		want string
	}{
		{
			name: "plain header",
			src:  "// DAY 7: WIDGET SORTING\npackage puzzle\n",
			day:  7,
			want: "WIDGET SORTING",
		},
		{
			name: "header after banner",
			src:  "// ====================\n// DAY 5: CAFETERIA\n// ====================\n",
			day:  5,
			want: "CAFETERIA",
		},
		{
			name: "trailing whitespace trimmed",
			src:  "// DAY 3: LOBBY BATTERIES   \n",
			day:  3,
			want: "LOBBY BATTERIES",
		},
		{
			name: "no header falls back",
			src:  "package puzzle\n\nfunc solve() {}\n",
			day:  7,
			want: "Day 7",
		},
		{
			name: "lowercase day does not match",
			src:  "// day 7: not a real header\n",
			day:  7,
			want: "Day 7",
		},
		{
			name: "prose mentioning DAY without colon does not match",
			src:  "// DAY 7 has tricky input\n",
			day:  7,
			want: "Day 7",
		},
		{
			name: "first match wins",
			src:  "// DAY 2: FIRST TITLE\n// DAY 2: SECOND TITLE\n",
			day:  2,
			want: "FIRST TITLE",
		},
		{
			name: "empty source",
			src:  "",
			day:  12,
			want: "Day 12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTitle([]byte(tt.src), tt.day)
			if got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTitleDeterministic(t *testing.T) {
	src := []byte("// DAY 1: COMBINATION LOCK\n")
	first := ExtractTitle(src, 1)
	for i := 0; i < 10; i++ {
		if got := ExtractTitle(src, 1); got != first {
			t.Fatalf("ExtractTitle() not deterministic: %q then %q", first, got)
		}
	}
}
