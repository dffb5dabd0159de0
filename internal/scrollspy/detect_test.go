package scrollspy

import "testing"

type regions map[SectionID]Region

func (r regions) Resolve(id SectionID) (Region, bool) {
	reg, ok := r[id]
	return reg, ok
}

func TestDetect(t *testing.T) {
	layout := pageLayout()
	sections := pageSections()

	tests := []struct {
		name string
		pos  float64
		want SectionID
	}{
		{"top of first", 0, "about"},
		{"inside first", 100, "about"},
		{"boundary belongs to next", 500, "projects"},
		{"inside second", 550, "projects"},
		{"inside third", 1199, "skills"},
		{"inside last", 1599, "contact"},
		{"end of last is exclusive", 1600, None},
		{"past last", 2100, None},
		{"before first", -1, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(sections, layout, tt.pos); got != tt.want {
				t.Errorf("Detect(%v) = %q, want %q", tt.pos, got, tt.want)
			}
		})
	}
}

func TestDetectSkipsUnresolved(t *testing.T) {
	layout := regions{"projects": {Top: 500, Height: 400}}
	sections := []SectionID{"about", "projects", "skills"}

	if got := Detect(sections, layout, 600); got != "projects" {
		t.Fatalf("Detect = %q, want projects", got)
	}
	if got := Detect(sections, layout, 100); got != None {
		t.Fatalf("Detect = %q, want None", got)
	}
}

func TestDetectOverlapFirstListedWins(t *testing.T) {
	layout := regions{
		"a": {Top: 0, Height: 600},
		"b": {Top: 400, Height: 600},
	}

	if got := Detect([]SectionID{"a", "b"}, layout, 500); got != "a" {
		t.Fatalf("Detect = %q, want a", got)
	}
	if got := Detect([]SectionID{"b", "a"}, layout, 500); got != "b" {
		t.Fatalf("Detect = %q, want b", got)
	}
}

func TestDetectEmpty(t *testing.T) {
	if got := Detect(nil, pageLayout(), 100); got != None {
		t.Fatalf("Detect(nil) = %q, want None", got)
	}
	if got := Detect(pageSections(), nil, 100); got != None {
		t.Fatalf("Detect with nil resolver = %q, want None", got)
	}
}

func TestResolverFunc(t *testing.T) {
	calls := 0
	res := ResolverFunc(func(id SectionID) (Region, bool) {
		calls++
		return Region{Top: 0, Height: 10}, id == "only"
	})

	if got := Detect([]SectionID{"other", "only"}, res, 5); got != "only" {
		t.Fatalf("Detect = %q, want only", got)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}
