package hafas

import (
	"testing"
	"time"

	"github.com/travigo/hafasboard/pkg/transforms"
	"github.com/travigo/hafasboard/pkg/util"
)

func TestProductSelection(t *testing.T) {
	n := newTestNormalizer(t, testSettings())

	event := parse(t, n, `{
		"JourneyDetailRef":{"ref":"1|23|0|80|1052024"},"date":"2024-05-01","time":"10:00:00",
		"Product":[
			{"name":"","catCode":"8"},
			{"name":"Bus 1 42","catCode":""},
			{"name":"Bus M 41","catCode":8,"operatorCode":"BVB","operatorInfo":{"name":"Berliner Verkehrsbetriebe"},
			 "icon":{"res":"prod_bus","backgroundColor":{"hex":"#A5027D"},"foregroundColor":{"hex":"#FFFFFF"}}},
			{"name":"Bus 100","catCode":"8"}
		]
	}`)

	if event.ID != "1|23|0|80|1052024" {
		t.Errorf("ID = %q", event.ID)
	}
	if event.Symbol != "M41" {
		t.Errorf("Symbol = %q, want M41", event.Symbol)
	}
	if event.Category != "8" {
		t.Errorf("Category = %q, want 8", event.Category)
	}
	if event.CategoryIcon != "bus" {
		t.Errorf("CategoryIcon = %q, want bus", event.CategoryIcon)
	}
	if event.Operator == nil || *event.Operator != "BVB" {
		t.Errorf("Operator = %v", event.Operator)
	}
	if event.OperatorName == nil || *event.OperatorName != "Berliner Verkehrsbetriebe" {
		t.Errorf("OperatorName = %v", event.OperatorName)
	}
	if event.Icon == nil || event.Icon.Resource != "prod_bus" {
		t.Errorf("Icon = %+v", event.Icon)
	}
	if event.Cancelled {
		t.Error("Cancelled should default to false")
	}
	if event.Duplicate || event.Follow != nil {
		t.Error("Duplicate and Follow should start unset")
	}
}

func TestProductSelection_SingleObject(t *testing.T) {
	n := newTestNormalizer(t, testSettings())

	event := parse(t, n, `{
		"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00","cancelled":true,
		"Product":{"name":"RE 1","catCode":"3","operatorCode":"DBR"}
	}`)

	if event.Symbol != "RE1" || event.Category != "3" {
		t.Errorf("Symbol/Category = %q/%q", event.Symbol, event.Category)
	}
	if event.CategoryIcon != "" {
		t.Errorf("CategoryIcon = %q, want empty for an unmapped category", event.CategoryIcon)
	}
	if !event.Cancelled {
		t.Error("Cancelled = false")
	}
}

func TestProductSelection_NoQualifyingProduct(t *testing.T) {
	n := newTestNormalizer(t, testSettings())

	for _, record := range []string{
		`{"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00"}`,
		`{"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00","Product":[{"name":"Bus 1"},{"catCode":"8"}]}`,
	} {
		event := parse(t, n, record)

		if event.Symbol != "" || event.Category != NoCategory {
			t.Errorf("Symbol/Category = %q/%q, want empty/%s", event.Symbol, event.Category, NoCategory)
		}
		if event.Operator != nil || event.OperatorName != nil || event.Icon != nil {
			t.Error("operator, operator name and icon should be nil")
		}
		if event.CategoryIcon != "" {
			t.Errorf("CategoryIcon = %q", event.CategoryIcon)
		}
	}
}

func TestNotes(t *testing.T) {
	n := newTestNormalizer(t, testSettings())

	event := parse(t, n, `{
		"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00",
		"Notes":{"Note":[
			{"type":"A","value":"Bicycles allowed"},
			{"type":"r","value":"Replacement service"},
			{"type":"I","value":"internal"},
			{"type":"P","value":"Staff shortage"},
			{"type":"D","value":"Signal failure"}
		]}
	}`)

	want := []Note{
		{Type: "R", Text: "Replacement service"},
		{Type: "P", Text: "Staff shortage"},
		{Type: "D", Text: "Signal failure"},
	}

	got := event.Notes()
	if len(got) != len(want) {
		t.Fatalf("Notes() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Notes()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	bare := parse(t, n, `{"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00"}`)
	if notes := bare.Notes(); notes == nil || len(notes) != 0 {
		t.Errorf("Notes() without notes = %#v, want empty", notes)
	}
}

func TestPlatform(t *testing.T) {
	n := newTestNormalizer(t, testSettings())

	const base = `"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00"`

	tests := []struct {
		name   string
		fields string
		want   *Platform
	}{
		{"none", ``, nil},
		{"planned", `,"platform":{"type":"PL","text":"3"}`, &Platform{Type: "PL", Value: "3"}},
		{"realtime wins", `,"platform":{"type":"PL","text":"3"},"rtPlatform":{"type":"PL","text":"4"}`, &Platform{Type: "PL", Value: "4"}},
		{"hidden realtime", `,"platform":{"type":"PL","text":"3"},"rtPlatform":{"text":"4","hidden":true}`, nil},
		{"hidden planned", `,"platform":{"text":"3","hidden":true},"track":"7"`, nil},
		{"defaults", `,"platform":{}`, &Platform{Type: "X", Value: ""}},
		{"track", `,"track":"7"`, &Platform{Type: "PL", Value: "7"}},
		{"platform over track", `,"platform":{"type":"ST","text":"B"},"track":"7"`, &Platform{Type: "ST", Value: "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parse(t, n, "{"+base+tt.fields+"}").Platform()

			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Platform() = %+v, want %+v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("Platform() = %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestLineColour(t *testing.T) {
	n := newTestNormalizer(t, testSettings())

	white := util.RGB{R: 255, G: 255, B: 255}

	tests := []struct {
		name    string
		product string
		want    transforms.LineColour
	}{
		{
			"operator and symbol",
			`{"name":"RE 1","catCode":"3","operatorCode":"DBR"}`,
			transforms.LineColour{Background: util.RGB{R: 255}, Font: white},
		},
		{
			"symbol",
			`{"name":"RE 1","catCode":"3","operatorCode":"ODEG"}`,
			transforms.LineColour{Background: util.RGB{G: 255}, Font: util.RGB{}},
		},
		{
			"operator",
			`{"name":"RE 7","catCode":"3","operatorCode":"DBR"}`,
			transforms.LineColour{Background: util.RGB{B: 255}, Font: white},
		},
		{
			"icon",
			`{"name":"RB 23","catCode":"3","operatorCode":"ODEG","icon":{"backgroundColor":{"hex":"#123456"},"foregroundColor":{"hex":"#FEDCBA"}}}`,
			transforms.LineColour{Background: util.RGB{R: 0x12, G: 0x34, B: 0x56}, Font: util.RGB{R: 0xFE, G: 0xDC, B: 0xBA}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := parse(t, n, `{"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00","Product":[`+tt.product+`]}`)

			if got := event.LineColour(); got != tt.want {
				t.Errorf("LineColour() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLineColour_HashedFallback(t *testing.T) {
	n := newTestNormalizer(t, testSettings())

	// md5("abc") = 900150..., value 144/255 keeps a light font
	event := parse(t, n, `{"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00","name":"abc"}`)
	want := transforms.LineColour{
		Background: util.RGB{R: 0x90, G: 0x01, B: 0x50},
		Font:       util.RGB{R: 1, G: 1, B: 1},
	}
	if got := event.LineColour(); got != want {
		t.Errorf("LineColour() = %+v, want %+v", got, want)
	}

	// md5("") = d41d8c..., value 212/255 switches to a dark font
	unnamed := parse(t, n, `{"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00"}`)
	want = transforms.LineColour{
		Background: util.RGB{R: 0xD4, G: 0x1D, B: 0x8C},
		Font:       util.RGB{R: 0, G: 0, B: 0},
	}
	if got := unnamed.LineColour(); got != want {
		t.Errorf("LineColour() = %+v, want %+v", got, want)
	}

	// an icon without usable colours also falls through to the hash
	broken := parse(t, n, `{"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00","name":"abc",
		"Product":[{"name":"X 9","catCode":"9","icon":{"backgroundColor":{"hex":"#12"}}}]}`)
	if got := broken.LineColour(); got != hashedLineColour("abc") {
		t.Errorf("LineColour() = %+v, want hashed colour", got)
	}
}

func TestSortByRealtime(t *testing.T) {
	n := newTestNormalizer(t, testSettings())

	record := func(id string, rtTime string) string {
		return `{"JourneyDetailRef":{"ref":"` + id + `"},"date":"2024-05-01","time":"10:00:00","rtDate":"2024-05-01","rtTime":"` + rtTime + `"}`
	}

	events := []*Event{
		parse(t, n, record("a", "10:05:00")),
		parse(t, n, record("b", "10:02:00")),
		parse(t, n, record("c", "10:10:00")),
	}

	SortByRealtime(events)

	for i, want := range []string{"b", "a", "c"} {
		if events[i].ID != want {
			t.Errorf("events[%d] = %s, want %s", i, events[i].ID, want)
		}
	}

	if !events[0].Less(events[1]) || events[1].Less(events[0]) {
		t.Error("Less() disagrees with sorted order")
	}
	if events[0].Compare(events[0]) != 0 {
		t.Error("Compare() with itself should be 0")
	}
	if got := events[0].Realtime.Sub(events[2].Realtime); got != -8*time.Minute {
		t.Errorf("spread = %v", got)
	}
}

func TestCompare_NilPanics(t *testing.T) {
	n := newTestNormalizer(t, testSettings())
	event := parse(t, n, `{"JourneyDetailRef":{"ref":"a"},"date":"2024-05-01","time":"10:00:00"}`)

	defer func() {
		if recover() == nil {
			t.Error("Compare(nil) should panic")
		}
	}()

	event.Compare(nil)
}
