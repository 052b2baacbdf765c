package mapreduce

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/fake-news-detector/pkg/analytics"
)

func TestMapReduce(t *testing.T) {
	a := &analytics.Analytics{}
	docs := []string{
		"Senate passes budget. Budget vote closes.",
		"Budget talks continue in the senate",
	}

	var intermediate []map[string]int
	for _, d := range docs {
		intermediate = append(intermediate, Map(d, a))
	}
	got := Reduce(intermediate)

	if got["budget"] != 3 {
		t.Errorf("budget = %d, want 3", got["budget"])
	}
	if got["senate"] != 2 {
		t.Errorf("senate = %d, want 2", got["senate"])
	}
	if _, ok := got["the"]; ok {
		t.Error("stopword 'the' was counted")
	}
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{
		"budget": 3, "senate": 2, "vote": 2, "ok": 5, `"quoted`: 9, "talks": 1,
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "top three with alphabetical ties", n: 3, want: []string{"budget:3", "senate:2", "vote:2"}},
		{name: "n larger than input", n: 10, want: []string{"budget:3", "senate:2", "vote:2", "talks:1"}},
		{name: "zero", n: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopKeywords(counts, tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopKeywords() = %v, want %v", got, tt.want)
			}
		})
	}
}
