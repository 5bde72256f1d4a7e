package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCompositeID(t *testing.T) {
	m := &Match{ID: "271488", T1: "Alpha", T2: "Beta"}
	if got := m.CompositeID(); got != "271488_Alpha_Beta" {
		t.Errorf("CompositeID() = %q, want %q", got, "271488_Alpha_Beta")
	}
	// 相同字段必然产出相同结果
	again := &Match{ID: "271488", T1: "Alpha", T2: "Beta"}
	if m.CompositeID() != again.CompositeID() {
		t.Error("CompositeID not deterministic for equal fields")
	}
	// 缺失字段退化为空段而非报错
	empty := &Match{}
	if got := empty.CompositeID(); got != "__" {
		t.Errorf("CompositeID() on empty match = %q, want %q", got, "__")
	}
}

func TestMatchJSONNullFields(t *testing.T) {
	m := &Match{URL: "http://example.com/matches/1", ID: "1", Game: GameDota2, Time: "Live"}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"t1_score":null`, `"t2_score":null`, `"stream":null`} {
		if !strings.Contains(s, want) {
			t.Errorf("marshaled match missing %s: %s", want, s)
		}
	}

	score := "2"
	m.T1Score = &score
	data, _ = json.Marshal(m)
	if !strings.Contains(string(data), `"t1_score":"2"`) {
		t.Errorf("set score not serialized as string: %s", data)
	}
}

func TestIsLive(t *testing.T) {
	if !(&Match{TimeSecs: 0}).IsLive() {
		t.Error("TimeSecs=0 should be live")
	}
	if (&Match{TimeSecs: 60}).IsLive() {
		t.Error("TimeSecs=60 should not be live")
	}
}

// 字段清单与结构体的JSON标签必须一一对应且同序
func TestMatchFieldsMatchStruct(t *testing.T) {
	data, err := json.Marshal(&Match{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var ordered map[string]json.RawMessage
	if err := json.Unmarshal(data, &ordered); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(MatchFields) != len(ordered) {
		t.Fatalf("MatchFields has %d entries, struct has %d json fields", len(MatchFields), len(ordered))
	}
	for _, f := range MatchFields {
		if _, ok := ordered[f.Name]; !ok {
			t.Errorf("MatchFields entry %q not present in struct json output", f.Name)
		}
	}
}
