package model

import (
	"encoding/json"
	"testing"
)

func TestPayloadStringCompacts(t *testing.T) {
	var p Payload
	if err := json.Unmarshal([]byte("{\n  \"status\": \"ok\"\n}"), &p); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}

	if got := p.String(); got != `{"status":"ok"}` {
		t.Errorf("String() = %q, want %q", got, `{"status":"ok"}`)
	}
}

func TestPayloadStringEmpty(t *testing.T) {
	var p Payload
	if got := p.String(); got != "null" {
		t.Errorf("String() = %q, want null", got)
	}
}

func TestPayloadField(t *testing.T) {
	p := Payload(`{"sent":true,"message":"queued"}`)

	v, ok := p.Field("sent")
	if !ok {
		t.Fatal("Field(sent) not found")
	}
	if v != true {
		t.Errorf("Field(sent) = %v, want true", v)
	}

	if _, ok := p.Field("missing"); ok {
		t.Error("Field(missing) reported present")
	}
}

func TestPayloadFieldNonObject(t *testing.T) {
	p := Payload(`[1,2,3]`)
	if _, ok := p.Field("0"); ok {
		t.Error("Field() on array should not be found")
	}
}

func TestPayloadMarshalInsideStruct(t *testing.T) {
	out, err := json.Marshal(struct {
		Data Payload `json:"data"`
	}{Data: Payload(`{"a":1}`)})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(out) != `{"data":{"a":1}}` {
		t.Errorf("Marshal() = %s", out)
	}
}

func TestMacroGoalsRequestEmpty(t *testing.T) {
	if !(MacroGoalsRequest{}).Empty() {
		t.Error("zero request should be empty")
	}

	cal := 2000
	req := MacroGoalsRequest{TotalCalories: &cal}
	if req.Empty() {
		t.Error("request with calories should not be empty")
	}
	if req.Complete() {
		t.Error("request with only calories should not be complete")
	}
}
