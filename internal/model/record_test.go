package model

import (
	"reflect"
	"testing"
	"time"
)

func TestRecord_CloneIsDeep(t *testing.T) {
	orig := Record{
		"title": "Clean Water",
		"ngo":   map[string]any{"name": "Water for All"},
		"tags":  []any{"health", "water"},
	}

	c := orig.Clone()
	c["ngo"].(map[string]any)["name"] = "changed"
	c["tags"].([]any)[0] = "changed"

	if orig["ngo"].(map[string]any)["name"] != "Water for All" {
		t.Errorf("nested map mutated through clone")
	}
	if orig["tags"].([]any)[0] != "health" {
		t.Errorf("nested slice mutated through clone")
	}
}

func TestRecord_MergeIsShallow(t *testing.T) {
	base := Record{"id": "1", "title": "a", "ngo": map[string]any{"name": "x", "verified": true}}
	merged := base.Merge(Record{"title": "b", "ngo": map[string]any{"name": "y"}})

	if merged["title"] != "b" {
		t.Errorf("title = %v, want b", merged["title"])
	}
	want := map[string]any{"name": "y"}
	if !reflect.DeepEqual(merged["ngo"], want) {
		t.Errorf("ngo = %v, want %v (nested objects are replaced, not merged)", merged["ngo"], want)
	}
	if base["title"] != "a" {
		t.Errorf("base mutated: title = %v", base["title"])
	}
}

func TestRecord_Matches(t *testing.T) {
	r := Record{"campaignId": "2", "status": "pending", "amount": 50.0}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter", Filter{}, true},
		{"match", Filter{"campaignId": "2"}, true},
		{"mismatch", Filter{"campaignId": "3"}, false},
		{"empty value ignored", Filter{"campaignId": "", "status": "pending"}, true},
		{"missing field", Filter{"userId": "1"}, false},
		{"numeric field", Filter{"amount": "50"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Matches(tt.filter); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestRecord_BoolFollowsTruthiness(t *testing.T) {
	r := Record{"t": true, "s": "yes", "z": 0.0, "n": nil, "empty": ""}
	if !r.Bool("t") || !r.Bool("s") {
		t.Error("expected truthy values to be true")
	}
	if r.Bool("z") || r.Bool("n") || r.Bool("empty") || r.Bool("absent") {
		t.Error("expected falsy values to be false")
	}
}

func TestRecord_Float(t *testing.T) {
	r := Record{"f": 12.5, "i": 3, "s": "7.25", "bad": "x"}
	if v, ok := r.Float("f"); !ok || v != 12.5 {
		t.Errorf("Float(f) = %v, %v", v, ok)
	}
	if v, ok := r.Float("i"); !ok || v != 3 {
		t.Errorf("Float(i) = %v, %v", v, ok)
	}
	if v, ok := r.Float("s"); !ok || v != 7.25 {
		t.Errorf("Float(s) = %v, %v", v, ok)
	}
	if _, ok := r.Float("bad"); ok {
		t.Error("Float(bad) should fail")
	}
}

func TestTimestamp_UsesISOMillis(t *testing.T) {
	ts := time.Date(2024, 3, 5, 10, 4, 2, 123456789, time.FixedZone("IST", 5*3600+1800))
	if got, want := Timestamp(ts), "2024-03-05T04:34:02.123Z"; got != want {
		t.Errorf("Timestamp = %q, want %q", got, want)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{ApplicationPending, ApplicationApproved, true},
		{ApplicationPending, ApplicationRejected, true},
		{ApplicationApproved, ApplicationApproved, true},
		{ApplicationApproved, ApplicationRejected, false},
		{ApplicationRejected, ApplicationPending, false},
		{ApplicationApproved, ApplicationPending, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPublicUser_StripsCredentials(t *testing.T) {
	u := Record{"id": "1", "email": "a@b.c", "password": "hash", "resetCode": "123456", "resetCodeExpiry": "x"}
	pub := PublicUser(u)
	for _, k := range PrivateUserFields {
		if pub.Has(k) {
			t.Errorf("PublicUser kept %q", k)
		}
	}
	if pub["email"] != "a@b.c" {
		t.Errorf("email = %v", pub["email"])
	}
	if !u.Has("password") {
		t.Error("PublicUser modified its input")
	}
}

func TestDefaultAvatar_EscapesName(t *testing.T) {
	got := DefaultAvatar("John Smith")
	want := "https://ui-avatars.com/api/?name=John+Smith&background=0ea5e9&color=fff"
	if got != want {
		t.Errorf("DefaultAvatar = %q, want %q", got, want)
	}
}
