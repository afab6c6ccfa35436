package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// TimeLayout matches JavaScript's Date.toISOString output.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

type Kind string

const (
	KindUser                 Kind = "users"
	KindCampaign             Kind = "campaigns"
	KindDonation             Kind = "donations"
	KindVolunteer            Kind = "volunteers"
	KindVolunteerApplication Kind = "volunteerApplications"
	KindEquipment            Kind = "equipment"
)

// Kinds lists every record kind the store manages.
var Kinds = []Kind{
	KindUser,
	KindCampaign,
	KindDonation,
	KindVolunteer,
	KindVolunteerApplication,
	KindEquipment,
}

// Label is the singular name used in client-facing messages.
func (k Kind) Label() string {
	switch k {
	case KindUser:
		return "User"
	case KindCampaign:
		return "Campaign"
	case KindDonation:
		return "Donation"
	case KindVolunteer:
		return "Volunteer"
	case KindVolunteerApplication:
		return "Application"
	case KindEquipment:
		return "Equipment"
	}
	return string(k)
}

// Record is a stored entity. Apart from id/createdAt/updatedAt/status the
// fields are whatever the client sent, so nested objects and arrays survive.
type Record map[string]any

// Filter selects records whose fields equal the given values. Empty values are ignored.
type Filter map[string]string

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func (r Record) ID() string {
	return r.String("id")
}

func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Has reports whether key is present, even with a null value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Bool follows JavaScript truthiness for the value types JSON can carry.
func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	}
	return true
}

// Float reads a numeric field. Numeric strings are accepted.
func (r Record) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

// Clone deep-copies maps and slices so callers never share state with the store.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

// Merge returns a shallow merge of updates over r. r is not modified.
func (r Record) Merge(updates Record) Record {
	out := r.Clone()
	if out == nil {
		out = Record{}
	}
	for k, v := range updates {
		out[k] = cloneValue(v)
	}
	return out
}

// Without returns a copy with the given keys removed.
func (r Record) Without(keys ...string) Record {
	out := r.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func (r Record) Matches(f Filter) bool {
	for field, want := range f {
		if want == "" {
			continue
		}
		v, ok := r[field]
		if !ok || v == nil {
			return false
		}
		if s, isStr := v.(string); isStr {
			if s != want {
				return false
			}
			continue
		}
		if fmt.Sprint(v) != want {
			return false
		}
	}
	return true
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Record:
		return t.Clone()
	case map[string]any:
		return map[string]any(Record(t).Clone())
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	}
	return v
}
