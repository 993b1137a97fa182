package datastructure

import (
	"bytes"
	"encoding/json"
)

/*
OptionalSegment. Absent | Present(PathSegment).

The search result reports a partial first/last edge only when the route endpoint lies
inside an edge. Absence is its own state: a present segment is never empty, so "absent"
and "present but empty" cannot be confused.
*/
type OptionalSegment struct {
	seg     PathSegment
	present bool
}

func AbsentSegment() OptionalSegment {
	return OptionalSegment{}
}

func PresentSegment(seg PathSegment) OptionalSegment {
	return OptionalSegment{seg: seg, present: true}
}

func (o OptionalSegment) Get() (PathSegment, bool) {
	return o.seg, o.present
}

func (o OptionalSegment) IsPresent() bool {
	return o.present
}

// MarshalJSON. null when absent.
func (o OptionalSegment) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.seg)
}

func (o *OptionalSegment) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = AbsentSegment()
		return nil
	}
	var seg PathSegment
	if err := json.Unmarshal(data, &seg); err != nil {
		return err
	}
	*o = PresentSegment(seg)
	return nil
}
