package util

import (
	"fmt"
	"reflect"
)

const summaryMaxLen = 100

// SummarizeObservation renders a short representation of an observation
// for error messages and logs, without assuming its concrete type.
func SummarizeObservation(obs interface{}) string {
	if obs == nil {
		return "nil"
	}
	var summary string
	switch o := obs.(type) {
	case fmt.Stringer:
		summary = o.String()
	case string:
		summary = o
	default:
		v := reflect.ValueOf(obs)
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			if v.Len() <= 5 {
				summary = fmt.Sprintf("%s(%d) %v", v.Kind(), v.Len(), obs)
			} else {
				summary = fmt.Sprintf("%s(%d) [%v...%v]", v.Kind(), v.Len(),
					v.Index(0).Interface(), v.Index(v.Len()-1).Interface())
			}
		case reflect.Map:
			summary = fmt.Sprintf("map(%d)", v.Len())
		default:
			summary = fmt.Sprintf("%T: %v", obs, obs)
		}
	}
	if len(summary) > summaryMaxLen {
		summary = summary[:summaryMaxLen-3] + "..."
	}
	return summary
}
