package api

import (
	"alcyxob/coach-studio/internal/builder"
	"alcyxob/coach-studio/internal/domain"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Node kinds a patch request can name.
const (
	patchExercise = "exercise"
	patchSet      = "set"
	patchSegment  = "segment"
	patchInterval = "interval"
)

// NodePatchRequest edits one node of the draft. Fields maps field names to new
// values; null clears a field. Numbers may be sent as JSON numbers or as the raw
// text of an input box, and text that is not a number clears the field.
type NodePatchRequest struct {
	Kind   string         `json:"kind" binding:"required,oneof=exercise set segment interval"`
	Fields map[string]any `json:"fields" binding:"required"`
}

func unknownField(kind, name string) error {
	return fmt.Errorf("unknown %s field %q", kind, name)
}

func parseNodePatch(req NodePatchRequest) (builder.NodePatch, error) {
	switch req.Kind {
	case patchExercise:
		var p builder.ExercisePatch
		for name, v := range req.Fields {
			switch name {
			case "name":
				p.Name = textChange(v)
			case "muscleGroup":
				p.MuscleGroup = textChange(v)
			case "description":
				p.Description = textChange(v)
			default:
				return nil, unknownField(req.Kind, name)
			}
		}
		return p, nil

	case patchSet:
		var p builder.SetPatch
		for name, v := range req.Fields {
			switch name {
			case "reps":
				p.Reps = intChange(v)
			case "weight":
				p.Weight = floatChange(v)
			case "restPeriod":
				p.RestPeriod = floatChange(v)
			case "completed":
				p.Completed = boolChange(v)
			case "notes":
				p.Notes = textChange(v)
			default:
				return nil, unknownField(req.Kind, name)
			}
		}
		return p, nil

	case patchSegment:
		var p builder.SegmentPatch
		for name, v := range req.Fields {
			switch name {
			case "name":
				p.Name = textChange(v)
			case "duration":
				p.Duration = floatChange(v)
			case "distance":
				p.Distance = floatChange(v)
			case "pace":
				p.Pace = textChange(v)
			case "targetHeartRate":
				p.TargetHeartRate = heartRateChange(v)
			case "intensity":
				p.Intensity = intensityChange(v)
			case "notes":
				p.Notes = textChange(v)
			case "repetitions":
				p.Repetitions = intChange(v)
			default:
				return nil, unknownField(req.Kind, name)
			}
		}
		return p, nil

	case patchInterval:
		var p builder.IntervalPatch
		for name, v := range req.Fields {
			switch name {
			case "name":
				p.Name = textChange(v)
			case "duration":
				p.Duration = floatChange(v)
			case "distance":
				p.Distance = floatChange(v)
			case "pace":
				p.Pace = textChange(v)
			case "intensity":
				p.Intensity = intensityChange(v)
			case "type":
				s, _ := v.(string)
				kind := domain.IntervalVariant(s)
				if !kind.Valid() {
					return nil, fmt.Errorf("interval type must be work, rest or recovery, got %v", v)
				}
				p.Kind = builder.To(kind)
			default:
				return nil, unknownField(req.Kind, name)
			}
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown node kind %q", req.Kind)
}

func textChange(v any) builder.Change[string] {
	switch t := v.(type) {
	case nil:
		return builder.Cleared[string]()
	case string:
		return builder.To(t)
	default:
		return builder.To(fmt.Sprint(t))
	}
}

func floatChange(v any) builder.Change[float64] {
	f, ok := toFloat(v)
	if !ok {
		return builder.Cleared[float64]()
	}
	return builder.To(f)
}

func intChange(v any) builder.Change[int] {
	n, ok := toInt(v)
	if !ok {
		return builder.Cleared[int]()
	}
	return builder.To(n)
}

func intensityChange(v any) builder.Change[domain.Intensity] {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) || f < float64(domain.IntensityMin) || f > float64(domain.IntensityMax) {
		return builder.Cleared[domain.Intensity]()
	}
	return builder.To(domain.Intensity(f))
}

func boolChange(v any) builder.Change[bool] {
	switch t := v.(type) {
	case bool:
		return builder.To(t)
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return builder.To(b)
		}
	}
	return builder.Cleared[bool]()
}

// heartRateChange accepts {"min": 140, "max": 160, "zone": "Zone 3"}.
func heartRateChange(v any) builder.Change[domain.HeartRateRange] {
	m, ok := v.(map[string]any)
	if !ok {
		return builder.Cleared[domain.HeartRateRange]()
	}
	lo, okLo := toInt(m["min"])
	hi, okHi := toInt(m["max"])
	if !okLo || !okHi || lo > hi {
		return builder.Cleared[domain.HeartRateRange]()
	}
	zone, _ := m["zone"].(string)
	return builder.To(domain.HeartRateRange{Min: lo, Max: hi, Zone: zone})
}

// toInt reads a whole number that fits in 32 bits.
func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// toFloat reads a JSON number or numeric text. Non-finite values do not count.
func toFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
