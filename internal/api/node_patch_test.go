package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/coach-studio/internal/builder"
	"alcyxob/coach-studio/internal/domain"
)

func TestIntChange(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want builder.Change[int]
	}{
		{"json number", 12.0, builder.To(12)},
		{"numeric text", " 8 ", builder.To(8)},
		{"negative", -3.0, builder.To(-3)},
		{"null", nil, builder.Cleared[int]()},
		{"fraction", 2.5, builder.Cleared[int]()},
		{"fraction text", "2.5", builder.Cleared[int]()},
		{"words", "heavy", builder.Cleared[int]()},
		{"overflowing text", "1e19", builder.Cleared[int]()},
		{"overflowing number", 1e300, builder.Cleared[int]()},
		{"below range", -1e19, builder.Cleared[int]()},
		{"infinite text", "Inf", builder.Cleared[int]()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, intChange(tc.in))
		})
	}
}

func TestIntensityChange(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want builder.Change[domain.Intensity]
	}{
		{"lowest", 1.0, builder.To(domain.Intensity(1))},
		{"highest as text", "5", builder.To(domain.Intensity(5))},
		{"zero", 0.0, builder.Cleared[domain.Intensity]()},
		{"above range", 6.0, builder.Cleared[domain.Intensity]()},
		{"fraction", 3.5, builder.Cleared[domain.Intensity]()},
		{"huge", "1e19", builder.Cleared[domain.Intensity]()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, intensityChange(tc.in))
		})
	}
}

func TestHeartRateChange(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want builder.Change[domain.HeartRateRange]
	}{
		{
			"range with zone",
			map[string]any{"min": 140.0, "max": "160", "zone": "Zone 3"},
			builder.To(domain.HeartRateRange{Min: 140, Max: 160, Zone: "Zone 3"}),
		},
		{"equal bounds", map[string]any{"min": 150.0, "max": 150.0}, builder.To(domain.HeartRateRange{Min: 150, Max: 150})},
		{"min above max", map[string]any{"min": 170.0, "max": 160.0}, builder.Cleared[domain.HeartRateRange]()},
		{"missing max", map[string]any{"min": 140.0}, builder.Cleared[domain.HeartRateRange]()},
		{"huge max", map[string]any{"min": 140.0, "max": "1e19"}, builder.Cleared[domain.HeartRateRange]()},
		{"huge min", map[string]any{"min": -1e300, "max": 160.0}, builder.Cleared[domain.HeartRateRange]()},
		{"not an object", "140-160", builder.Cleared[domain.HeartRateRange]()},
		{"null", nil, builder.Cleared[domain.HeartRateRange]()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, heartRateChange(tc.in))
		})
	}
}

func TestBoolChange(t *testing.T) {
	assert.Equal(t, builder.To(true), boolChange(true))
	assert.Equal(t, builder.To(true), boolChange("true"))
	assert.Equal(t, builder.To(false), boolChange(" false "))
	assert.Equal(t, builder.To(true), boolChange("1"))
	assert.Equal(t, builder.Cleared[bool](), boolChange("yes please"))
	assert.Equal(t, builder.Cleared[bool](), boolChange(1.0))
	assert.Equal(t, builder.Cleared[bool](), boolChange(nil))
}

func TestParseNodePatch(t *testing.T) {
	t.Run("set fields", func(t *testing.T) {
		p, err := parseNodePatch(NodePatchRequest{Kind: patchSet, Fields: map[string]any{
			"reps":      "2.5",
			"weight":    "135.5",
			"completed": "true",
			"notes":     nil,
		}})
		require.NoError(t, err)
		assert.Equal(t, builder.SetPatch{
			Reps:      builder.Cleared[int](),
			Weight:    builder.To(135.5),
			Completed: builder.To(true),
			Notes:     builder.Cleared[string](),
		}, p)
	})

	t.Run("segment repetitions", func(t *testing.T) {
		p, err := parseNodePatch(NodePatchRequest{Kind: patchSegment, Fields: map[string]any{
			"repetitions": 6.0,
			"intensity":   9.0,
		}})
		require.NoError(t, err)
		assert.Equal(t, builder.SegmentPatch{
			Repetitions: builder.To(6),
			Intensity:   builder.Cleared[domain.Intensity](),
		}, p)
	})

	t.Run("interval type", func(t *testing.T) {
		p, err := parseNodePatch(NodePatchRequest{Kind: patchInterval, Fields: map[string]any{"type": "rest"}})
		require.NoError(t, err)
		assert.Equal(t, builder.IntervalPatch{Kind: builder.To(domain.IntervalRest)}, p)
	})

	errCases := []struct {
		name string
		req  NodePatchRequest
	}{
		{"invalid interval type", NodePatchRequest{Kind: patchInterval, Fields: map[string]any{"type": "sprint"}}},
		{"interval type not text", NodePatchRequest{Kind: patchInterval, Fields: map[string]any{"type": 1.0}}},
		{"unknown set field", NodePatchRequest{Kind: patchSet, Fields: map[string]any{"tempo": "3-1-1"}}},
		{"unknown exercise field", NodePatchRequest{Kind: patchExercise, Fields: map[string]any{"sets": 3.0}}},
		{"unknown kind", NodePatchRequest{Kind: "workout", Fields: map[string]any{}}},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseNodePatch(tc.req)
			assert.Error(t, err)
		})
	}
}

func TestOverflowingRepsClearTheSet(t *testing.T) {
	b := builder.New(builder.NewCounterIDs(""))
	w, exerciseID := b.AddExercise(b.NewWorkout(domain.WorkoutStrength), domain.CatalogExercise{ID: "1", Name: "Bench Press"})
	setID := w.(domain.StrengthWorkout).Exercises[0].Sets[0].ID
	require.NotEmpty(t, exerciseID)

	p, err := parseNodePatch(NodePatchRequest{Kind: patchSet, Fields: map[string]any{"reps": "1e19"}})
	require.NoError(t, err)

	set := b.UpdateNode(w, setID, p).(domain.StrengthWorkout).Exercises[0].Sets[0]
	assert.Nil(t, set.Reps)
}
