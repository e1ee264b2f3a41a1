package params

import (
	"testing"

	"github.com/draftbox/mediaroute/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaFor(t *testing.T, op catalog.Operation, id string) *catalog.ModelSchema {
	t.Helper()
	m, ok := catalog.NewRegistry().ModelConfig(op, id)
	require.True(t, ok, "model %s missing from catalog", id)
	return m
}

func TestResolve_AccumulatesAllRequiredErrors(t *testing.T) {
	schema := schemaFor(t, catalog.VideoToVideo, "fal-ai/sync-lipsync")

	res := Resolve(schema, map[string]interface{}{})

	assert.False(t, res.Valid)
	// Both missing fields reported in one pass, not just the first.
	assert.Contains(t, res.Errors, "video_url is required")
	assert.Contains(t, res.Errors, "audio_url is required")
}

func TestResolve_DefaultsAreIdempotent(t *testing.T) {
	schema := schemaFor(t, catalog.TextToImage, "fal-ai/flux-1/schnell")
	raw := map[string]interface{}{"prompt": "a red fox"}

	first := Resolve(schema, raw)
	second := Resolve(schema, raw)

	require.True(t, first.Valid)
	assert.Equal(t, first.Cleaned, second.Cleaned)

	assert.Equal(t, "landscape_4_3", first.Cleaned["image_size"])
	assert.Equal(t, float64(4), first.Cleaned["num_inference_steps"])
	assert.Equal(t, true, first.Cleaned["enable_safety_checker"])

	// seed has no default and was not supplied, so it must stay absent.
	_, present := first.Cleaned["seed"]
	assert.False(t, present)
}

func TestResolve_ValidInputRoundTrips(t *testing.T) {
	schema := schemaFor(t, catalog.TextToImage, "fal-ai/flux-1/schnell")
	raw := map[string]interface{}{
		"prompt":                "studio shot of a ceramic mug",
		"image_size":            "square_hd",
		"num_inference_steps":   float64(8),
		"num_images":            float64(2),
		"seed":                  float64(42),
		"enable_safety_checker": false,
	}

	res := Resolve(schema, raw)

	require.True(t, res.Valid)
	assert.Equal(t, raw, res.Cleaned)
}

func TestResolve_EnumViolation(t *testing.T) {
	schema := schemaFor(t, catalog.VideoToVideo, "fal-ai/video-upscaler")

	res := Resolve(schema, map[string]interface{}{
		"video_url": "https://x/v.mp4",
		"scale":     "5",
	})

	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "scale must be one of: 2, 3, 4")
}

func TestResolve_NoTypeCoercion(t *testing.T) {
	schema := schemaFor(t, catalog.TextToImage, "fal-ai/flux-1/schnell")

	res := Resolve(schema, map[string]interface{}{
		"prompt":                "a fox",
		"num_inference_steps":   "4",
		"enable_safety_checker": "true",
	})

	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "num_inference_steps must be a number")
	assert.Contains(t, res.Errors, "enable_safety_checker must be a boolean")
}

func TestResolve_NumericBoundsInclusive(t *testing.T) {
	schema := schemaFor(t, catalog.TextToImage, "fal-ai/flux-1/schnell")

	// Boundary values pass.
	res := Resolve(schema, map[string]interface{}{
		"prompt":              "a fox",
		"num_inference_steps": float64(12),
	})
	assert.True(t, res.Valid)

	// One past the boundary is an error, never clamped.
	res = Resolve(schema, map[string]interface{}{
		"prompt":              "a fox",
		"num_inference_steps": float64(13),
	})
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "num_inference_steps must be between 1 and 12")
	_, present := res.Cleaned["num_inference_steps"]
	assert.False(t, present)
}

func TestResolve_StringLength(t *testing.T) {
	schema := schemaFor(t, catalog.TextToAudio, "fal-ai/minimax-music")

	long := make([]byte, 601)
	for i := range long {
		long[i] = 'a'
	}

	res := Resolve(schema, map[string]interface{}{"prompt": string(long)})

	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "prompt must be at most 600 characters")
}

func TestResolve_NestedArrayElements(t *testing.T) {
	schema := schemaFor(t, catalog.TextToImage, "fal-ai/recraft-v3")

	res := Resolve(schema, map[string]interface{}{
		"prompt": "brand hero image",
		"colors": []interface{}{
			map[string]interface{}{"r": float64(255), "g": float64(10), "b": float64(10)},
			map[string]interface{}{"r": float64(300), "g": float64(10)},
			"not-an-object",
		},
	})

	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "colors[1].r must be between 0 and 255")
	assert.Contains(t, res.Errors, "colors[1].b is required")
	assert.Contains(t, res.Errors, "colors[2] must be an object")
}

func TestResolve_FalsyValuesAreExplicit(t *testing.T) {
	schema := schemaFor(t, catalog.TextToVideo, "fal-ai/luma-dream-machine")

	// loop defaults to false; sending false explicitly must not be treated
	// as absent, and an empty prompt string is a length violation rather
	// than a fallback to a default.
	res := Resolve(schema, map[string]interface{}{
		"prompt": "waves rolling in",
		"loop":   false,
	})

	require.True(t, res.Valid)
	v, present := res.Cleaned["loop"]
	assert.True(t, present)
	assert.Equal(t, false, v)
}

func TestResolve_NilValueCountsAsAbsent(t *testing.T) {
	schema := schemaFor(t, catalog.TextToImage, "fal-ai/flux-1/schnell")

	res := Resolve(schema, map[string]interface{}{"prompt": nil})

	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "prompt is required")
}

func TestResolve_UnknownKeysAreDropped(t *testing.T) {
	schema := schemaFor(t, catalog.TextToImage, "fal-ai/flux-1/schnell")

	res := Resolve(schema, map[string]interface{}{
		"prompt":     "a fox",
		"extraneous": "value",
	})

	require.True(t, res.Valid)
	_, present := res.Cleaned["extraneous"]
	assert.False(t, present)
}
