package extract

import (
	"encoding/json"
	"testing"

	"github.com/draftbox/mediaroute/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_ImageFamilyDefault(t *testing.T) {
	payload := json.RawMessage(`{
		"images": [{"url": "https://cdn.example/fox.png", "width": 1024}],
		"seed": 42
	}`)

	res, err := Extract(catalog.TextToImage, "fal-ai/flux-1/schnell", payload)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/fox.png", res.AssetURL)
	assert.Empty(t, res.VideoURL)
}

func TestExtract_SingleImageOverride(t *testing.T) {
	payload := json.RawMessage(`{"image": {"url": "https://cdn.example/ghibli.png"}}`)

	res, err := Extract(catalog.ImageToImage, "fal-ai/ghiblify", payload)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/ghibli.png", res.AssetURL)
}

func TestExtract_Video(t *testing.T) {
	payload := json.RawMessage(`{"video": {"url": "https://cdn.example/clip.mp4"}}`)

	res, err := Extract(catalog.TextToVideo, "fal-ai/veo2", payload)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/clip.mp4", res.VideoURL)
}

func TestExtract_AudioVariants(t *testing.T) {
	res, err := Extract(catalog.TextToAudio, "fal-ai/stable-audio",
		json.RawMessage(`{"audio_file": {"url": "https://cdn.example/loop.wav"}}`))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/loop.wav", res.AudioURL)

	res, err = Extract(catalog.TextToSpeech, "fal-ai/elevenlabs/tts/turbo-v2.5",
		json.RawMessage(`{"audio": {"url": "https://cdn.example/voice.mp3"}}`))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/voice.mp3", res.AudioURL)
}

func TestExtract_MeshWithTimings(t *testing.T) {
	payload := json.RawMessage(`{
		"model_mesh": {"url": "https://cdn.example/mesh.glb", "file_size": 102400},
		"timings": {"generation": 41.2, "texturing": 12.9}
	}`)

	res, err := Extract(catalog.ImageTo3D, "fal-ai/trellis", payload)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/mesh.glb", res.ModelMeshURL)
	assert.Equal(t, 41.2, res.Timings["generation"])
}

func TestExtract_MeshWithTextures(t *testing.T) {
	payload := json.RawMessage(`{
		"model_mesh": {"url": "https://cdn.example/rodin.glb"},
		"textures": [
			{"url": "https://cdn.example/albedo.png"},
			{"url": "https://cdn.example/normal.png"}
		]
	}`)

	res, err := Extract(catalog.ImageTo3D, "fal-ai/hyper3d/rodin", payload)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/rodin.glb", res.ModelMeshURL)
	assert.Equal(t, []string{"https://cdn.example/albedo.png", "https://cdn.example/normal.png"}, res.Textures)
}

func TestExtract_PBRFallbackChain(t *testing.T) {
	payload := json.RawMessage(`{
		"model_glb": {"url": "https://cdn.example/h3d.glb"},
		"model_glb_pbr": {"url": "https://cdn.example/h3d-pbr.glb"}
	}`)

	res, err := Extract(catalog.ImageTo3D, "fal-ai/hunyuan3d/v2", payload)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/h3d.glb", res.ModelMeshURL)
	assert.Equal(t, "https://cdn.example/h3d-pbr.glb", res.PBRModelURL)
}

func TestExtract_EmptyPayloadIsHardFailure(t *testing.T) {
	// Syntactically valid, semantically empty: must error, never return a
	// result with all-empty URL fields.
	cases := []json.RawMessage{
		json.RawMessage(`{}`),
		json.RawMessage(`{"images": []}`),
		json.RawMessage(`{"video": {}}`),
		json.RawMessage(`{"images": [{"url": ""}]}`),
	}

	for _, payload := range cases {
		res, err := Extract(catalog.TextToImage, "fal-ai/flux-1/schnell", payload)
		assert.ErrorIs(t, err, ErrNoHostedURL)
		assert.Nil(t, res)
	}
}

func TestExtract_NonURLValuesIgnored(t *testing.T) {
	payload := json.RawMessage(`{"images": [{"url": "data:image/png;base64,AAAA"}]}`)

	_, err := Extract(catalog.TextToImage, "fal-ai/flux-1/schnell", payload)
	assert.ErrorIs(t, err, ErrNoHostedURL)
}

func TestExtract_MalformedJSON(t *testing.T) {
	_, err := Extract(catalog.TextToImage, "fal-ai/flux-1/schnell", json.RawMessage(`{`))
	assert.Error(t, err)
}
