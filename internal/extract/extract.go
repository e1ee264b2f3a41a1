// Package extract locates the output artifact URL(s) inside a backend
// response. Response shapes are not uniform even within one operation, so
// each model (or family) carries its own ordered list of field paths to
// probe.
package extract

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/draftbox/mediaroute/internal/catalog"
)

// ErrNoHostedURL is returned when every known field path for a model came
// up empty. Downstream consumers assume a successful result carries at
// least one usable URL, so an all-empty payload is a hard failure.
var ErrNoHostedURL = errors.New("backend response did not contain a hosted URL")

// Result maps semantic URL roles to absolute hosted URLs. Different models
// populate different fields; at least one is always set on success.
type Result struct {
	AssetURL         string                 `json:"asset_url,omitempty"`
	VideoURL         string                 `json:"video_url,omitempty"`
	AudioURL         string                 `json:"audio_url,omitempty"`
	ModelMeshURL     string                 `json:"model_mesh_url,omitempty"`
	PBRModelURL      string                 `json:"pbr_model_url,omitempty"`
	RenderedImageURL string                 `json:"rendered_image_url,omitempty"`
	Textures         []string               `json:"textures,omitempty"`
	Timings          map[string]interface{} `json:"timings,omitempty"`
}

// Empty reports whether no URL role was populated.
func (r *Result) Empty() bool {
	return r.AssetURL == "" && r.VideoURL == "" && r.AudioURL == "" &&
		r.ModelMeshURL == "" && r.PBRModelURL == "" && r.RenderedImageURL == "" &&
		len(r.Textures) == 0
}

type role int

const (
	roleAsset role = iota
	roleVideo
	roleAudio
	roleMesh
	rolePBR
	roleRendered
	roleTextures
	roleTimings
)

type fieldProbe struct {
	path string
	role role
}

// modelProbes overrides the operation defaults for models whose responses
// deviate from their family convention. Paths are tried in order; every
// populated path is copied into the result.
var modelProbes = map[string][]fieldProbe{
	"fal-ai/ghiblify":          {{"image.url", roleAsset}},
	"fal-ai/gemini-flash-edit": {{"image.url", roleAsset}},
	"fal-ai/codeformer":        {{"image.url", roleAsset}},
	"fal-ai/clarity-upscaler":  {{"image.url", roleAsset}},
	"fal-ai/ccsr":              {{"image.url", roleAsset}},
	"fal-ai/recraft/vectorize": {{"image.url", roleAsset}},

	"fal-ai/stable-audio": {{"audio_file.url", roleAudio}},
	"fal-ai/yue":          {{"audio.url", roleAudio}, {"audio_url", roleAudio}},

	"fal-ai/trellis": {
		{"model_mesh.url", roleMesh},
		{"timings", roleTimings},
	},
	"fal-ai/hunyuan3d/v2": {
		{"model_glb.url", roleMesh},
		{"model_glb_pbr.url", rolePBR},
		{"model_mesh.url", roleMesh},
	},
	"fal-ai/triposr": {
		{"model_mesh.url", roleMesh},
		{"timings", roleTimings},
	},
	"fal-ai/stable-fast-3d": {
		{"model_mesh.url", roleMesh},
	},
	"fal-ai/hyper3d/rodin": {
		{"model_mesh.url", roleMesh},
		{"textures", roleTextures},
	},
	"fal-ai/era-3d": {
		{"images[0].url", roleRendered},
		{"model_mesh.url", roleMesh},
	},
}

// operationProbes are the family conventions used when a model has no
// override of its own.
var operationProbes = map[catalog.Operation][]fieldProbe{
	catalog.TextToImage:  {{"images[0].url", roleAsset}, {"image.url", roleAsset}},
	catalog.ImageToImage: {{"images[0].url", roleAsset}, {"image.url", roleAsset}},
	catalog.TextToVideo:  {{"video.url", roleVideo}},
	catalog.ImageToVideo: {{"video.url", roleVideo}},
	catalog.VideoToVideo: {{"video.url", roleVideo}},
	catalog.TextToAudio:  {{"audio.url", roleAudio}, {"audio_file.url", roleAudio}},
	catalog.TextToSpeech: {{"audio.url", roleAudio}, {"audio_url", roleAudio}},
	catalog.ImageTo3D:    {{"model_mesh.url", roleMesh}},
}

// Extract probes the payload with the model's known field paths and
// normalizes whatever is present into a Result.
func Extract(op catalog.Operation, modelID string, payload json.RawMessage) (*Result, error) {
	var doc interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}

	probes, ok := modelProbes[modelID]
	if !ok {
		probes = operationProbes[op]
	}

	result := &Result{}
	for _, p := range probes {
		value, found := evalPath(doc, p.path)
		if !found {
			continue
		}
		assign(result, p.role, value)
	}

	if result.Empty() {
		return nil, ErrNoHostedURL
	}

	return result, nil
}

func assign(r *Result, ro role, value interface{}) {
	switch ro {
	case roleTimings:
		if m, ok := value.(map[string]interface{}); ok {
			r.Timings = m
		}
	case roleTextures:
		r.Textures = append(r.Textures, textureURLs(value)...)
	default:
		url, ok := value.(string)
		if !ok || !strings.HasPrefix(url, "http") {
			return
		}
		switch ro {
		case roleAsset:
			if r.AssetURL == "" {
				r.AssetURL = url
			}
		case roleVideo:
			if r.VideoURL == "" {
				r.VideoURL = url
			}
		case roleAudio:
			if r.AudioURL == "" {
				r.AudioURL = url
			}
		case roleMesh:
			if r.ModelMeshURL == "" {
				r.ModelMeshURL = url
			}
		case rolePBR:
			if r.PBRModelURL == "" {
				r.PBRModelURL = url
			}
		case roleRendered:
			if r.RenderedImageURL == "" {
				r.RenderedImageURL = url
			}
		}
	}
}

// textureURLs accepts both bare URL strings and {url: ...} file objects.
func textureURLs(value interface{}) []string {
	arr, ok := value.([]interface{})
	if !ok {
		return nil
	}
	var urls []string
	for _, el := range arr {
		switch t := el.(type) {
		case string:
			if strings.HasPrefix(t, "http") {
				urls = append(urls, t)
			}
		case map[string]interface{}:
			if u, ok := t["url"].(string); ok && strings.HasPrefix(u, "http") {
				urls = append(urls, u)
			}
		}
	}
	return urls
}

// evalPath walks a dotted path with optional [idx] segments, e.g.
// "images[0].url". Missing keys, wrong shapes, and out-of-range indices
// all report not-found rather than erroring.
func evalPath(doc interface{}, path string) (interface{}, bool) {
	cur := doc
	for _, seg := range strings.Split(path, ".") {
		key := seg
		idx := -1

		if open := strings.IndexByte(seg, '['); open != -1 && strings.HasSuffix(seg, "]") {
			key = seg[:open]
			parsed, err := strconv.Atoi(seg[open+1 : len(seg)-1])
			if err != nil || parsed < 0 {
				return nil, false
			}
			idx = parsed
		}

		if key != "" {
			m, ok := cur.(map[string]interface{})
			if !ok {
				return nil, false
			}
			next, ok := m[key]
			if !ok {
				return nil, false
			}
			cur = next
		}

		if idx >= 0 {
			arr, ok := cur.([]interface{})
			if !ok || idx >= len(arr) {
				return nil, false
			}
			cur = arr[idx]
		}
	}
	return cur, true
}
