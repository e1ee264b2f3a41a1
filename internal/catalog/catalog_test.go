package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_OperationClosure(t *testing.T) {
	r := NewRegistry()

	total := 0
	for _, op := range r.Operations() {
		models := r.ModelsForOperation(op)
		assert.NotEmpty(t, models, "operation %s has no models", op)
		for _, m := range models {
			assert.Equal(t, op, m.Operation, "model %s leaked into %s", m.ID, op)
		}
		total += len(models)
	}

	assert.Equal(t, r.Len(), total)
	assert.GreaterOrEqual(t, total, 60)
}

func TestRegistry_ModelConfig(t *testing.T) {
	r := NewRegistry()

	m, ok := r.ModelConfig(TextToImage, "fal-ai/flux-1/schnell")
	require.True(t, ok)
	assert.Equal(t, TextToImage, m.Operation)

	prompt, ok := m.Param("prompt")
	require.True(t, ok)
	assert.True(t, prompt.Required)

	size, ok := m.Param("image_size")
	require.True(t, ok)
	assert.Equal(t, "landscape_4_3", size.Default)
}

func TestRegistry_CrossOperationLookupMisses(t *testing.T) {
	r := NewRegistry()

	// The model exists, but under text-to-image. Asking for it under a
	// different operation must look identical to an unknown model.
	m, ok := r.ModelConfig(TextToVideo, "fal-ai/flux-1/schnell")
	assert.False(t, ok)
	assert.Nil(t, m)

	m, ok = r.ModelConfig(TextToVideo, "no-such/model")
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestRegistry_PricingAttachment(t *testing.T) {
	r := NewRegistry()

	m, ok := r.ModelConfig(TextToImage, "fal-ai/flux-1/schnell")
	require.True(t, ok)
	require.NotNil(t, m.Pricing)
	assert.Equal(t, "budget", m.Pricing.Tier)

	// Unpriced models still resolve, just without the tag.
	m, ok = r.ModelConfig(ImageToImage, "fal-ai/ghiblify")
	require.True(t, ok)
	assert.Nil(t, m.Pricing)
}

func TestRegistry_NoRequiredDefaults(t *testing.T) {
	r := NewRegistry()

	for _, op := range r.Operations() {
		for _, m := range r.ModelsForOperation(op) {
			for _, p := range m.Parameters {
				if p.Required {
					assert.Nil(t, p.Default, "%s.%s carries a default on a required field", m.ID, p.Name)
				}
			}
		}
	}
}

func TestRegistry_LookupDoesNotMutate(t *testing.T) {
	r := NewRegistry()

	a, _ := r.ModelConfig(TextToImage, "fal-ai/flux-1/schnell")
	a.Pricing = &Pricing{Tier: "scribbled"}
	a.Parameters[0].Name = "tampered"

	b, _ := r.ModelConfig(TextToImage, "fal-ai/flux-1/schnell")
	assert.Equal(t, "budget", b.Pricing.Tier)
	assert.Equal(t, "prompt", b.Parameters[0].Name)
}
