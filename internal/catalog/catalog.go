package catalog

import "fmt"

// Registry is the process-wide model catalog. It is built once from the
// literal tables in this package and never mutated afterwards, so concurrent
// readers need no locking.
type Registry struct {
	byID map[string]ModelSchema
	byOp map[Operation][]string
}

// NewRegistry builds the catalog from the per-operation tables.
func NewRegistry() *Registry {
	r := &Registry{
		byID: make(map[string]ModelSchema),
		byOp: make(map[Operation][]string),
	}

	r.register(TextToImage, textToImageModels)
	r.register(TextToVideo, textToVideoModels)
	r.register(ImageToVideo, imageToVideoModels)
	r.register(TextToAudio, textToAudioModels)
	r.register(TextToSpeech, textToSpeechModels)
	r.register(ImageToImage, imageToImageModels)
	r.register(VideoToVideo, videoToVideoModels)
	r.register(ImageTo3D, imageTo3DModels)

	return r
}

// register wires one operation's models into the lookup maps. The tables
// are compile-time literals, so schema mistakes are programmer errors and
// fail loudly at startup.
func (r *Registry) register(op Operation, models []ModelSchema) {
	for _, m := range models {
		if _, exists := r.byID[m.ID]; exists {
			panic(fmt.Sprintf("catalog: model %q registered twice", m.ID))
		}
		for _, p := range m.Parameters {
			if p.Required && p.Default != nil {
				panic(fmt.Sprintf("catalog: %s.%s is required and cannot carry a default", m.ID, p.Name))
			}
		}
		m.Operation = op
		r.byID[m.ID] = m
		r.byOp[op] = append(r.byOp[op], m.ID)
	}
}

// Operations returns the supported operations in display order.
func (r *Registry) Operations() []Operation {
	out := make([]Operation, len(AllOperations))
	copy(out, AllOperations)
	return out
}

// ModelsForOperation returns the catalog entries for one operation, with
// pricing metadata attached where known.
func (r *Registry) ModelsForOperation(op Operation) []ModelSchema {
	ids := r.byOp[op]
	out := make([]ModelSchema, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.withPricing(r.byID[id]))
	}
	return out
}

// ModelConfig looks up a single model under the given operation. A model
// that exists but belongs to a different operation is reported as not
// found; an operation/model mismatch is not a distinct error kind.
func (r *Registry) ModelConfig(op Operation, modelID string) (*ModelSchema, bool) {
	m, ok := r.byID[modelID]
	if !ok || m.Operation != op {
		return nil, false
	}
	schema := r.withPricing(m)
	return &schema, true
}

// withPricing returns a caller-owned copy of the schema with pricing
// metadata attached by catalog key. Missing pricing is normal for newer
// models and never fails the lookup.
func (r *Registry) withPricing(m ModelSchema) ModelSchema {
	params := make([]ParameterSpec, len(m.Parameters))
	copy(params, m.Parameters)
	m.Parameters = params

	if p, ok := pricingTable[pricingKey(m.Operation, m.ID)]; ok {
		priced := p
		m.Pricing = &priced
	}
	return m
}

// Len reports the total number of registered models.
func (r *Registry) Len() int {
	return len(r.byID)
}
