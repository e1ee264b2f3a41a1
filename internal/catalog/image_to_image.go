package catalog

var imageToImageModels = []ModelSchema{
	{
		ID:   "fal-ai/flux/dev/image-to-image",
		Name: "FLUX.1 [dev] Image to Image",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			str("prompt").req().maxLen(2000),
			num("strength").def(0.95).bounds(0, 1),
			num("num_inference_steps").def(float64(40)).bounds(1, 50),
			num("guidance_scale").def(3.5).bounds(1, 20),
			num("seed"),
		},
	},
	{
		ID:   "fal-ai/gemini-flash-edit",
		Name: "Gemini Flash Edit",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			str("prompt").req().maxLen(2000),
		},
	},
	{
		ID:   "fal-ai/ghiblify",
		Name: "Ghiblify",
		Parameters: []ParameterSpec{
			str("image_url").req(),
		},
	},
	{
		ID:   "fal-ai/codeformer",
		Name: "CodeFormer",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			num("fidelity").def(0.5).bounds(0, 1),
			boolean("upscaling").def(true),
			boolean("face_upscale").def(true),
			num("seed"),
		},
	},
	{
		ID:   "fal-ai/clarity-upscaler",
		Name: "Clarity Upscaler",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			num("upscale_factor").def(float64(2)).bounds(1, 4),
			num("creativity").def(0.35).bounds(0, 1),
			num("resemblance").def(0.6).bounds(0, 1),
			str("prompt").def("masterpiece, best quality, highres"),
		},
	},
	{
		ID:   "fal-ai/ccsr",
		Name: "CCSR Super Resolution",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			num("scale").def(float64(2)).bounds(1, 4),
			str("tile_diffusion").enum("none", "mix", "gaussian").def("none"),
			num("steps").def(float64(50)).bounds(1, 100),
		},
	},
	{
		ID:   "fal-ai/ideogram/v2/remix",
		Name: "Ideogram 2.0 Remix",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			str("prompt").req().maxLen(2000),
			num("strength").def(0.8).bounds(0, 1),
			str("aspect_ratio").enum("10:16", "16:10", "9:16", "16:9", "4:3", "3:4", "1:1").def("1:1"),
		},
	},
	{
		ID:   "fal-ai/recraft/vectorize",
		Name: "Recraft Vectorize",
		Parameters: []ParameterSpec{
			str("image_url").req(),
		},
	},
}
