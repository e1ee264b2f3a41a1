package catalog

// textToImageModels is hand-maintained against the upstream endpoint docs.
// Parameter order matters: resolution reports errors in declaration order.
var textToImageModels = []ModelSchema{
	{
		ID:   "fal-ai/flux-1/schnell",
		Name: "FLUX.1 [schnell]",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			imageSizeParam("landscape_4_3"),
			num("num_inference_steps").def(float64(4)).bounds(1, 12),
			num("num_images").def(float64(1)).bounds(1, 4),
			num("seed"),
			boolean("enable_safety_checker").def(true),
		},
	},
	{
		ID:   "fal-ai/flux/dev",
		Name: "FLUX.1 [dev]",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			imageSizeParam("landscape_4_3"),
			num("num_inference_steps").def(float64(28)).bounds(1, 50),
			num("guidance_scale").def(3.5).bounds(1, 20),
			num("num_images").def(float64(1)).bounds(1, 4),
			num("seed"),
			boolean("enable_safety_checker").def(true),
		},
	},
	{
		ID:   "fal-ai/flux-pro/v1.1",
		Name: "FLUX1.1 [pro]",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			imageSizeParam("landscape_4_3"),
			str("safety_tolerance").enum("1", "2", "3", "4", "5", "6").def("2"),
			num("seed"),
			str("output_format").enum("jpeg", "png").def("jpeg"),
		},
	},
	{
		ID:   "fal-ai/flux-pro/v1.1-ultra",
		Name: "FLUX1.1 [pro] ultra",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("aspect_ratio").enum("21:9", "16:9", "4:3", "1:1", "3:4", "9:16", "9:21").def("16:9"),
			boolean("raw").def(false),
			num("seed"),
			boolean("enable_safety_checker").def(true),
		},
	},
	{
		ID:   "fal-ai/recraft-v3",
		Name: "Recraft V3",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(1000),
			imageSizeParam("square_hd"),
			str("style").enum("realistic_image", "digital_illustration", "vector_illustration").def("realistic_image"),
			// Brand palette as RGB triples
			array("colors").items(
				prop("r", ParamNumber, true, 0, 255),
				prop("g", ParamNumber, true, 0, 255),
				prop("b", ParamNumber, true, 0, 255),
			),
		},
	},
	{
		ID:   "fal-ai/stable-diffusion-v35-large",
		Name: "Stable Diffusion 3.5 Large",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("negative_prompt").def(""),
			imageSizeParam("landscape_4_3"),
			num("num_inference_steps").def(float64(28)).bounds(1, 50),
			num("guidance_scale").def(float64(5)).bounds(1, 20),
			num("seed"),
		},
	},
	{
		ID:   "fal-ai/ideogram/v2",
		Name: "Ideogram 2.0",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("aspect_ratio").enum("10:16", "16:10", "9:16", "16:9", "4:3", "3:4", "1:1").def("1:1"),
			boolean("expand_prompt").def(true),
			str("style").enum("auto", "general", "realistic", "design", "render_3D", "anime").def("auto"),
			num("seed"),
		},
	},
	{
		ID:   "fal-ai/fast-sdxl",
		Name: "Fast SDXL",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("negative_prompt").def(""),
			imageSizeParam("square_hd"),
			num("num_inference_steps").def(float64(25)).bounds(1, 50),
			num("guidance_scale").def(7.5).bounds(0, 20),
			num("num_images").def(float64(1)).bounds(1, 8),
			boolean("enable_safety_checker").def(true),
		},
	},
	{
		ID:   "fal-ai/aura-flow",
		Name: "AuraFlow",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			num("num_images").def(float64(1)).bounds(1, 4),
			num("guidance_scale").def(3.5).bounds(1, 10),
			num("num_inference_steps").def(float64(50)).bounds(1, 50),
			num("seed"),
		},
	},
	{
		ID:   "fal-ai/hidream-i1-full",
		Name: "HiDream I1",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("negative_prompt").def(""),
			imageSizeParam("square_hd"),
			num("num_inference_steps").def(float64(50)).bounds(1, 50),
			num("seed"),
		},
	},
	{
		ID:   "fal-ai/sana",
		Name: "Sana",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("negative_prompt").def(""),
			imageSizeParam("square_hd"),
			num("guidance_scale").def(float64(5)).bounds(1, 20),
			num("num_inference_steps").def(float64(18)).bounds(1, 50),
		},
	},
	{
		ID:   "fal-ai/omnigen-v1",
		Name: "OmniGen v1",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			imageSizeParam("square_hd"),
			num("num_inference_steps").def(float64(50)).bounds(1, 100),
			num("guidance_scale").def(float64(3)).bounds(1, 10),
			num("img_guidance_scale").def(1.6).bounds(1, 5),
		},
	},
}
