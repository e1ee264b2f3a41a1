package catalog

var textToVideoModels = []ModelSchema{
	{
		ID:   "fal-ai/veo2",
		Name: "Veo 2",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("aspect_ratio").enum("16:9", "9:16").def("16:9"),
			str("duration").enum("5s", "6s", "7s", "8s").def("5s"),
		},
	},
	{
		ID:   "fal-ai/minimax/video-01-live",
		Name: "MiniMax Video 01 Live",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			boolean("prompt_optimizer").def(true),
		},
	},
	{
		ID:   "fal-ai/kling-video/v1.6/standard/text-to-video",
		Name: "Kling 1.6 Standard",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("duration").enum("5", "10").def("5"),
			str("aspect_ratio").enum("16:9", "9:16", "1:1").def("16:9"),
			num("cfg_scale").def(0.5).bounds(0, 1),
			str("negative_prompt").def("blur, distort, and low quality"),
		},
	},
	{
		ID:   "fal-ai/kling-video/v2/master/text-to-video",
		Name: "Kling 2.0 Master",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("duration").enum("5", "10").def("5"),
			str("aspect_ratio").enum("16:9", "9:16", "1:1").def("16:9"),
			num("cfg_scale").def(0.5).bounds(0, 1),
		},
	},
	{
		ID:   "fal-ai/luma-dream-machine",
		Name: "Luma Dream Machine",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("aspect_ratio").enum("16:9", "9:16", "4:3", "3:4", "21:9", "9:21", "1:1").def("16:9"),
			boolean("loop").def(false),
		},
	},
	{
		ID:   "fal-ai/pixverse/v3.5/text-to-video",
		Name: "PixVerse 3.5",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("aspect_ratio").enum("16:9", "4:3", "1:1", "3:4", "9:16").def("16:9"),
			str("resolution").enum("360p", "540p", "720p", "1080p").def("720p"),
			num("duration").enum(float64(5), float64(8)).def(float64(5)),
			str("style").enum("anime", "3d_animation", "clay", "comic", "cyberpunk"),
		},
	},
	{
		ID:   "fal-ai/hunyuan-video",
		Name: "Hunyuan Video",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			num("num_inference_steps").def(float64(30)).bounds(1, 50),
			str("resolution").enum("480p", "580p", "720p").def("720p"),
			num("num_frames").enum(float64(85), float64(129)).def(float64(129)),
			num("seed"),
		},
	},
	{
		ID:   "fal-ai/ltx-video",
		Name: "LTX Video",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("negative_prompt").def("low quality, worst quality, deformed, distorted"),
			num("num_inference_steps").def(float64(30)).bounds(1, 50),
			num("guidance_scale").def(float64(3)).bounds(1, 10),
			num("seed"),
		},
	},
	{
		ID:   "fal-ai/wan-t2v",
		Name: "Wan 2.1 Text to Video",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("resolution").enum("480p", "720p").def("720p"),
			num("num_frames").def(float64(81)).bounds(81, 100),
			num("frames_per_second").def(float64(16)).bounds(5, 24),
			boolean("enable_prompt_expansion").def(false),
		},
	},
	{
		ID:   "fal-ai/mochi-v1",
		Name: "Mochi 1",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			boolean("enable_prompt_expansion").def(true),
			num("seed"),
		},
	},
}
