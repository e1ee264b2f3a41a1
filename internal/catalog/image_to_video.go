package catalog

var imageToVideoModels = []ModelSchema{
	{
		ID:   "fal-ai/veo2/image-to-video",
		Name: "Veo 2 Image to Video",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("image_url").req(),
			str("aspect_ratio").enum("auto", "16:9", "9:16").def("auto"),
			str("duration").enum("5s", "6s", "7s", "8s").def("5s"),
		},
	},
	{
		ID:   "fal-ai/kling-video/v1.6/pro/image-to-video",
		Name: "Kling 1.6 Pro Image to Video",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("image_url").req(),
			str("duration").enum("5", "10").def("5"),
			num("cfg_scale").def(0.5).bounds(0, 1),
			str("tail_image_url"),
		},
	},
	{
		ID:   "fal-ai/minimax/video-01/image-to-video",
		Name: "MiniMax Video 01 Image to Video",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("image_url").req(),
			boolean("prompt_optimizer").def(true),
		},
	},
	{
		ID:   "fal-ai/luma-dream-machine/image-to-video",
		Name: "Luma Dream Machine Image to Video",
		Parameters: []ParameterSpec{
			str("prompt").maxLen(2000),
			str("image_url").req(),
			str("aspect_ratio").enum("16:9", "9:16", "4:3", "3:4", "21:9", "9:21", "1:1").def("16:9"),
			boolean("loop").def(false),
		},
	},
	{
		ID:   "fal-ai/runway-gen3/turbo/image-to-video",
		Name: "Runway Gen-3 Turbo",
		Parameters: []ParameterSpec{
			str("prompt").maxLen(1000),
			str("image_url").req(),
			num("duration").enum(float64(5), float64(10)).def(float64(5)),
		},
	},
	{
		ID:   "fal-ai/stable-video",
		Name: "Stable Video Diffusion",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			num("motion_bucket_id").def(float64(127)).bounds(1, 255),
			num("cond_aug").def(0.02).bounds(0, 1),
			num("fps").def(float64(25)).bounds(1, 30),
			num("seed"),
		},
	},
	{
		ID:   "fal-ai/pixverse/v3.5/image-to-video",
		Name: "PixVerse 3.5 Image to Video",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			str("prompt").maxLen(2000),
			str("resolution").enum("360p", "540p", "720p", "1080p").def("720p"),
			num("duration").enum(float64(5), float64(8)).def(float64(5)),
		},
	},
	{
		ID:   "fal-ai/wan-i2v",
		Name: "Wan 2.1 Image to Video",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(2000),
			str("image_url").req(),
			str("resolution").enum("480p", "720p").def("720p"),
			num("num_frames").def(float64(81)).bounds(81, 100),
		},
	},
}
