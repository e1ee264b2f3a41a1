package catalog

var videoToVideoModels = []ModelSchema{
	{
		ID:   "fal-ai/video-upscaler",
		Name: "Video Upscaler",
		Parameters: []ParameterSpec{
			str("video_url").req(),
			str("scale").enum("2", "3", "4").def("2"),
		},
	},
	{
		ID:   "fal-ai/amt-interpolation",
		Name: "AMT Frame Interpolation",
		Parameters: []ParameterSpec{
			str("video_url").req(),
			num("output_fps").def(float64(60)).bounds(1, 120),
			num("recursive_interpolation_passes").def(float64(2)).bounds(1, 4),
		},
	},
	{
		ID:   "fal-ai/auto-caption",
		Name: "Auto Caption",
		Parameters: []ParameterSpec{
			str("video_url").req(),
			str("txt_color").def("white"),
			num("txt_font_size").def(float64(24)).bounds(8, 96),
			str("font").enum("Arial", "Standard", "Garamond", "Times New Roman", "Georgia").def("Standard"),
		},
	},
	{
		ID:   "fal-ai/sync-lipsync",
		Name: "Sync Lipsync",
		Parameters: []ParameterSpec{
			str("video_url").req(),
			str("audio_url").req(),
			str("sync_mode").enum("cut_off", "loop", "bounce").def("cut_off"),
		},
	},
	{
		ID:   "fal-ai/luma-dream-machine/ray-2/modify",
		Name: "Luma Ray 2 Modify",
		Parameters: []ParameterSpec{
			str("video_url").req(),
			str("prompt").req().maxLen(2000),
			str("mode").enum("adhere_1", "adhere_2", "adhere_3", "flex_1", "flex_2", "flex_3", "reimagine_1", "reimagine_2", "reimagine_3").def("flex_1"),
		},
	},
	{
		ID:   "fal-ai/ben/v2/video",
		Name: "BEN2 Background Removal",
		Parameters: []ParameterSpec{
			str("video_url").req(),
		},
	},
}
