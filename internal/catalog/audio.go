package catalog

// Audio generation splits into ambient/music models and speech synthesis.
// The two operations share nothing beyond both returning hosted audio.

var textToAudioModels = []ModelSchema{
	{
		ID:   "fal-ai/stable-audio",
		Name: "Stable Audio",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(1000),
			num("seconds_total").def(float64(30)).bounds(1, 47),
			num("steps").def(float64(100)).bounds(1, 100),
		},
	},
	{
		ID:   "fal-ai/mmaudio-v2/text-to-audio",
		Name: "MMAudio V2",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(1000),
			str("negative_prompt").def(""),
			num("duration").def(float64(8)).bounds(1, 30),
			num("num_steps").def(float64(25)).bounds(1, 50),
			num("cfg_strength").def(4.5).bounds(1, 10),
		},
	},
	{
		ID:   "cassetteai/music-generator",
		Name: "CassetteAI Music Generator",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(1000),
			num("duration").def(float64(30)).bounds(10, 180),
		},
	},
	{
		ID:   "fal-ai/minimax-music",
		Name: "MiniMax Music",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(600),
			str("reference_audio_url"),
		},
	},
	{
		ID:   "fal-ai/yue",
		Name: "YuE",
		Parameters: []ParameterSpec{
			str("lyrics").req().maxLen(4000),
			str("genres").req().maxLen(200),
		},
	},
	{
		ID:   "fal-ai/diffrhythm",
		Name: "DiffRhythm",
		Parameters: []ParameterSpec{
			str("lyrics").req().maxLen(4000),
			str("style_prompt").def("pop"),
			num("cfg_strength").def(float64(4)).bounds(1, 10),
		},
	},
}

var textToSpeechModels = []ModelSchema{
	{
		ID:   "fal-ai/elevenlabs/tts/turbo-v2.5",
		Name: "ElevenLabs Turbo v2.5",
		Parameters: []ParameterSpec{
			str("text").req().maxLen(5000),
			str("voice").def("Rachel"),
			num("stability").def(0.5).bounds(0, 1),
			num("similarity_boost").def(0.75).bounds(0, 1),
			num("speed").def(float64(1)).bounds(0.7, 1.2),
		},
	},
	{
		ID:   "fal-ai/playai/tts/v3",
		Name: "PlayAI TTS v3",
		Parameters: []ParameterSpec{
			str("input").req().maxLen(5000),
			str("voice").def("Jennifer (English (US)/American)"),
			str("response_format").enum("url", "bytes").def("url"),
		},
	},
	{
		ID:   "fal-ai/kokoro/american-english",
		Name: "Kokoro (American English)",
		Parameters: []ParameterSpec{
			str("prompt").req().maxLen(5000),
			str("voice").enum("af_heart", "af_alloy", "af_bella", "am_adam", "am_echo", "am_onyx").def("af_heart"),
			num("speed").def(float64(1)).bounds(0.1, 5),
		},
	},
	{
		ID:   "fal-ai/f5-tts",
		Name: "F5 TTS",
		Parameters: []ParameterSpec{
			str("gen_text").req().maxLen(5000),
			str("ref_audio_url").req(),
			str("ref_text"),
			str("model_type").enum("F5-TTS", "E2-TTS").def("F5-TTS"),
			boolean("remove_silence").def(true),
		},
	},
	{
		ID:   "fal-ai/orpheus-tts",
		Name: "Orpheus TTS",
		Parameters: []ParameterSpec{
			str("text").req().maxLen(5000),
			str("voice").enum("tara", "leah", "jess", "leo", "dan", "mia").def("tara"),
			num("temperature").def(0.7).bounds(0.1, 2),
			num("repetition_penalty").def(1.2).bounds(1, 2),
		},
	},
	{
		ID:   "fal-ai/dia-tts",
		Name: "Dia TTS",
		Parameters: []ParameterSpec{
			str("text").req().maxLen(5000),
		},
	},
	{
		ID:   "fal-ai/minimax-tts/text-to-speech",
		Name: "MiniMax TTS",
		Parameters: []ParameterSpec{
			str("text").req().maxLen(5000),
			str("voice_id").def("Wise_Woman"),
			num("speed").def(float64(1)).bounds(0.5, 2),
			num("vol").def(float64(1)).bounds(0, 10),
			num("pitch").def(float64(0)).bounds(-12, 12),
		},
	},
}
