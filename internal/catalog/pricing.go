package catalog

// Pricing carries display metadata for cost pickers. Values are strings
// because upstream price sheets mix units (per image, per second, per
// megapixel) that are shown verbatim, never computed on.
type Pricing struct {
	Tier   string `json:"tier"`
	Price  string `json:"price"`
	Source string `json:"source"`
}

func pricingKey(op Operation, modelID string) string {
	return string(op) + "|" + modelID
}

// pricingTable is maintained by hand from the published fal.ai price sheet.
// Models absent from this table simply render without a price tag.
var pricingTable = map[string]Pricing{
	pricingKey(TextToImage, "fal-ai/flux-1/schnell"):                {Tier: "budget", Price: "$0.003 / image", Source: "fal.ai pricing"},
	pricingKey(TextToImage, "fal-ai/flux/dev"):                      {Tier: "standard", Price: "$0.025 / image", Source: "fal.ai pricing"},
	pricingKey(TextToImage, "fal-ai/flux-pro/v1.1"):                 {Tier: "premium", Price: "$0.04 / image", Source: "fal.ai pricing"},
	pricingKey(TextToImage, "fal-ai/flux-pro/v1.1-ultra"):           {Tier: "premium", Price: "$0.06 / image", Source: "fal.ai pricing"},
	pricingKey(TextToImage, "fal-ai/recraft-v3"):                    {Tier: "standard", Price: "$0.04 / image", Source: "fal.ai pricing"},
	pricingKey(TextToImage, "fal-ai/stable-diffusion-v35-large"):    {Tier: "standard", Price: "$0.065 / image", Source: "fal.ai pricing"},
	pricingKey(TextToImage, "fal-ai/ideogram/v2"):                   {Tier: "premium", Price: "$0.08 / image", Source: "fal.ai pricing"},
	pricingKey(TextToImage, "fal-ai/fast-sdxl"):                     {Tier: "budget", Price: "$0.0025 / image", Source: "fal.ai pricing"},
	pricingKey(TextToImage, "fal-ai/aura-flow"):                     {Tier: "budget", Price: "$0.0055 / image", Source: "fal.ai pricing"},
	pricingKey(TextToVideo, "fal-ai/veo2"):                          {Tier: "premium", Price: "$0.50 / second", Source: "fal.ai pricing"},
	pricingKey(TextToVideo, "fal-ai/kling-video/v1.6/standard/text-to-video"): {Tier: "standard", Price: "$0.045 / second", Source: "fal.ai pricing"},
	pricingKey(TextToVideo, "fal-ai/kling-video/v2/master/text-to-video"):     {Tier: "premium", Price: "$0.28 / second", Source: "fal.ai pricing"},
	pricingKey(TextToVideo, "fal-ai/minimax/video-01-live"):         {Tier: "standard", Price: "$0.50 / video", Source: "fal.ai pricing"},
	pricingKey(TextToVideo, "fal-ai/luma-dream-machine"):            {Tier: "standard", Price: "$0.50 / video", Source: "fal.ai pricing"},
	pricingKey(TextToVideo, "fal-ai/pixverse/v3.5/text-to-video"):   {Tier: "budget", Price: "$0.30 / video", Source: "fal.ai pricing"},
	pricingKey(TextToVideo, "fal-ai/hunyuan-video"):                 {Tier: "standard", Price: "$0.40 / video", Source: "fal.ai pricing"},
	pricingKey(TextToVideo, "fal-ai/ltx-video"):                     {Tier: "budget", Price: "$0.04 / video", Source: "fal.ai pricing"},
	pricingKey(ImageToVideo, "fal-ai/veo2/image-to-video"):          {Tier: "premium", Price: "$0.50 / second", Source: "fal.ai pricing"},
	pricingKey(ImageToVideo, "fal-ai/kling-video/v1.6/pro/image-to-video"): {Tier: "premium", Price: "$0.095 / second", Source: "fal.ai pricing"},
	pricingKey(ImageToVideo, "fal-ai/minimax/video-01/image-to-video"):     {Tier: "standard", Price: "$0.50 / video", Source: "fal.ai pricing"},
	pricingKey(ImageToVideo, "fal-ai/luma-dream-machine/image-to-video"):   {Tier: "standard", Price: "$0.50 / video", Source: "fal.ai pricing"},
	pricingKey(ImageToVideo, "fal-ai/stable-video"):                 {Tier: "budget", Price: "$0.075 / video", Source: "fal.ai pricing"},
	pricingKey(TextToAudio, "fal-ai/stable-audio"):                  {Tier: "budget", Price: "$0.01 / clip", Source: "fal.ai pricing"},
	pricingKey(TextToAudio, "fal-ai/mmaudio-v2/text-to-audio"):      {Tier: "budget", Price: "$0.05 / clip", Source: "fal.ai pricing"},
	pricingKey(TextToAudio, "fal-ai/minimax-music"):                 {Tier: "standard", Price: "$0.10 / track", Source: "fal.ai pricing"},
	pricingKey(TextToSpeech, "fal-ai/elevenlabs/tts/turbo-v2.5"):    {Tier: "standard", Price: "$0.10 / 1k chars", Source: "fal.ai pricing"},
	pricingKey(TextToSpeech, "fal-ai/playai/tts/v3"):                {Tier: "standard", Price: "$0.05 / 1k chars", Source: "fal.ai pricing"},
	pricingKey(TextToSpeech, "fal-ai/kokoro/american-english"):      {Tier: "budget", Price: "$0.02 / 1k chars", Source: "fal.ai pricing"},
	pricingKey(ImageToImage, "fal-ai/flux/dev/image-to-image"):      {Tier: "standard", Price: "$0.025 / image", Source: "fal.ai pricing"},
	pricingKey(ImageToImage, "fal-ai/clarity-upscaler"):             {Tier: "standard", Price: "$0.03 / megapixel", Source: "fal.ai pricing"},
	pricingKey(ImageToImage, "fal-ai/ideogram/v2/remix"):            {Tier: "premium", Price: "$0.08 / image", Source: "fal.ai pricing"},
	pricingKey(VideoToVideo, "fal-ai/video-upscaler"):               {Tier: "standard", Price: "$0.016 / second", Source: "fal.ai pricing"},
	pricingKey(VideoToVideo, "fal-ai/amt-interpolation"):            {Tier: "budget", Price: "$0.01 / second", Source: "fal.ai pricing"},
	pricingKey(VideoToVideo, "fal-ai/sync-lipsync"):                 {Tier: "standard", Price: "$0.30 / minute", Source: "fal.ai pricing"},
	pricingKey(ImageTo3D, "fal-ai/trellis"):                         {Tier: "standard", Price: "$0.05 / mesh", Source: "fal.ai pricing"},
	pricingKey(ImageTo3D, "fal-ai/hunyuan3d/v2"):                    {Tier: "standard", Price: "$0.15 / mesh", Source: "fal.ai pricing"},
	pricingKey(ImageTo3D, "fal-ai/hyper3d/rodin"):                   {Tier: "premium", Price: "$0.40 / mesh", Source: "fal.ai pricing"},
}
