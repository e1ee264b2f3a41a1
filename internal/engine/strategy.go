package engine

import (
	"time"

	"github.com/draftbox/mediaroute/internal/catalog"
)

// Protocol selects how a job reaches the backend.
type Protocol string

const (
	// ProtocolSubscribe issues one blocking call that returns the result.
	ProtocolSubscribe Protocol = "subscribe"
	// ProtocolQueue submits the job, then polls status until terminal.
	ProtocolQueue Protocol = "queue"
)

// Strategy is the static submission plan for one model: which protocol to
// use and, for queued jobs, how patiently to poll. The poll budget is a
// hard cap; the job fails with a timeout once it is spent.
type Strategy struct {
	Protocol     Protocol
	PollInterval time.Duration
	MaxPolls     int
}

// operationStrategies are the family defaults. Fast families answer a
// single blocking call; edits and heavier synthesis go through the queue.
var operationStrategies = map[catalog.Operation]Strategy{
	catalog.TextToImage:  {Protocol: ProtocolSubscribe},
	catalog.TextToAudio:  {Protocol: ProtocolSubscribe},
	catalog.TextToSpeech: {Protocol: ProtocolSubscribe},
	catalog.TextToVideo:  {Protocol: ProtocolSubscribe},

	catalog.ImageToImage: {Protocol: ProtocolQueue, PollInterval: time.Second, MaxPolls: 30},
	catalog.VideoToVideo: {Protocol: ProtocolQueue, PollInterval: time.Second, MaxPolls: 60},
	catalog.ImageToVideo: {Protocol: ProtocolQueue, PollInterval: time.Second, MaxPolls: 300},
	catalog.ImageTo3D:    {Protocol: ProtocolQueue, PollInterval: 2 * time.Second, MaxPolls: 300},
}

// modelStrategies overrides the family default for models known to run
// longer than their siblings.
var modelStrategies = map[string]Strategy{
	"fal-ai/veo2":                                   {Protocol: ProtocolQueue, PollInterval: time.Second, MaxPolls: 300},
	"fal-ai/hunyuan-video":                          {Protocol: ProtocolQueue, PollInterval: time.Second, MaxPolls: 300},
	"fal-ai/kling-video/v2/master/text-to-video":    {Protocol: ProtocolQueue, PollInterval: time.Second, MaxPolls: 300},
	"fal-ai/minimax/video-01-live":                  {Protocol: ProtocolQueue, PollInterval: time.Second, MaxPolls: 300},
	"fal-ai/mochi-v1":                               {Protocol: ProtocolQueue, PollInterval: time.Second, MaxPolls: 300},

	"fal-ai/minimax-music": {Protocol: ProtocolQueue, PollInterval: time.Second, MaxPolls: 120},
	"fal-ai/diffrhythm":    {Protocol: ProtocolQueue, PollInterval: time.Second, MaxPolls: 120},
	"fal-ai/yue":           {Protocol: ProtocolQueue, PollInterval: 2 * time.Second, MaxPolls: 300},
}

// StrategyFor resolves the submission plan for a model: the model override
// wins, then the operation default, then plain subscribe.
func StrategyFor(op catalog.Operation, modelID string) Strategy {
	if s, ok := modelStrategies[modelID]; ok {
		return s
	}
	if s, ok := operationStrategies[op]; ok {
		return s
	}
	return Strategy{Protocol: ProtocolSubscribe}
}
