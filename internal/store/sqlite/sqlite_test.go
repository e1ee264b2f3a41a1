package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftbox/mediaroute/internal/store"
	"github.com/draftbox/mediaroute/internal/store/model"
)

func newTestRepo(t *testing.T) *SqliteRepository {
	t.Helper()
	repo, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo.(*SqliteRepository)
}

func sampleLog(op, modelID, status string) *model.GenerationLog {
	return &model.GenerationLog{
		ID:        uuid.NewString(),
		Operation: op,
		ModelID:   modelID,
		Status:    status,
		LatencyMS: 1200,
		ResultURL: "https://cdn.example/out.png",
		CreatedAt: time.Now().UTC(),
	}
}

func TestGenerationRepo_LogAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entry := sampleLog("text-to-image", "fal-ai/flux-1/schnell", model.StatusCompleted)
	entry.PollCount = 4
	entry.Brand = "acme"
	require.NoError(t, repo.Generations().Log(ctx, entry))

	got, err := repo.Generations().GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ModelID, got.ModelID)
	assert.Equal(t, 4, got.PollCount)
	assert.Equal(t, "acme", got.Brand)
}

func TestGenerationRepo_GetRecentFiltersByOperation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Generations().Log(ctx, sampleLog("text-to-image", "fal-ai/flux/dev", model.StatusCompleted)))
	require.NoError(t, repo.Generations().Log(ctx, sampleLog("text-to-video", "fal-ai/veo2", model.StatusFailed)))

	all, err := repo.Generations().GetRecent(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	videos, err := repo.Generations().GetRecent(ctx, "text-to-video", 10)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "fal-ai/veo2", videos[0].ModelID)
}

func TestGenerationRepo_DailyStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Generations().Log(ctx, sampleLog("text-to-image", "fal-ai/flux-1/schnell", model.StatusCompleted)))
	failed := sampleLog("text-to-image", "fal-ai/flux-1/schnell", model.StatusFailed)
	failed.ErrorKind = "timeout"
	require.NoError(t, repo.Generations().Log(ctx, failed))

	stats, err := repo.Generations().GetDailyStats(ctx, 7)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(2), stats[0].Total)
	assert.Equal(t, int64(1), stats[0].Failed)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entry := sampleLog("text-to-image", "fal-ai/flux-1/schnell", model.StatusCompleted)
	err := repo.WithTx(ctx, func(tx store.Repository) error {
		if err := tx.Generations().Log(ctx, entry); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = repo.Generations().GetByID(ctx, entry.ID)
	assert.Error(t, err)
}
