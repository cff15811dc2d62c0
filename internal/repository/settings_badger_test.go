package repository_test

import (
	"context"
	"testing"

	"pipeline_dashboard/internal/models"
	"pipeline_dashboard/internal/repository"
	"pipeline_dashboard/internal/repository/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsBadger_RoundTripAndOverwrite(t *testing.T) {
	bdb, err := db.OpenBadger("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bdb.Close() })

	repo := repository.NewBadgerRepository(bdb).Settings
	ctx := context.Background()

	got, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	assert.Nil(t, got, "missing document loads as nil")

	first := models.Credentials{CrmAccessToken: "t1", CrmLocationID: "l1", VoiceAPIKey: "k1"}
	require.NoError(t, repo.Save(ctx, "default", first))

	// overwrite drops VoiceAPIKey: whole-document semantics
	second := models.Credentials{CrmAccessToken: "t2", CrmLocationID: "l2"}
	require.NoError(t, repo.Save(ctx, "default", second))

	got, err = repo.Load(ctx, "default")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second, *got)

	other, err := repo.Load(ctx, "other-app")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestSettingsBadger_CanceledContext(t *testing.T) {
	bdb, err := db.OpenBadger("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bdb.Close() })

	repo := repository.NewSettingsBadger(bdb)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.Load(ctx, "default")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Save(ctx, "default", models.Credentials{}), context.Canceled)
}
