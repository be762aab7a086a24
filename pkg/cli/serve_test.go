package cli_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/harsh2b/WellMate/pkg/cli"
	"github.com/harsh2b/WellMate/pkg/cli/config"
	"github.com/harsh2b/WellMate/pkg/repository/memory"
)

func TestSelectRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfigured store is fatal by default", func(t *testing.T) {
		var firestoreCfg config.Firestore
		repo, err := cli.SelectRepository(ctx, &firestoreCfg, false)
		gt.Error(t, err)
		gt.Nil(t, repo)
	})

	t.Run("memory store only on explicit opt-in", func(t *testing.T) {
		var firestoreCfg config.Firestore
		repo := gt.R1(cli.SelectRepository(ctx, &firestoreCfg, true)).NoError(t)
		gt.NotNil(t, repo)

		_, ok := repo.(*memory.Memory)
		gt.True(t, ok)
	})
}
