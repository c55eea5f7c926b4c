package main

import (
	"context"
	"testing"

	"github.com/standexhq/standex"
	"github.com/standexhq/standex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)

		cmd := &DeleteCmd{Slug: "iso-21500"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, standex.EINVALID, standex.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes by slug", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		var deletedID string
		deps.Standards = &mock.StandardService{
			FindStandardBySlugFn: func(ctx context.Context, slug string) (*standex.Standard, error) {
				assert.Equal(t, "iso-21500", slug)
				return &standex.Standard{ID: "std-1", Slug: slug, Title: "ISO 21500"}, nil
			},
			DeleteStandardFn: func(ctx context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		cmd := &DeleteCmd{Slug: "iso-21500", Force: true}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "std-1", deletedID)
		assert.Contains(t, stdout.String(), `Deleted standard "ISO 21500"`)
	})

	t.Run("unknown slug suggests list", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)
		deps.Standards = &mock.StandardService{
			FindStandardBySlugFn: func(ctx context.Context, slug string) (*standex.Standard, error) {
				return nil, standex.Errorf(standex.ENOTFOUND, "standard not found")
			},
		}

		cmd := &DeleteCmd{Slug: "absent", Force: true}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, standex.ENOTFOUND, standex.ErrorCode(err))
		assert.Contains(t, stderr.String(), "standex list")
	})
}
