//go:build unit

package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"coworking-booking/internal/infra/cache"
	"coworking-booking/internal/usecase/shared"
	sharedmock "coworking-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUnitOfWork_CommandReads(t *testing.T) {
	ctx := context.Background()

	t.Run("second room lookup is served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		reads := sharedmock.NewMockCommandReads(ctrl)
		uow.EXPECT().CommandReads().Return(reads)
		reads.EXPECT().RoomByID(gomock.Any(), "sala-1").
			Return(&shared.RoomSnapshot{ID: "sala-1", Name: "Sala Executiva A"}, nil).
			Times(1)

		cached := cache.NewUnitOfWork(uow, 8, time.Minute, discardLogger())
		for i := 0; i < 3; i++ {
			rm, err := cached.CommandReads().RoomByID(ctx, "sala-1")
			require.NoError(t, err)
			assert.Equal(t, "Sala Executiva A", rm.Name)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		reads := sharedmock.NewMockCommandReads(ctrl)
		uow.EXPECT().CommandReads().Return(reads)
		lookupErr := errors.New("boom")
		reads.EXPECT().ClientByID(gomock.Any(), "maria").Return(nil, lookupErr)
		reads.EXPECT().ClientByID(gomock.Any(), "maria").Return(&shared.ClientSnapshot{ID: "maria", Plan: "basic"}, nil)

		cached := cache.NewUnitOfWork(uow, 8, time.Minute, discardLogger())
		_, err := cached.CommandReads().ClientByID(ctx, "maria")
		assert.ErrorIs(t, err, lookupErr)

		cl, err := cached.CommandReads().ClientByID(ctx, "maria")
		require.NoError(t, err)
		assert.Equal(t, "basic", cl.Plan)
	})

	t.Run("purge forces a reload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		reads := sharedmock.NewMockCommandReads(ctrl)
		uow.EXPECT().CommandReads().Return(reads)
		reads.EXPECT().RoomByID(gomock.Any(), "sala-2").Return(&shared.RoomSnapshot{ID: "sala-2"}, nil).Times(2)

		cached := cache.NewUnitOfWork(uow, 8, time.Minute, discardLogger())
		_, err := cached.CommandReads().RoomByID(ctx, "sala-2")
		require.NoError(t, err)
		cached.Purge()
		_, err = cached.CommandReads().RoomByID(ctx, "sala-2")
		require.NoError(t, err)
	})

	t.Run("within passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		uow.EXPECT().CommandReads().Return(sharedmock.NewMockCommandReads(ctrl))
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(nil)

		cached := cache.NewUnitOfWork(uow, 8, time.Minute, discardLogger())
		err := cached.Within(ctx, func(context.Context, shared.Tx) error { return nil })
		assert.NoError(t, err)
	})
}
