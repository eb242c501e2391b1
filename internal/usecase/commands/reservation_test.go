//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/shared"
	"coworking-booking/tests/common/builder"
	commandsmock "coworking-booking/tests/mock/commands"
	sharedmock "coworking-booking/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	admin  = user.Principal{UserID: "admin", Role: user.RoleAdmin}
	maria  = user.Principal{UserID: "maria", Role: user.RoleClient, ClientID: "maria"}
	carlos = user.Principal{UserID: "carlos.silva", Role: user.RoleClient, ClientID: "carlos.silva"}
	now    = time.Date(2024, time.December, 15, 12, 0, 0, 0, time.UTC)
)

type fixture struct {
	uc       commands.ReservationCommands
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	repo     *sharedmock.MockReservationRepository
	notifier *commandsmock.MockNotifier
}

func newFixture(t *testing.T, policy commands.BookingPolicy) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		repo:     sharedmock.NewMockReservationRepository(ctrl),
		notifier: commandsmock.NewMockNotifier(ctrl),
	}
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.repo).AnyTimes()

	if policy.Location == nil {
		policy.Location = time.UTC
	}
	clk := clock.NewMockClock(now)
	factory := reservation.NewFactory(clk, reservation.NewDefaultPriceCalculator())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.uc = commands.NewReservationUseCase(f.uow, factory, f.notifier, clk, policy, logger)
	return f
}

func (f *fixture) directory(roomAvailable bool) {
	f.reads.EXPECT().RoomByID(gomock.Any(), "sala-1").Return(&shared.RoomSnapshot{
		ID: "sala-1", Name: "Sala Executiva A", Capacity: 6,
		HourlyRate: decimal.NewFromInt(80), Available: roomAvailable, AreaM2: 25,
	}, nil).AnyTimes()
	f.reads.EXPECT().RoomByID(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)).AnyTimes()
	f.reads.EXPECT().ClientByID(gomock.Any(), "maria").
		Return(&shared.ClientSnapshot{ID: "maria", Name: "Maria Fernanda Costa", Plan: "basic"}, nil).AnyTimes()
	f.reads.EXPECT().ClientByID(gomock.Any(), "carlos.silva").
		Return(&shared.ClientSnapshot{ID: "carlos.silva", Name: "Dr. Carlos Eduardo Silva", Plan: "full"}, nil).AnyTimes()
	f.reads.EXPECT().ClientByID(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("client not found", nil, infra.KindNotFound)).AnyTimes()
}

func input(clientID, start, end string) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ClientID:  clientID,
		RoomID:    "sala-1",
		Date:      "2024-12-20",
		StartTime: start,
		EndTime:   end,
	}
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("client booking starts pending at full price", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		f.repo.EXPECT().LockSlot(gomock.Any(), "sala-1", gomock.Any()).Return(nil)
		f.repo.EXPECT().FindByRoomAndDate(gomock.Any(), "sala-1", gomock.Any()).Return(nil, nil)
		var inserted *reservation.Reservation
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				inserted = res
				return nil
			})

		in := input("maria", "09:00", "11:00")
		in.Status = strPtr("confirmed")
		in.Notes = strPtr("  Reunião com cliente  ")
		view, err := f.uc.Create(ctx, in, maria)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, view.Status)
		assert.True(t, decimal.NewFromInt(160).Equal(view.TotalValue))
		assert.Equal(t, "Sala Executiva A", view.RoomName)
		assert.Equal(t, "Maria Fernanda Costa", view.ClientName)
		require.NotNil(t, view.Notes)
		assert.Equal(t, "Reunião com cliente", *view.Notes)
		assert.Equal(t, now, view.CreatedAt)
		require.NotNil(t, inserted)
		assert.Equal(t, view.ID, inserted.ID())
	})

	t.Run("admin booking defaults to confirmed and notifies full-plan clients", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		f.repo.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().FindByRoomAndDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n commands.Notification) error {
				assert.Equal(t, "carlos.silva", n.ClientID)
				assert.Equal(t, commands.UrgencyMedium, n.Urgency)
				assert.Contains(t, n.Message, "Sala Executiva A")
				assert.Contains(t, n.Message, "2024-12-20")
				return nil
			})

		view, err := f.uc.Create(ctx, input("carlos.silva", "09:00", "11:00"), admin)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, view.Status)
		assert.True(t, decimal.NewFromInt(128).Equal(view.TotalValue), view.TotalValue.String())
	})

	t.Run("admin may ask for pending", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		f.repo.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().FindByRoomAndDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		in := input("carlos.silva", "09:00", "11:00")
		in.Status = strPtr("pendente")
		view, err := f.uc.Create(ctx, in, admin)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, view.Status)
	})

	t.Run("admin cannot create a cancelled booking", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})

		in := input("maria", "09:00", "11:00")
		in.Status = strPtr("cancelled")
		_, err := f.uc.Create(ctx, in, admin)

		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})

	t.Run("overlapping slot is rejected with the holder's id", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		held := builder.NewReservationBuilder().WithID("res-held").WithSlot("09:00", "11:00").MustBuild()
		f.repo.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().FindByRoomAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*reservation.Reservation{held}, nil)

		_, err := f.uc.Create(ctx, input("maria", "09:30", "10:30"), maria)

		require.ErrorIs(t, err, reservation.ErrSchedulingConflict)
		var conflict *reservation.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "res-held", conflict.ReservationID)
	})

	t.Run("touching slots and cancelled holders do not conflict", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		before := builder.NewReservationBuilder().WithSlot("09:00", "11:00").MustBuild()
		cancelled := builder.NewReservationBuilder().WithSlot("11:00", "12:00").AsCancelled().MustBuild()
		f.repo.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().FindByRoomAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*reservation.Reservation{before, cancelled}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		view, err := f.uc.Create(ctx, input("maria", "11:00", "12:00"), maria)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(80).Equal(view.TotalValue))
	})

	t.Run("storage-level overlap maps to a scheduling conflict", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		f.repo.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().FindByRoomAndDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("reservation overlap", errors.New("exclusion violation"), infra.KindConflict))

		_, err := f.uc.Create(ctx, input("maria", "09:00", "11:00"), maria)

		assert.True(t, errs.Is(err, reservation.ErrSchedulingConflict), err)
	})

	t.Run("insert failure is a database failure", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		f.repo.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().FindByRoomAndDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert reservation", errors.New("conn reset")))

		_, err := f.uc.Create(ctx, input("maria", "09:00", "11:00"), maria)

		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), err)
	})

	t.Run("notification failure does not fail the booking", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		f.repo.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().FindByRoomAndDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := f.uc.Create(ctx, input("carlos.silva", "09:00", "11:00"), admin)

		assert.NoError(t, err)
	})

	t.Run("validation failures", func(t *testing.T) {
		testCases := []struct {
			name   string
			in     commands.CreateReservationInput
			actor  user.Principal
			target error
		}{
			{"end before start", input("maria", "11:00", "09:00"), maria, reservation.ErrInvalidInterval},
			{"equal times", input("maria", "09:00", "09:00"), maria, reservation.ErrInvalidInterval},
			{"off-grid time", input("maria", "09:15", "11:00"), maria, reservation.ErrInvalidInterval},
			{"bad date", func() commands.CreateReservationInput {
				in := input("maria", "09:00", "11:00")
				in.Date = "20/12/2024"
				return in
			}(), maria, calendar.ErrInvalidDateFormat},
			{"past date for a client", func() commands.CreateReservationInput {
				in := input("maria", "09:00", "11:00")
				in.Date = "2024-12-14"
				return in
			}(), maria, reservation.ErrPastDate},
			{"booking for another client", input("carlos.silva", "09:00", "11:00"), maria, commands.ErrForbidden},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t, commands.BookingPolicy{})
				_, err := f.uc.Create(ctx, tc.in, tc.actor)
				assert.True(t, errs.Is(err, tc.target), "got %v", err)
			})
		}
	})

	t.Run("missing fields are all listed", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})

		_, err := f.uc.Create(ctx, commands.CreateReservationInput{ClientID: "maria", Date: "2024-12-20"}, maria)

		var missing *reservation.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"roomId", "startTime", "endTime"}, missing.Fields)
	})

	t.Run("admin may book in the past", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		f.repo.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().FindByRoomAndDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		in := input("maria", "09:00", "11:00")
		in.Date = "2024-12-01"
		_, err := f.uc.Create(ctx, in, admin)

		assert.NoError(t, err)
	})

	t.Run("directory failures", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(false)

		_, err := f.uc.Create(ctx, input("maria", "09:00", "11:00"), maria)
		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)

		in := input("maria", "09:00", "11:00")
		in.RoomID = "sala-9"
		_, err = f.uc.Create(ctx, in, maria)
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("unknown client", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)

		_, err := f.uc.Create(ctx, input("ghost", "09:00", "11:00"), admin)
		assert.ErrorIs(t, err, commands.ErrClientNotFound)
	})

	t.Run("full-plan-only policy rejects other plans", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{FullPlanOnly: true})
		f.directory(true)

		_, err := f.uc.Create(ctx, input("maria", "09:00", "11:00"), maria)
		assert.ErrorIs(t, err, commands.ErrPlanNotEligible)
	})

	t.Run("full-plan-only policy admits full-plan clients", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{FullPlanOnly: true})
		f.directory(true)
		f.repo.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().FindByRoomAndDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.uc.Create(ctx, input("carlos.silva", "09:00", "11:00"), carlos)
		assert.NoError(t, err)
	})
}

func TestChangeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("confirming a full-plan booking notifies the client", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		res := builder.NewReservationBuilder().WithID("res-1").WithClientID("carlos.silva").MustBuild()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), "res-1").Return(res, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), res).Return(nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		view, err := f.uc.ChangeStatus(ctx, "res-1", commands.ChangeStatusInput{Status: "confirmada"})

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, view.Status)
		assert.Equal(t, "Dr. Carlos Eduardo Silva", view.ClientName)
		assert.Equal(t, now, view.UpdatedAt)
	})

	t.Run("basic-plan confirmation is silent", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		res := builder.NewReservationBuilder().WithID("res-1").MustBuild()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), "res-1").Return(res, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), res).Return(nil)

		view, err := f.uc.ChangeStatus(ctx, "res-1", commands.ChangeStatusInput{Status: "confirmed"})

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, view.Status)
	})

	t.Run("notes-only update keeps the status", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.directory(true)
		res := builder.NewReservationBuilder().WithID("res-1").MustBuild()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), "res-1").Return(res, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), res).Return(nil)

		view, err := f.uc.ChangeStatus(ctx, "res-1", commands.ChangeStatusInput{Notes: strPtr("Trazer projetor")})

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, view.Status)
		require.NotNil(t, view.Notes)
		assert.Equal(t, "Trazer projetor", *view.Notes)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		res := builder.NewReservationBuilder().WithID("res-1").AsCancelled().MustBuild()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), "res-1").Return(res, nil)

		_, err := f.uc.ChangeStatus(ctx, "res-1", commands.ChangeStatusInput{Status: "confirmed"})

		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})

		_, err := f.uc.ChangeStatus(ctx, "res-1", commands.ChangeStatusInput{Status: "done"})

		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})

		_, err := f.uc.ChangeStatus(ctx, "res-1", commands.ChangeStatusInput{})

		assert.ErrorIs(t, err, reservation.ErrMissingField)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), "missing").
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := f.uc.ChangeStatus(ctx, "missing", commands.ChangeStatusInput{Status: "confirmed"})

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.repo.EXPECT().Delete(gomock.Any(), "res-1").Return(nil)

		assert.NoError(t, f.uc.Delete(ctx, "res-1"))
	})

	t.Run("unknown id is already deleted", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.repo.EXPECT().Delete(gomock.Any(), "missing").
			Return(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		assert.NoError(t, f.uc.Delete(ctx, "missing"))
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t, commands.BookingPolicy{})
		f.repo.EXPECT().Delete(gomock.Any(), "res-1").
			Return(infra.WrapRepoErr("delete reservation", errors.New("conn reset")))

		err := f.uc.Delete(ctx, "res-1")

		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), err)
	})
}
