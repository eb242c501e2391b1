package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/client"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/domain/room"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/mock_reservation.go -package=commands

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrClientNotFound          = errs.New("client not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrRoomUnavailable         = errs.New("room is not available for booking")
	ErrPlanNotEligible         = errs.New("client plan does not include room booking")
	ErrForbidden               = errs.New("cannot act on behalf of another client")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationInput struct {
	ClientID  string
	RoomID    string
	Date      string
	StartTime string
	EndTime   string
	Notes     *string
	Status    *string
}

type ChangeStatusInput struct {
	Status string
	Notes  *string
}

type BookingPolicy struct {
	// Location decides what "today" is for the past-date check.
	Location *time.Location
	// FullPlanOnly restricts self-service booking to full-plan clients.
	FullPlanOnly bool
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput, actor user.Principal) (*queries.ReservationView, error)
	ChangeStatus(ctx context.Context, id string, in ChangeStatusInput) (*queries.ReservationView, error)
	Delete(ctx context.Context, id string) error
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	factory  *reservation.Factory
	notifier Notifier
	clock    clock.Clock
	policy   BookingPolicy
	logger   *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	notifier Notifier,
	clk clock.Clock,
	policy BookingPolicy,
	logger *slog.Logger,
) ReservationCommands {
	if policy.Location == nil {
		policy.Location = time.Local
	}
	return &reservationUseCaseImpl{
		uow:      uow,
		factory:  factory,
		notifier: notifier,
		clock:    clk,
		policy:   policy,
		logger:   logger,
	}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, in CreateReservationInput, actor user.Principal) (*queries.ReservationView, error) {
	if err := checkRequired(in); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && actor.ClientID != strings.TrimSpace(in.ClientID) {
		return nil, ErrForbidden
	}

	slot, err := uc.parseSlot(in)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && slot.Date().Before(calendar.Today(uc.clock, uc.policy.Location)) {
		return nil, reservation.ErrPastDate
	}

	status, err := initialStatus(in.Status, actor)
	if err != nil {
		return nil, err
	}

	roomEntity, err := uc.loadRoom(ctx, strings.TrimSpace(in.RoomID))
	if err != nil {
		return nil, err
	}
	if !roomEntity.Available() {
		return nil, ErrRoomUnavailable
	}

	clientEntity, err := uc.loadClient(ctx, strings.TrimSpace(in.ClientID))
	if err != nil {
		return nil, err
	}
	if uc.policy.FullPlanOnly && !actor.IsAdmin() && !clientEntity.CanSelfBook() {
		return nil, ErrPlanNotEligible
	}

	note := reservation.NewNote("")
	if in.Notes != nil {
		note = reservation.NewNote(strings.TrimSpace(*in.Notes))
	}

	res, err := uc.factory.CreateReservation(roomEntity, clientEntity, slot, status, note)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Reservations()
		if lockErr := repo.LockSlot(ctx, res.RoomID(), res.Date()); lockErr != nil {
			return translateRepoErr(lockErr, ErrReservationNotFound)
		}

		existing, findErr := repo.FindByRoomAndDate(ctx, res.RoomID(), res.Date())
		if findErr != nil {
			return translateRepoErr(findErr, ErrReservationNotFound)
		}
		if held := reservation.FindConflict(existing, res.RoomID(), res.Date(), res.Start(), res.End(), ""); held != nil {
			return &reservation.ConflictError{ReservationID: held.ID()}
		}

		if insErr := repo.Insert(ctx, res); insErr != nil {
			return translateRepoErr(insErr, ErrReservationNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, uc.classify(err, "create reservation")
	}

	uc.logger.Info("reservation created",
		"reservation_id", res.ID(),
		"room_id", res.RoomID(),
		"date", res.Date().String(),
		"status", res.Status().String())

	if res.Status() == reservation.StatusConfirmed && clientEntity.Plan() == client.PlanFull {
		uc.notifyConfirmed(ctx, res, roomEntity.Name())
	}

	return queries.NewReservationView(res, roomEntity.Name(), clientEntity.Name()), nil
}

func (uc *reservationUseCaseImpl) ChangeStatus(ctx context.Context, id string, in ChangeStatusInput) (*queries.ReservationView, error) {
	var next reservation.Status
	if strings.TrimSpace(in.Status) != "" {
		parsed, err := reservation.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		next = parsed
	} else if in.Notes == nil {
		return nil, &reservation.MissingFieldError{Fields: []string{"status"}}
	}

	var updated *reservation.Reservation
	var previous reservation.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, findErr := tx.Reservations().FindByIDForUpdate(ctx, id)
		if findErr != nil {
			return translateRepoErr(findErr, ErrReservationNotFound)
		}
		previous = res.Status()

		now := uc.clock.Now()
		if next != "" {
			if trErr := res.TransitionTo(next, now); trErr != nil {
				return trErr
			}
		}
		if in.Notes != nil {
			res.UpdateNote(reservation.NewNote(strings.TrimSpace(*in.Notes)), now)
		}

		if upErr := tx.Reservations().UpdateStatus(ctx, res); upErr != nil {
			return translateRepoErr(upErr, ErrReservationNotFound)
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, uc.classify(err, "change reservation status")
	}

	uc.logger.Info("reservation status changed",
		"reservation_id", updated.ID(),
		"from", previous.String(),
		"to", updated.Status().String())

	roomName, clientName, plan := uc.describe(ctx, updated)
	if previous != reservation.StatusConfirmed && updated.Status() == reservation.StatusConfirmed && plan == client.PlanFull {
		uc.notifyConfirmed(ctx, updated, roomName)
	}

	return queries.NewReservationView(updated, roomName, clientName), nil
}

// Delete is idempotent: an unknown id is treated as already deleted.
func (uc *reservationUseCaseImpl) Delete(ctx context.Context, id string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if delErr := tx.Reservations().Delete(ctx, id); delErr != nil {
			if infra.IsKind(delErr, infra.KindNotFound) {
				return nil
			}
			return translateRepoErr(delErr, ErrReservationNotFound)
		}
		return nil
	})
	if err != nil {
		return uc.classify(err, "delete reservation")
	}
	uc.logger.Info("reservation deleted", "reservation_id", id)
	return nil
}

func checkRequired(in CreateReservationInput) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"clientId", in.ClientID},
		{"roomId", in.RoomID},
		{"date", in.Date},
		{"startTime", in.StartTime},
		{"endTime", in.EndTime},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &reservation.MissingFieldError{Fields: missing}
	}
	return nil
}

// parseSlot checks the interval before the date.
func (uc *reservationUseCaseImpl) parseSlot(in CreateReservationInput) (reservation.TimeSlot, error) {
	start, err := calendar.ParseTimeOfDay(strings.TrimSpace(in.StartTime))
	if err != nil {
		return reservation.TimeSlot{}, errs.Mark(errs.Wrap(err, "startTime"), reservation.ErrInvalidInterval)
	}
	end, err := calendar.ParseTimeOfDay(strings.TrimSpace(in.EndTime))
	if err != nil {
		return reservation.TimeSlot{}, errs.Mark(errs.Wrap(err, "endTime"), reservation.ErrInvalidInterval)
	}
	if !start.Before(end) {
		return reservation.TimeSlot{}, reservation.ErrInvalidInterval
	}

	date, err := calendar.ParseCivilDate(strings.TrimSpace(in.Date))
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	return reservation.NewTimeSlot(date, start, end)
}

// Self-service bookings always start pending. Admins may pick pending or
// confirmed and default to confirmed.
func initialStatus(requested *string, actor user.Principal) (reservation.Status, error) {
	if !actor.IsAdmin() {
		return reservation.StatusPending, nil
	}
	if requested == nil || strings.TrimSpace(*requested) == "" {
		return reservation.StatusConfirmed, nil
	}
	st, err := reservation.ParseStatus(*requested)
	if err != nil {
		return "", err
	}
	if st != reservation.StatusPending && st != reservation.StatusConfirmed {
		return "", reservation.ErrInvalidTransition
	}
	return st, nil
}

func (uc *reservationUseCaseImpl) loadRoom(ctx context.Context, id string) (*room.Room, error) {
	snap, err := uc.uow.CommandReads().RoomByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err, ErrRoomNotFound)
	}
	return room.ReconstructRoom(snap.ID, snap.Name, snap.Capacity, snap.HourlyRate, snap.Amenities, snap.Available, snap.AreaM2), nil
}

func (uc *reservationUseCaseImpl) loadClient(ctx context.Context, id string) (*client.Client, error) {
	snap, err := uc.uow.CommandReads().ClientByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err, ErrClientNotFound)
	}
	plan, err := client.ParsePlanTier(snap.Plan)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, fmt.Sprintf("client %s has plan %q", snap.ID, snap.Plan)), ErrDatabaseOperationFailed)
	}
	return client.ReconstructClient(snap.ID, snap.Name, snap.Email, snap.Phone, plan), nil
}

// describe looks up display names after a status change. Failures only
// leave the names blank.
func (uc *reservationUseCaseImpl) describe(ctx context.Context, res *reservation.Reservation) (roomName, clientName string, plan client.PlanTier) {
	if rm, err := uc.uow.CommandReads().RoomByID(ctx, res.RoomID()); err == nil {
		roomName = rm.Name
	} else {
		uc.logger.Warn("room lookup failed", "room_id", res.RoomID(), "error", err.Error())
	}
	if cl, err := uc.uow.CommandReads().ClientByID(ctx, res.ClientID()); err == nil {
		clientName = cl.Name
		plan, _ = client.ParsePlanTier(cl.Plan)
	} else {
		uc.logger.Warn("client lookup failed", "client_id", res.ClientID(), "error", err.Error())
	}
	return roomName, clientName, plan
}

func (uc *reservationUseCaseImpl) notifyConfirmed(ctx context.Context, res *reservation.Reservation, roomName string) {
	if uc.notifier == nil {
		return
	}
	n := Notification{
		ClientID: res.ClientID(),
		Title:    "Reserva confirmada",
		Message: fmt.Sprintf("Sua reserva da %s em %s das %s às %s foi confirmada.",
			roomName, res.Date().String(), res.Start().String(), res.End().String()),
		Kind:    "reserva",
		Urgency: UrgencyMedium,
	}
	if err := uc.notifier.Notify(ctx, n); err != nil {
		uc.logger.Warn("failed to send reservation notification",
			"reservation_id", res.ID(),
			"client_id", res.ClientID(),
			"error", err.Error())
	}
}

func translateRepoErr(err error, notFound error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, reservation.ErrSchedulingConflict)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

var expectedErrors = []error{
	reservation.ErrSchedulingConflict,
	reservation.ErrInvalidTransition,
	reservation.ErrInvalidStatus,
	reservation.ErrMissingField,
	ErrReservationNotFound,
	ErrRoomNotFound,
	ErrClientNotFound,
	ErrDatabaseOperationFailed,
}

// classify lets expected outcomes through and marks anything else
// (begin/commit failures, context errors) as a database failure.
func (uc *reservationUseCaseImpl) classify(err error, op string) error {
	for _, target := range expectedErrors {
		if errs.Is(err, target) {
			return err
		}
	}
	uc.logger.Error("reservation "+op+" failed", "error", err.Error())
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
