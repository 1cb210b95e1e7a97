package directory

import (
	"context"
	"errors"
	"strings"

	"healthquest/internal/app/dispatch"
	"healthquest/internal/app/ports"
	"healthquest/internal/domain/catalog"
	"healthquest/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid directory request")

type UseCase struct {
	Catalog  *catalog.Catalog
	Dispatch dispatch.UseCase
}

func (u UseCase) Hospitals() []catalog.Hospital {
	return u.Catalog.Hospitals
}

// Doctors returns the full directory, or the hospital's doctors when a
// hospital id is given.
func (u UseCase) Doctors(hospitalID string) []catalog.Doctor {
	if strings.TrimSpace(hospitalID) == "" {
		return u.Catalog.Doctors
	}
	return u.Catalog.DoctorsByHospital(hospitalID)
}

func (u UseCase) DoctorByID(id string) (catalog.Doctor, error) {
	if d := u.Catalog.DoctorByID(id); d != nil {
		return *d, nil
	}
	return catalog.Doctor{}, ports.ErrNotFound
}

type BookRequest struct {
	SessionID string
	DoctorID  string
	Date      string
	Time      string
}

// Book dispatches the booking action. There is no appointment entity:
// success is a confirmation notification, and a doctor outside the
// session's available list is a silent no-op.
func (u UseCase) Book(ctx context.Context, req BookRequest) (dispatch.Response, error) {
	if strings.TrimSpace(req.SessionID) == "" ||
		strings.TrimSpace(req.DoctorID) == "" ||
		strings.TrimSpace(req.Date) == "" ||
		strings.TrimSpace(req.Time) == "" {
		return dispatch.Response{}, ErrInvalidRequest
	}
	return u.Dispatch.Execute(ctx, dispatch.Request{
		SessionID: req.SessionID,
		Action: game.Action{
			Kind: game.KindBookAppointment,
			Booking: &game.Booking{
				DoctorID: req.DoctorID,
				Date:     req.Date,
				Time:     req.Time,
			},
		},
	})
}
