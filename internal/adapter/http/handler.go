package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"healthquest/internal/app/directory"
	"healthquest/internal/app/dispatch"
	"healthquest/internal/app/ports"
	"healthquest/internal/app/session"
	"healthquest/internal/app/stateview"
	appTriage "healthquest/internal/app/triage"
	"healthquest/internal/domain/catalog"
	"healthquest/internal/domain/game"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	SessionUC   session.UseCase
	DispatchUC  dispatch.UseCase
	TriageUC    appTriage.UseCase
	DirectoryUC directory.UseCase
	Events      ports.EventRepository
	Catalog     *catalog.Catalog
	EventLimit  int
	KPI         kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/session", h.createSession)
	api.GET("/session/:id", h.getSession)
	api.POST("/session/:id/action", h.action)
	api.POST("/session/:id/triage", h.triage)
	api.POST("/session/:id/book", h.book)
	api.GET("/session/:id/events", h.events)

	api.POST("/triage/preview", h.triagePreview)

	api.GET("/directory/hospitals", h.hospitals)
	api.GET("/directory/doctors", h.doctors)
	api.GET("/directory/doctors/:id", h.doctorByID)

	s.GET("/ops/kpi", h.kpi)
}

type sessionResponse struct {
	State game.State     `json:"state"`
	View  stateview.View `json:"view"`
}

type dispatchResponse struct {
	State  game.State     `json:"state"`
	View   stateview.View `json:"view"`
	Events []game.Event   `json:"events"`
}

type actionRequest struct {
	Kind       string           `json:"kind"`
	X          *float64         `json:"x,omitempty"`
	Y          *float64         `json:"y,omitempty"`
	ZoneID     string           `json:"zone_id,omitempty"`
	HPDelta    int              `json:"hp_delta,omitempty"`
	QuestID    int              `json:"quest_id,omitempty"`
	Progress   int              `json:"progress,omitempty"`
	XP         int              `json:"xp,omitempty"`
	Message    string           `json:"message,omitempty"`
	Index      int              `json:"index,omitempty"`
	HospitalID string           `json:"hospital_id,omitempty"`
	DoctorID   string           `json:"doctor_id,omitempty"`
	Symptom    string           `json:"symptom,omitempty"`
	Assessment *game.Assessment `json:"assessment,omitempty"`
	Booking    *game.Booking    `json:"booking,omitempty"`
}

type triageRequest struct {
	Symptoms []string `json:"symptoms"`
}

type bookRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func (h Handler) createSession(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SessionUC.Create(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, sessionResponse{
		State: resp.State,
		View:  stateview.Derive(resp.State),
	})
}

func (h Handler) getSession(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SessionUC.Get(c, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, sessionResponse{
		State: resp.State,
		View:  stateview.Derive(resp.State),
	})
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.DispatchUC.Execute(c, dispatch.Request{
		SessionID: ctx.Param("id"),
		Action:    h.toAction(body),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, dispatchResponse{
		State:  resp.State,
		View:   stateview.Derive(resp.State),
		Events: resp.Events,
	})
}

// toAction resolves catalog ids into the payload objects the transition
// reads. An id with no catalog entry leaves the field nil, which the
// transition treats as a no-op.
func (h Handler) toAction(body actionRequest) game.Action {
	a := game.Action{
		Kind:       game.Kind(body.Kind),
		HPDelta:    body.HPDelta,
		QuestID:    body.QuestID,
		Progress:   body.Progress,
		XP:         body.XP,
		Message:    body.Message,
		Index:      body.Index,
		Symptom:    body.Symptom,
		Assessment: body.Assessment,
		Booking:    body.Booking,
	}
	if body.X != nil && body.Y != nil {
		a.Position = &catalog.Position{X: *body.X, Y: *body.Y}
	}
	if body.ZoneID != "" {
		a.Zone = h.Catalog.ZoneByID(body.ZoneID)
	}
	if body.HospitalID != "" {
		a.Hospital = h.Catalog.HospitalByID(body.HospitalID)
	}
	if body.DoctorID != "" {
		a.Doctor = h.Catalog.DoctorByID(body.DoctorID)
	}
	return a
}

func (h Handler) triage(c context.Context, ctx *app.RequestContext) {
	resp, err := h.TriageUC.Execute(c, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"state":  resp.State,
		"view":   stateview.Derive(resp.State),
		"result": resp.Result,
	})
}

func (h Handler) triagePreview(c context.Context, ctx *app.RequestContext) {
	var body triageRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	ctx.JSON(consts.StatusOK, h.TriageUC.Preview(body.Symptoms))
}

func (h Handler) book(c context.Context, ctx *app.RequestContext) {
	var body bookRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.DirectoryUC.Book(c, directory.BookRequest{
		SessionID: ctx.Param("id"),
		DoctorID:  body.DoctorID,
		Date:      body.Date,
		Time:      body.Time,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, dispatchResponse{
		State:  resp.State,
		View:   stateview.Derive(resp.State),
		Events: resp.Events,
	})
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	limit := h.EventLimit
	if q := string(ctx.Query("limit")); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}
	events, err := h.Events.ListBySessionID(c, ctx.Param("id"), limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"events": events})
}

func (h Handler) hospitals(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"hospitals": h.DirectoryUC.Hospitals()})
}

func (h Handler) doctors(_ context.Context, ctx *app.RequestContext) {
	doctors := h.DirectoryUC.Doctors(string(ctx.Query("hospital_id")))
	ctx.JSON(consts.StatusOK, map[string]any{"doctors": doctors})
}

func (h Handler) doctorByID(_ context.Context, ctx *app.RequestContext) {
	doctor, err := h.DirectoryUC.DoctorByID(ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, doctor)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, session.ErrInvalidRequest),
		errors.Is(err, dispatch.ErrInvalidRequest),
		errors.Is(err, appTriage.ErrInvalidRequest),
		errors.Is(err, directory.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
