package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"colonyplan/internal/app/plan"
	"colonyplan/internal/app/ports"
	"colonyplan/internal/app/track"
	"colonyplan/internal/domain/catalog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	Planner   *plan.UseCase
	Tracker   *track.Manager
	Decisions ports.DecisionLogRepository
	Tx        ports.TxManager
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	planner := s.Group("/api/planner")
	planner.POST("/tick", h.tick)
	planner.POST("/request", h.request)
	planner.GET("/constructions", h.constructions)
	planner.GET("/decisions", h.decisions)
	planner.POST("/rooms/furnish", h.furnish)

	s.GET("/ops/kpi", h.kpi)
}

type tickRequest struct {
	Tick  int64  `json:"tick"`
	Stage string `json:"stage,omitempty"`
}

type placementRequest struct {
	BuildingType string `json:"building_type"`
	Tick         int64  `json:"tick"`
}

type furnishRequest struct {
	RoomID string `json:"room_id"`
	Set    string `json:"set"`
}

var ErrInvalidStage = errors.New("unknown development stage")
var ErrInvalidFurnitureSet = errors.New("set must be critical or secondary")

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	var body tickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	stage, err := parseStage(body.Stage)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var resp plan.TickResponse
	err = h.Tx.RunInTx(c, func(txCtx context.Context) error {
		resp = h.Planner.RunTick(txCtx, plan.TickRequest{Tick: body.Tick, Stage: stage})
		return nil
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) request(c context.Context, ctx *app.RequestContext) {
	var body placementRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.BuildingType == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_building_type", "building_type is required")
		return
	}

	var resp plan.TickResponse
	err := h.Tx.RunInTx(c, func(txCtx context.Context) error {
		resp = h.Planner.RequestPlacement(txCtx, body.BuildingType, body.Tick)
		return nil
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) constructions(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{
		"constructions": h.Tracker.Active(),
	})
}

func (h Handler) decisions(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	records, err := h.Decisions.ListRecent(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"decisions": records,
	})
}

func (h Handler) furnish(_ context.Context, ctx *app.RequestContext) {
	var body furnishRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	var err error
	switch body.Set {
	case "critical":
		err = h.Tracker.MarkCriticalFurniture(body.RoomID)
	case "secondary":
		err = h.Tracker.MarkSecondaryFurniture(body.RoomID)
	default:
		err = ErrInvalidFurnitureSet
	}
	if err != nil {
		writeError(ctx, err)
		return
	}
	state, _ := h.Tracker.Get(body.RoomID)
	ctx.JSON(consts.StatusOK, state)
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

// parseStage defaults to early game when the caller omits the stage.
func parseStage(s string) (catalog.DevelopmentStage, error) {
	switch catalog.DevelopmentStage(s) {
	case "":
		return catalog.StageEarly, nil
	case catalog.StageEarly, catalog.StageMid, catalog.StageLate:
		return catalog.DevelopmentStage(s), nil
	default:
		return "", ErrInvalidStage
	}
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
	case errors.Is(err, ErrInvalidStage):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_stage", err.Error())
	case errors.Is(err, ErrInvalidFurnitureSet):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_furniture_set", err.Error())
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
