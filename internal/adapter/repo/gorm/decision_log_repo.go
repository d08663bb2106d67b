package gormrepo

import (
	"context"
	"encoding/json"

	"colonyplan/internal/adapter/repo/gorm/model"
	"colonyplan/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DecisionLogRepo struct {
	db *gorm.DB
}

func NewDecisionLogRepo(db *gorm.DB) DecisionLogRepo {
	return DecisionLogRepo{db: db}
}

func (r DecisionLogRepo) Append(ctx context.Context, rec ports.DecisionRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	row := model.DecisionEvent{
		Tick:         rec.Tick,
		Kind:         rec.Kind,
		BuildingType: rec.BuildingType,
		Outcome:      rec.Outcome,
		Payload:      payload,
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}

// ListRecent returns up to limit records, newest first.
func (r DecisionLogRepo) ListRecent(ctx context.Context, limit int) ([]ports.DecisionRecord, error) {
	rows := []model.DecisionEvent{}
	query := getDBFromCtx(ctx, r.db).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.DecisionRecord, 0, len(rows))
	for _, row := range rows {
		var rec ports.DecisionRecord
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &rec)
		}
		out = append(out, rec)
	}
	return out, nil
}
