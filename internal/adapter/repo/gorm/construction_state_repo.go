package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"colonyplan/internal/adapter/repo/gorm/model"
	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/planning"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConstructionStateRepo struct {
	db *gorm.DB
}

func NewConstructionStateRepo(db *gorm.DB) ConstructionStateRepo {
	return ConstructionStateRepo{db: db}
}

func (r ConstructionStateRepo) Save(ctx context.Context, state planning.ConstructionState) error {
	plan, err := json.Marshal(state.Plan)
	if err != nil {
		return fmt.Errorf("marshal room plan: %w", err)
	}
	row := model.ConstructionState{
		RoomID:                   state.ID,
		Stage:                    string(state.Stage),
		Plan:                     plan,
		WallsBuilt:               int32(state.WallsBuilt),
		WallsTotal:               int32(state.WallsTotal),
		CriticalFurniturePlaced:  state.CriticalFurniturePlaced,
		SecondaryFurniturePlaced: state.SecondaryFurniturePlaced,
		CreatedAtTick:            state.CreatedAtTick,
		UpdatedAtTick:            state.UpdatedAtTick,
		CompletedAtTick:          state.CompletedAtTick,
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

func (r ConstructionStateRepo) ListActive(ctx context.Context) ([]planning.ConstructionState, error) {
	rows := []model.ConstructionState{}
	if err := getDBFromCtx(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]planning.ConstructionState, 0, len(rows))
	for _, row := range rows {
		var plan planning.ConstructionPlan
		if len(row.Plan) > 0 {
			if err := json.Unmarshal(row.Plan, &plan); err != nil {
				return nil, fmt.Errorf("unmarshal room plan %s: %w", row.RoomID, err)
			}
		}
		out = append(out, planning.ConstructionState{
			ID:                       row.RoomID,
			Plan:                     plan,
			Stage:                    planning.Stage(row.Stage),
			WallsBuilt:               int(row.WallsBuilt),
			WallsTotal:               int(row.WallsTotal),
			CriticalFurniturePlaced:  row.CriticalFurniturePlaced,
			SecondaryFurniturePlaced: row.SecondaryFurniturePlaced,
			CreatedAtTick:            row.CreatedAtTick,
			UpdatedAtTick:            row.UpdatedAtTick,
			CompletedAtTick:          row.CompletedAtTick,
		})
	}
	return out, nil
}

func (r ConstructionStateRepo) Delete(ctx context.Context, id string) error {
	res := getDBFromCtx(ctx, r.db).
		Where("room_id = ?", id).
		Delete(&model.ConstructionState{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
