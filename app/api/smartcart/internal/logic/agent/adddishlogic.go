// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package agent

import (
	"context"
	"strings"

	"SmartCart/app/api/smartcart/internal/svc"
	"SmartCart/app/api/smartcart/internal/types"
	"SmartCart/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AddDishLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddDishLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddDishLogic {
	return &AddDishLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// AddDish resolves a dish into its ingredient list via the web-search tool,
// then runs search-and-add once per ingredient.
func (l *AddDishLogic) AddDish(req *types.AddDishRequest) (resp *types.AddDishResponse, err error) {
	if req == nil || strings.TrimSpace(req.Dish) == "" {
		return nil, errors.New(errno.InvalidParam, "empty dish name")
	}

	ingredients, err := l.svcCtx.Search.SearchIngredients(l.ctx, strings.TrimSpace(req.Dish))
	if err != nil {
		l.Logger.Errorf("ingredient search for %q failed: %v", req.Dish, err)
		return &types.AddDishResponse{
			StatusCode: errno.SearchUnavailable,
			StatusMsg:  "ingredient search unavailable",
		}, nil
	}

	outcomes, err := l.svcCtx.Executor.AddIngredients(l.ctx, ingredients)
	if err != nil {
		l.Logger.Errorf("add ingredients for %q failed: %v", req.Dish, err)
		return nil, err
	}

	resp = &types.AddDishResponse{
		StatusCode:  errno.StatusOK,
		StatusMsg:   "ok",
		Ingredients: ingredients,
		Outcomes:    outcomes,
	}

	return
}
