// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"
	"strings"

	"SmartCart/app/api/smartcart/internal/svc"
	"SmartCart/app/api/smartcart/internal/types"
	"SmartCart/app/common/consts/errno"
	"SmartCart/app/dal/cartitem"
	"SmartCart/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SwapCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSwapCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SwapCartItemLogic {
	return &SwapCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SwapCartItem repoints a cart line at another product by exact
// case-insensitive name, keeping the quantity.
func (l *SwapCartItemLogic) SwapCartItem(req *types.SwapCartItemRequest) (resp *types.SwapCartItemResponse, err error) {
	if req == nil || req.CartItemId <= 0 || strings.TrimSpace(req.Alternative) == "" {
		return nil, errors.New(errno.InvalidParam, "invalid swap payload")
	}

	line, err := l.svcCtx.CartItemsModel.FindOne(l.ctx, req.CartItemId)
	if err == cartitem.ErrNotFound {
		return nil, errors.New(errno.CartItemNotFound, "cart item not found")
	}
	if err != nil {
		l.Logger.Errorf("find cart item %d failed: %v", req.CartItemId, err)
		return nil, err
	}

	alt, err := l.svcCtx.ProductsModel.FindOneByName(l.ctx, strings.TrimSpace(req.Alternative))
	if err == product.ErrNotFound {
		return nil, errors.New(errno.AlternativeNotFound, "alternative product not found")
	}
	if err != nil {
		l.Logger.Errorf("find alternative %q failed: %v", req.Alternative, err)
		return nil, err
	}

	line.ProductId = alt.Id
	if err = l.svcCtx.CartItemsModel.Update(l.ctx, line); err != nil {
		l.Logger.Errorf("swap cart item %d failed: %v", req.CartItemId, err)
		return nil, err
	}

	resp = &types.SwapCartItemResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		CartItemId: line.Id,
		Quantity:   line.Quantity,
		Product:    productSnapshot(alt),
	}

	return
}
