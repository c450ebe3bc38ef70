// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"
	"time"

	"SmartCart/app/api/smartcart/internal/svc"
	"SmartCart/app/api/smartcart/internal/types"
	"SmartCart/app/common/consts/errno"
	"SmartCart/app/common/snowflake"
	"SmartCart/app/dal/cartitem"
	"SmartCart/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AddCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddCartItemLogic {
	return &AddCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddCartItemLogic) AddCartItem(req *types.AddCartItemRequest) (resp *types.AddCartItemResponse, err error) {
	if req == nil || req.ProductId <= 0 || req.Quantity <= 0 {
		return nil, errors.New(errno.InvalidParam, "invalid cart payload")
	}

	_, err = l.svcCtx.ProductsModel.FindOne(l.ctx, req.ProductId)
	if err == product.ErrNotFound {
		return nil, errors.New(errno.ProductNotFound, "product not found")
	}
	if err != nil {
		l.Logger.Errorf("find product %d failed: %v", req.ProductId, err)
		return nil, err
	}

	line := &cartitem.CartItems{
		Id:        snowflake.Next(),
		ProductId: req.ProductId,
		Quantity:  req.Quantity,
		AddedAt:   time.Now().UTC(),
	}
	if _, err = l.svcCtx.CartItemsModel.Insert(l.ctx, line); err != nil {
		l.Logger.Errorf("insert cart item failed: %v", err)
		return nil, err
	}

	resp = &types.AddCartItemResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Item:       itemView(line),
	}

	return
}
