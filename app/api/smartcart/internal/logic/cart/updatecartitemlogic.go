// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"

	"SmartCart/app/api/smartcart/internal/svc"
	"SmartCart/app/api/smartcart/internal/types"
	"SmartCart/app/common/consts/errno"
	"SmartCart/app/dal/cartitem"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type UpdateCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateCartItemLogic {
	return &UpdateCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateCartItemLogic) UpdateCartItem(req *types.UpdateCartItemRequest) (resp *types.UpdateCartItemResponse, err error) {
	if req == nil || req.Id <= 0 || req.Quantity <= 0 {
		return nil, errors.New(errno.InvalidParam, "invalid update payload")
	}

	line, err := l.svcCtx.CartItemsModel.FindOne(l.ctx, req.Id)
	if err == cartitem.ErrNotFound {
		return nil, errors.New(errno.CartItemNotFound, "cart item not found")
	}
	if err != nil {
		l.Logger.Errorf("find cart item %d failed: %v", req.Id, err)
		return nil, err
	}

	line.Quantity = req.Quantity
	if err = l.svcCtx.CartItemsModel.Update(l.ctx, line); err != nil {
		l.Logger.Errorf("update cart item %d failed: %v", req.Id, err)
		return nil, err
	}

	resp = &types.UpdateCartItemResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Item:       itemView(line),
	}

	return
}
