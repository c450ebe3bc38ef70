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

type DeleteCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteCartItemLogic {
	return &DeleteCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteCartItemLogic) DeleteCartItem(req *types.DeleteCartItemRequest) (resp *types.DeleteCartItemResponse, err error) {
	if req == nil || req.ItemId <= 0 {
		return nil, errors.New(errno.InvalidParam, "invalid cart item id")
	}

	_, err = l.svcCtx.CartItemsModel.FindOne(l.ctx, req.ItemId)
	if err == cartitem.ErrNotFound {
		return nil, errors.New(errno.CartItemNotFound, "cart item not found")
	}
	if err != nil {
		l.Logger.Errorf("find cart item %d failed: %v", req.ItemId, err)
		return nil, err
	}

	if err = l.svcCtx.CartItemsModel.Delete(l.ctx, req.ItemId); err != nil {
		l.Logger.Errorf("delete cart item %d failed: %v", req.ItemId, err)
		return nil, err
	}

	resp = &types.DeleteCartItemResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Status:     "deleted",
		ItemId:     req.ItemId,
	}

	return
}
