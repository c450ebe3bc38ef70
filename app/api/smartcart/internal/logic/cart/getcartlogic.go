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
)

type GetCartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetCartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetCartLogic {
	return &GetCartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetCartLogic) GetCart() (resp *types.GetCartResponse, err error) {
	lines, err := l.svcCtx.CartItemsModel.ListAll(l.ctx)
	if err != nil && err != cartitem.ErrNotFound {
		l.Logger.Errorf("list cart items failed: %v", err)
		return nil, err
	}

	items := make([]types.CartLine, 0, len(lines))
	for _, line := range lines {
		p, err := l.svcCtx.ProductsModel.FindOne(l.ctx, line.ProductId)
		if err != nil {
			l.Logger.Errorf("resolve product %d for cart item %d failed: %v", line.ProductId, line.Id, err)
			return nil, err
		}
		items = append(items, types.CartLine{
			CartItemId: line.Id,
			Product:    productSnapshot(p),
			Quantity:   line.Quantity,
		})
	}

	resp = &types.GetCartResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Total:      int64(len(items)),
		Items:      items,
	}

	return
}
