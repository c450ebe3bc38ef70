package cartitem

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ CartItemsModel = (*customCartItemsModel)(nil)

type (
	// CartItemsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customCartItemsModel.
	CartItemsModel interface {
		cartItemsModel
		ListAll(ctx context.Context) ([]*CartItems, error)
		FindOneByProductId(ctx context.Context, productId int64) (*CartItems, error)
	}

	customCartItemsModel struct {
		*defaultCartItemsModel
	}
)

// NewCartItemsModel returns a model for the database table.
func NewCartItemsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) CartItemsModel {
	return &customCartItemsModel{
		defaultCartItemsModel: newCartItemsModel(conn, c, opts...),
	}
}

// ListAll returns every cart line ordered by id. Ids are snowflakes, so id
// order is insertion order.
func (m *customCartItemsModel) ListAll(ctx context.Context) ([]*CartItems, error) {
	query := fmt.Sprintf("select %s from %s order by `id`", cartItemsRows, m.table)
	var resp []*CartItems
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customCartItemsModel) FindOneByProductId(ctx context.Context, productId int64) (*CartItems, error) {
	query := fmt.Sprintf("select %s from %s where `product_id` = ? order by `id` limit 1", cartItemsRows, m.table)
	var resp CartItems
	err := m.QueryRowNoCacheCtx(ctx, &resp, query, productId)
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
