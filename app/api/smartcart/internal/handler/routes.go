// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	agent "SmartCart/app/api/smartcart/internal/handler/agent"
	cart "SmartCart/app/api/smartcart/internal/handler/cart"
	"SmartCart/app/api/smartcart/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/cart",
				Handler: cart.GetCartHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/cart/add",
				Handler: cart.AddCartItemHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/cart/:item_id",
				Handler: cart.DeleteCartItemHandler(serverCtx),
			},
			{
				Method:  http.MethodPatch,
				Path:    "/cart/update",
				Handler: cart.UpdateCartItemHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/cart/swap",
				Handler: cart.SwapCartItemHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/seed-products",
				Handler: cart.SeedProductsHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/agent",
				Handler: agent.ChatHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/agent/dish",
				Handler: agent.AddDishHandler(serverCtx),
			},
		},
	)
}
