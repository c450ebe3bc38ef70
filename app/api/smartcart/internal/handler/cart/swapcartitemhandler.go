// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"net/http"

	"SmartCart/app/api/smartcart/internal/logic/cart"
	"SmartCart/app/api/smartcart/internal/svc"
	"SmartCart/app/api/smartcart/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func SwapCartItemHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SwapCartItemRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := cart.NewSwapCartItemLogic(r.Context(), svcCtx)
		resp, err := l.SwapCartItem(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
