// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"net/http"

	"SmartCart/app/api/smartcart/internal/logic/cart"
	"SmartCart/app/api/smartcart/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func SeedProductsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := cart.NewSeedProductsLogic(r.Context(), svcCtx)
		resp, err := l.SeedProducts()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
