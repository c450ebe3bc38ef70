// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package agent

import (
	"net/http"

	"SmartCart/app/api/smartcart/internal/logic/agent"
	"SmartCart/app/api/smartcart/internal/svc"
	"SmartCart/app/api/smartcart/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func AddDishHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AddDishRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := agent.NewAddDishLogic(r.Context(), svcCtx)
		resp, err := l.AddDish(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
