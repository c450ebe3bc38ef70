// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package agent

import (
	"context"
	"strings"

	"SmartCart/app/api/smartcart/internal/svc"
	"SmartCart/app/api/smartcart/internal/types"
	"SmartCart/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

const fallbackAnswer = "Sorry, the assistant hit a snag handling that. Please try again in a moment."

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.AgentRequest) (resp *types.AgentResponse, err error) {
	if req == nil || strings.TrimSpace(req.Message) == "" {
		return nil, errors.New(errno.InvalidParam, "empty message")
	}

	if l.svcCtx.Pipeline == nil {
		return &types.AgentResponse{
			StatusCode: errno.AgentUnavailable,
			StatusMsg:  "agent unavailable",
			Response: types.AgentState{
				UserMessage:  req.Message,
				FinalMessage: fallbackAnswer,
			},
		}, nil
	}

	state, err := l.svcCtx.Pipeline.Run(l.ctx, req.Message)
	if err != nil {
		// Upstream failures are fatal for this request, never retried.
		l.Logger.Errorf("agent pipeline failed: %v", err)
		return &types.AgentResponse{
			StatusCode: errno.AgentUnavailable,
			StatusMsg:  "agent execution error",
			Response: types.AgentState{
				UserMessage:  req.Message,
				FinalMessage: fallbackAnswer,
			},
		}, nil
	}

	resp = &types.AgentResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Response: types.AgentState{
			UserMessage:  state.UserMessage,
			Intent:       state.Intent,
			Product:      state.Product,
			ToolOutput:   state.ToolOutput,
			FinalMessage: state.FinalMessage,
		},
	}

	return
}
