package svc

import (
	"context"

	"SmartCart/app/api/smartcart/internal/agent/chat"
	"SmartCart/app/api/smartcart/internal/agent/intent"
	"SmartCart/app/api/smartcart/internal/agent/pipeline"
	"SmartCart/app/api/smartcart/internal/agent/search"
	"SmartCart/app/api/smartcart/internal/agent/tools"
	"SmartCart/app/api/smartcart/internal/config"
	"SmartCart/app/dal/cartitem"
	"SmartCart/app/dal/product"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config config.Config

	ProductsModel  product.ProductsModel
	CartItemsModel cartitem.CartItemsModel

	ChatModel *ark.ChatModel
	Search    *search.Client
	Executor  *tools.Executor
	Pipeline  *pipeline.Pipeline
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	conn := sqlx.NewMysql(c.Mysql.DataSource)
	productsModel := product.NewProductsModel(conn, c.CacheConf)
	cartItemsModel := cartitem.NewCartItemsModel(conn, c.CacheConf)

	sc := &ServiceContext{
		Config:         c,
		ProductsModel:  productsModel,
		CartItemsModel: cartItemsModel,
	}

	log := logx.WithContext(context.Background())
	sc.Search = search.NewClient(log, c.SearchTool)
	sc.Executor = tools.NewExecutor(log, productsModel, cartItemsModel)

	cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
		BaseURL: c.ChatModel.BaseUrl,
		APIKey:  c.ChatModel.APIKey,
		Model:   c.ChatModel.Model,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("err", err))
		return sc
	}
	sc.ChatModel = cm
	logx.Infow("ark chat model initialized")

	classifier, err := intent.NewClassifier(context.Background(), log, cm)
	if err != nil {
		logx.Errorw("init intent classifier failed", logx.Field("err", err))
		return sc
	}

	composer := chat.NewComposer(log, cm)
	sc.Pipeline = pipeline.New(log, classifier, sc.Executor, composer)

	return sc
}
