// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	Mysql     MysqlConf
	CacheConf cache.CacheConf

	ChatModel  ModelConf
	SearchTool SearchConf

	LogConf logx.LogConf
}

type MysqlConf struct {
	DataSource string
}

type ModelConf struct {
	BaseUrl string
	APIKey  string
	Model   string
}

type SearchConf struct {
	BaseUrl    string
	APIKey     string `json:",optional"`
	MaxResults int    `json:",default=5"`
}
