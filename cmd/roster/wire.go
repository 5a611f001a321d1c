//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/go-arcade/roster/internal/app"
	"github.com/go-arcade/roster/internal/config"
	"github.com/go-arcade/roster/pkg/log"
)

func initApp(configPath string) (*app.App, func(), error) {
	panic(wire.Build(
		// 配置层
		config.ProviderSet,
		// 日志
		log.ProviderSet,
		// 名册与应用层
		app.ProviderSet,
	))
}
