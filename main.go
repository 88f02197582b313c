// @title Mimir 后端 API
// @version 1.0
// @description AI 训练营生成服务：大纲、每日课程与练习，按天解锁。

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"mimir_backend/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
