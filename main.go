package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"roughset-reduct/reduct_config"
	"roughset-reduct/rock-share/base/config"
	"roughset-reduct/rock-share/base/logger"
)

func main() {
	// 一些初始化配置
	config.InitConfig()
	if err := logger.InitLogger(config.Get().LoggerOptions()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	r := gin.Default()
	r.POST("/reduct", start)

	port := config.Get().Server.HttpPort
	if port == "" {
		port = reduct_config.GinPort
	}
	if err := r.Run(":" + port); err != nil {
		fmt.Printf("gin run failed, err:%s", err)
	}
}

func start(c *gin.Context) {
	var requestJson ReductRequest
	if err := c.ShouldBindJSON(&requestJson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		logger.Warnf("请求异常:%v", err)
		return
	}
	result, e := DigReduct(c.Request.Context(), &requestJson)
	if e != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   e.Error(),
		})
	} else {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"result_path": result.ResultPath,
			"core":        result.Core,
			"reduct":      result.Reduct,
			"dependency":  result.Dependency,
			"spent_time":  result.SpentTime,
		})
	}
}
