package handler

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	historyKey = "history"
	historyMax = 10
)

// recordHistory 把电影放到浏览记录最前面（去重，最多保留 historyMax 条）
func recordHistory(c *gin.Context, id int) {
	session := sessions.Default(c)
	ids := []int{id}
	for _, old := range historyIDs(c) {
		if old == id {
			continue
		}
		if len(ids) >= historyMax {
			break
		}
		ids = append(ids, old)
	}
	session.Set(historyKey, ids)
	if err := session.Save(); err != nil {
		log.Printf("[Handler] 保存浏览记录失败: %v", err)
	}
}

// historyIDs 读取浏览记录，最近的在前
func historyIDs(c *gin.Context) []int {
	session := sessions.Default(c)
	if v := session.Get(historyKey); v != nil {
		if ids, ok := v.([]int); ok {
			return ids
		}
	}
	return nil
}
