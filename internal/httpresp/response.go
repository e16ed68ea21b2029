package httpresp

import "github.com/gin-gonic/gin"

type DataResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, DataResponse{Status: "success", Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(201, DataResponse{Status: "success", Data: data})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Status: "success", Message: message})
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	OK(c, data)
}
