package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	Data      interface{}       `json:"data,omitempty"`
	Error     string            `json:"error,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	Details   string            `json:"details,omitempty"`
	Debug     string            `json:"debug,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Extra carries the optional parts of an error response.
type Extra struct {
	Fields  map[string]string
	Details string
	Debug   string
}

// StatusResponse is the body of GET healthchecks.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)
	return idStr
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response. message is always present.
func Error(c *gin.Context, code int, message string, extra *Extra) {
	resp := Response{
		Success:   false,
		Error:     message,
		RequestID: requestID(c),
	}
	if extra != nil {
		resp.Fields = extra.Fields
		resp.Details = extra.Details
		resp.Debug = extra.Debug
	}
	c.JSON(code, resp)
}

// Status sends a healthcheck body.
func Status(c *gin.Context, code int, status StatusResponse) {
	c.JSON(code, status)
}
