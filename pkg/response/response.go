package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorTemplate renders both 404- and 500-class pages.
const ErrorTemplate = "error.html"

// Result is the outcome of a form submission before an endpoint decides how to present it.
type Result struct {
	OK   bool
	Data interface{}
	Err  error
}

// Success wraps data in an ok Result.
func Success(data interface{}) Result { return Result{OK: true, Data: data} }

// Failure wraps err in a failed Result.
func Failure(err error) Result { return Result{Err: err} }

// OK sends 200 with data as JSON.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends {"error": msg} with status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// Message sends 200 {"message": msg}.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Done sends 200 {"success": true, "message": msg}.
func Done(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// NotFoundPage renders the error page with 404.
func NotFoundPage(c *gin.Context, msg string) {
	c.HTML(http.StatusNotFound, ErrorTemplate, gin.H{"Status": http.StatusNotFound, "Message": msg})
}

// ServerErrorPage renders the error page with 500.
func ServerErrorPage(c *gin.Context, msg string) {
	c.HTML(http.StatusInternalServerError, ErrorTemplate, gin.H{"Status": http.StatusInternalServerError, "Message": msg})
}

// Redirect sends a 302 to location.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
