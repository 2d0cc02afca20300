package response

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"insight-srv/pkg/discord"
	pkgErrors "insight-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeOK,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values map to their status code;
// anything else becomes a 500 and is reported to the Discord webhook when one
// is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if stderrors.As(err, &httpErr) {
		code := CodeBadRequest
		switch {
		case httpErr.StatusCode == http.StatusNotFound:
			code = CodeNotFound
		case httpErr.StatusCode >= http.StatusInternalServerError:
			code = CodeInternalError
		}
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: code,
			Message:   httpErr.Message,
		})
		return
	}

	if discordClient != nil {
		_ = discordClient.ReportBug(c.Request.Context(),
			fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternalError,
		Message:   "Internal server error",
	})
}

// PanicError writes a 500 for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	if discordClient != nil {
		_ = discordClient.ReportBug(c.Request.Context(),
			fmt.Sprintf("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternalError,
		Message:   "Internal server error",
	})
}
