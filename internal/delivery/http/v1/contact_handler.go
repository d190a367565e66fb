package v1

import (
	"net/http"

	"agroflow-backend/internal/delivery/http/response"
	"agroflow-backend/internal/domain"
	"agroflow-backend/pkg/apperror"
	"agroflow-backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

const maxContactBody = 64 << 10

type ContactHandler struct {
	contactUC  domain.ContactUsecase
	production bool
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, production bool, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC:  contactUC,
		production: production,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
	public.GET("/contact", handler.CheckTransport)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the form, verifies the mail server, notifies the team and sends an acknowledgement to the sender.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBody)

	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(i18n.Translate(i18n.KeyInvalidRequest, i18n.Default)).WithDetails(err.Error()))
		return
	}

	res, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, res.Message, nil)
}

// CheckTransport godoc
// @Summary      SMTP healthcheck
// @Description  Verifies the mail server connection and credentials without sending email.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.StatusResponse
// @Failure      500  {object}  response.StatusResponse
// @Router       /contact [get]
func (h *ContactHandler) CheckTransport(c *gin.Context) {
	lang := i18n.FromAcceptLanguage(c.GetHeader("Accept-Language"))
	res := h.contactUC.CheckTransport(c.Request.Context())

	if res.Valid {
		response.Status(c, http.StatusOK, response.StatusResponse{
			Status:  "ok",
			Message: i18n.Translate(i18n.KeySMTPHealthy, lang),
		})
		return
	}

	diagnostic := res.Error
	if h.production {
		diagnostic = string(res.Kind)
	}
	response.Status(c, http.StatusInternalServerError, response.StatusResponse{
		Status:  "error",
		Message: i18n.Translate(i18n.KeySMTPUnhealthy, lang),
		Error:   diagnostic,
	})
}
