package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
	"github.com/thucthuc0607-code/SmartFin-2/internal/voice"
)

type VoiceRequest struct {
	Transcript string `json:"transcript" example:"bún bò 35k"` // The recognized speech
	ErrorCode  string `json:"errorCode" example:""`            // The speech recognition error code, if recognition failed
}

type VoiceResponse struct {
	Error   *string       `json:"error" example:"either transcript or errorCode must be set"`                      // The error, if any occurred
	Data    *voice.Result `json:"data"`                                                                            // The transaction draft for a transcript
	Message *string       `json:"message,omitempty" example:"Vui lòng cấp quyền Microphone để sử dụng tính năng này."` // The message to show for a speech recognition error
}

func (co Controller) RegisterVoiceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsVoice)
	r.POST("", co.CreateVoice)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Voice
// @Success		204
// @Router			/v1/voice [options]
func OptionsVoice(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Interpret voice input
// @Description	Turns a transcript into a transaction draft. The draft is not booked. If classification fails, a fallback draft is returned together with a message. For speech recognition errors, the message to show is returned.
// @Tags			Voice
// @Accept			json
// @Produce		json
// @Success		200		{object}	VoiceResponse
// @Failure		400		{object}	VoiceResponse
// @Failure		409		{object}	VoiceResponse
// @Param			voice	body		VoiceRequest	true	"Voice input"
// @Router			/v1/voice [post]
func (co Controller) CreateVoice(c *gin.Context) {
	var request VoiceRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VoiceResponse{
			Error: &e,
		})
		return
	}

	if request.ErrorCode != "" {
		message, ok := voice.SpeechError(request.ErrorCode)
		if !ok {
			log.Warn().Str("request-id", requestid.Get(c)).Str("code", request.ErrorCode).Msg("speech recognition error")
			c.JSON(http.StatusOK, VoiceResponse{})
			return
		}

		c.JSON(http.StatusOK, VoiceResponse{Message: &message})
		return
	}

	if strings.TrimSpace(request.Transcript) == "" {
		e := errVoiceInputMissing.Error()
		c.JSON(http.StatusBadRequest, VoiceResponse{
			Error: &e,
		})
		return
	}

	result, err := co.voiceService().Interpret(c.Request.Context(), request.Transcript)
	if errors.Is(err, voice.ErrBusy) {
		e := errVoiceBusy.Error()
		c.JSON(http.StatusConflict, VoiceResponse{
			Error: &e,
		})
		return
	} else if err != nil {
		e := err.Error()
		c.JSON(status(err), VoiceResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, VoiceResponse{Data: &result})
}

// voiceService returns the voice service. Without one, every transcript gets
// the fallback draft.
func (co Controller) voiceService() *voice.Service {
	if co.Voice == nil {
		return voice.NewService(nil, 0)
	}
	return co.Voice
}
