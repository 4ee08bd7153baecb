package apiresponse

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/daveshb/taskload/pkg/translator"
)

// Response is the envelope every endpoint answers with. Error responses
// carry success=false and a message only; success responses may add data.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Error implements the error interface so a Response can travel as one.
func (r Response) Error() string {
	return fmt.Sprintf("Success: %t, Message: %s", r.Success, r.Message)
}

// NewError builds a failure envelope with a translated message.
func NewError(msgKey string, lang string) Response {
	return Response{Success: false, Message: GetTransMsg(msgKey, lang)}
}

// NewSuccess builds a success envelope with a translated message and
// optional payload.
func NewSuccess(msgKey string, lang string, data interface{}) Response {
	return Response{Success: true, Message: GetTransMsg(msgKey, lang), Data: data}
}

// GetTransMsg retrieves the translated message, falling back to the key.
func GetTransMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
