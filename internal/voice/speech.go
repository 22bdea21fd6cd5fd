package voice

// Speech capture error codes reported by the client.
const (
	SpeechNoSpeech   = "no-speech"
	SpeechNetwork    = "network"
	SpeechNotAllowed = "not-allowed"
)

var speechMessages = map[string]string{
	SpeechNoSpeech:   "Không nghe thấy gì, thử lại nhé",
	SpeechNetwork:    "Lỗi mạng, vui lòng kiểm tra kết nối",
	SpeechNotAllowed: "Vui lòng cấp quyền Microphone để sử dụng tính năng này.",
}

// SpeechError returns the message to show for a capture error code. ok is
// false for codes that are only logged.
func SpeechError(code string) (message string, ok bool) {
	message, ok = speechMessages[code]
	return
}
