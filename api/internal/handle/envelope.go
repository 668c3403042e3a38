package handle

// Envelope is the uniform response wrapper for successful recognition. It is
// built once per request and handed straight to the JSON encoder; data always
// holds a normalized value (an empty sequence when nothing was detected).
type Envelope struct {
	ResultCode int    `json:"resultcode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
	Cls        string `json:"cls"`
}

func success(message string, data any) Envelope {
	return Envelope{
		ResultCode: 200,
		Message:    message,
		Data:       data,
		Cls:        "ocr",
	}
}
