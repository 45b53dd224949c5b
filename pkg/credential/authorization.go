package credential

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

const (
	OperationRead Operation = iota
	OperationWrite
)

const (
	basicUser   = "user:"
	basicScheme = "Basic "
)

var ErrAuthentication = errors.New("login token is required")

type (
	Operation int

	Secrets struct {
		Read  string
		Write string
	}

	readPayload struct {
		GetToken   string `json:"getToken"`
		LoginToken string `json:"loginToken"`
	}

	writePayload struct {
		PostToken  string `json:"postToken"`
		LoginToken string `json:"loginToken"`
	}
)

func (o Operation) String() string {
	switch o {
	case OperationRead:
		return "read"
	case OperationWrite:
		return "write"
	default:
		return "unknown"
	}
}

func (s Secrets) For(op Operation) string {
	if op == OperationRead {
		return s.Read
	}

	return s.Write
}

// Authorization builds the value placed after "Basic " in the Authorization header.
// An empty loginToken is encoded as is and left for the backend to reject.
func Authorization(op Operation, secret, loginToken string) string {
	var payload any = writePayload{PostToken: secret, LoginToken: loginToken}
	if op == OperationRead {
		payload = readPayload{GetToken: secret, LoginToken: loginToken}
	}

	var buf bytes.Buffer
	buf.WriteString(basicUser)

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload) // plain string fields, cannot fail

	raw := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	return base64.StdEncoding.EncodeToString(raw)
}

func StrictAuthorization(op Operation, secret, loginToken string) (string, error) {
	if strings.TrimSpace(loginToken) == "" {
		return "", ErrAuthentication
	}

	return Authorization(op, secret, loginToken), nil
}

func HeaderValue(authorization string) string {
	return basicScheme + authorization
}
