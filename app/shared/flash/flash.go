// Package flash carries one-time toast notices across redirects and script fetches.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

const (
	// CookieName holds a notice for the next page render.
	CookieName = "eden_flash"
	// HeaderName carries a notice on a fetch response; the value is path-escaped.
	HeaderName = "X-Eden-Toast"
	// KindHeaderName carries the notice kind alongside HeaderName.
	KindHeaderName = "X-Eden-Toast-Kind"
)

// Kind classifies toast presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notice is one toast message.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Success creates a success notice.
func Success(msg string) Notice {
	return Notice{Kind: KindSuccess, Message: msg}
}

// Info creates an informational notice.
func Info(msg string) Notice {
	return Notice{Kind: KindInfo, Message: msg}
}

// Error creates an error notice.
func Error(msg string) Notice {
	return Notice{Kind: KindError, Message: msg}
}

// Write stores a notice cookie for the next page render.
func Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	normalized, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   r != nil && r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear reads the notice cookie and expires it.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return decode(cookie.Value)
}

// SetHeader attaches a notice to a fetch response. Call before WriteHeader.
func SetHeader(w http.ResponseWriter, notice Notice) {
	normalized, ok := normalize(notice)
	if !ok {
		return
	}
	w.Header().Set(HeaderName, url.PathEscape(normalized.Message))
	w.Header().Set(KindHeaderName, string(normalized.Kind))
}

// FromHeader reads a notice set by SetHeader.
func FromHeader(h http.Header) (Notice, bool) {
	msg, err := url.PathUnescape(h.Get(HeaderName))
	if err != nil {
		return Notice{}, false
	}
	return normalize(Notice{Kind: Kind(h.Get(KindHeaderName)), Message: msg})
}

func decode(raw string) (Notice, bool) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func normalize(notice Notice) (Notice, bool) {
	notice.Message = strings.TrimSpace(notice.Message)
	if notice.Message == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindError:
		return notice, true
	case "":
		notice.Kind = KindInfo
		return notice, true
	default:
		return Notice{}, false
	}
}
