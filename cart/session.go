package cart

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	sessionName = "estudio_cart"
	itemsKey    = "items"
)

// SessionStore keeps the cart in a signed cookie. The server holds no
// cart state of its own.
type SessionStore struct {
	store sessions.Store
}

func NewSessionStore(secret []byte, secure bool) *SessionStore {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: cs}
}

// Load returns the cart carried by r. A missing, expired or tampered cookie
// yields an empty cart.
func (s *SessionStore) Load(r *http.Request) *Cart {
	c := &Cart{}
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return c
	}
	raw, ok := sess.Values[itemsKey].(string)
	if !ok || raw == "" {
		return c
	}
	if err := json.Unmarshal([]byte(raw), &c.Items); err != nil {
		return &Cart{}
	}
	return c
}

func (s *SessionStore) Save(w http.ResponseWriter, r *http.Request, c *Cart) error {
	// Get returns a fresh session alongside a decode error.
	sess, _ := s.store.Get(r, sessionName)
	data, err := json.Marshal(c.Items)
	if err != nil {
		return errors.Wrap(err, "encode cart")
	}
	sess.Values[itemsKey] = string(data)
	return errors.Wrap(sess.Save(r, w), "save cart session")
}
